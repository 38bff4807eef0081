package identscan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/namecase/convention"
	"github.com/erraggy/namecase/internal/severity"
	"github.com/erraggy/namecase/nameerrors"
	"go.yaml.in/yaml/v4"
)

// Rule lists the conventions allowed for one kind of declaration and the
// severity of a violation.
type Rule struct {
	Allow    convention.Set
	Severity severity.Severity
}

// Rules holds one Rule per Kind.
type Rules struct {
	byKind [numKinds]Rule
}

// DefaultRules allows Go mixed caps, PascalCase and CamelCase, for every kind
// and reports violations as errors.
func DefaultRules() Rules {
	var r Rules
	for k := range r.byKind {
		r.byKind[k] = Rule{
			Allow:    convention.NewSet(convention.PascalCase, convention.CamelCase),
			Severity: severity.SeverityError,
		}
	}
	return r
}

// For returns the rule for kind k.
func (r Rules) For(k Kind) Rule {
	if k < 0 || k >= numKinds {
		return Rule{}
	}
	return r.byKind[k]
}

// With returns a copy of r with the rule for kind k replaced.
func (r Rules) With(k Kind, rule Rule) Rules {
	if k >= 0 && k < numKinds {
		r.byKind[k] = rule
	}
	return r
}

type rulesFile struct {
	Allow    []string             `yaml:"allow"`
	Severity string               `yaml:"severity"`
	Kinds    map[string]ruleEntry `yaml:"kinds"`
}

type ruleEntry struct {
	Allow    []string `yaml:"allow"`
	Severity string   `yaml:"severity"`
}

// LoadRules reads YAML rules from r and merges them over DefaultRules.
// An empty document yields the defaults.
func LoadRules(r io.Reader) (Rules, error) {
	rules := DefaultRules()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file rulesFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return rules, nil
		}
		return Rules{}, &nameerrors.ConfigError{Option: "rules", Message: "malformed rules document", Cause: err}
	}

	base := ruleEntry{Allow: file.Allow, Severity: file.Severity}
	for k := KindType; k < numKinds; k++ {
		merged, err := base.apply(rules.byKind[k])
		if err != nil {
			return Rules{}, err
		}
		rules.byKind[k] = merged
	}

	for name, entry := range file.Kinds {
		k, err := ParseKind(name)
		if err != nil {
			return Rules{}, err
		}
		merged, err := entry.apply(rules.byKind[k])
		if err != nil {
			return Rules{}, fmt.Errorf("identscan: kind %s: %w", k, err)
		}
		rules.byKind[k] = merged
	}

	return rules, nil
}

// LoadRulesFile reads YAML rules from path.
func LoadRulesFile(path string) (Rules, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the caller
	if err != nil {
		return Rules{}, &nameerrors.ConfigError{Option: "rules", Value: path, Message: "cannot read rules file", Cause: err}
	}
	return LoadRules(bytes.NewReader(data))
}

func (e ruleEntry) apply(rule Rule) (Rule, error) {
	if e.Allow != nil {
		if len(e.Allow) == 0 {
			return Rule{}, &nameerrors.ConfigError{Option: "allow", Message: "must list at least one convention"}
		}
		var set convention.Set
		for _, name := range e.Allow {
			c, err := convention.ParseConvention(name)
			if err != nil {
				return Rule{}, err
			}
			set = set | convention.NewSet(c)
		}
		rule.Allow = set
	}
	if strings.TrimSpace(e.Severity) != "" {
		sev, err := severity.Parse(e.Severity)
		if err != nil {
			return Rule{}, err
		}
		rule.Severity = sev
	}
	return rule, nil
}
