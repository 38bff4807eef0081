package identscan

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/namecase/convention"
	"github.com/erraggy/namecase/internal/issues"
)

// Preferred suggestion targets, most idiomatic first.
var (
	exportedPreference   = []convention.Convention{convention.PascalCase, convention.PascalSnakeCase, convention.UpperSnakeCase, convention.UpperCase}
	unexportedPreference = []convention.Convention{convention.CamelCase, convention.LowerSnakeCase, convention.LowerCase}
)

// evaluate checks every identifier against rules and returns the violations.
func evaluate(ids []Identifier, rules Rules) []issues.Issue {
	var out []issues.Issue
	for _, id := range ids {
		rule := rules.For(id.Kind)
		if rule.Allow.IsEmpty() || id.Conventions.HasAny(rule.Allow.Conventions()...) {
			continue
		}
		out = append(out, issues.Issue{
			Path:       id.Path,
			Message:    describe(id, rule.Allow),
			Severity:   rule.Severity,
			Field:      id.Kind.String(),
			Value:      id.Name,
			Suggestion: Suggest(id.Name, id.Exported, rule.Allow),
			File:       id.File,
			Line:       id.Line,
			Column:     id.Column,
		})
	}
	return out
}

func describe(id Identifier, allow convention.Set) string {
	got := "matches no naming convention"
	if !id.Conventions.IsEmpty() {
		got = "is " + strings.Join(id.Conventions.Names(), ", ")
	}
	return fmt.Sprintf("%s name %q %s; want %s", id.Kind, id.Name, got, strings.Join(allow.Names(), " or "))
}

// Suggest returns a replacement for name that satisfies one of the allowed
// conventions, preferring a target that keeps the name's exportedness. It
// returns "" when no allowed convention can be reached.
func Suggest(name string, exported bool, allow convention.Set) string {
	source := name
	if convention.IsUpperSnakeCase(name) {
		// Word boundaries live in the separators; drop the capitals first.
		source = strings.ToLower(name)
	}

	preference := unexportedPreference
	if exported {
		preference = exportedPreference
	}
	for _, c := range slices.Concat(preference, convention.All()) {
		if !allow.Has(c) {
			continue
		}
		out, err := convention.Convert(source, c)
		if err != nil {
			return ""
		}
		if convention.Detect(out).HasAny(allow.Conventions()...) {
			return out
		}
	}
	return ""
}
