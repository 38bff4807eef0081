package convention

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_NoConvention(t *testing.T) {
	inputs := []string{
		"", " ", "1", "-", "_", "__", " _", "1_", "-_", "_ ", "_1", "_-",
		"123abc", "1A", "___1", "é", "-_-",
		"A_a", "a_A", "a_A_a", "A_a_A",
		"aAaA_", "_AaAa", "_aAaA", "__aAaA", "AaAa_",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got := Detect(input)
			assert.True(t, got.IsEmpty(), "Detect(%q) = %s, want empty", input, got)
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		input string
		want  []Convention
	}{
		// Single characters
		{"A", []Convention{UpperCase, PascalCase}},
		{"a", []Convention{LowerCase, CamelCase}},

		// No separator
		{"Aa", []Convention{PascalCase}},
		{"aA", []Convention{CamelCase}},
		{"aa", []Convention{LowerCase, CamelCase}},
		{"A1", []Convention{UpperCase, PascalCase}},
		{"a1", []Convention{LowerCase, CamelCase}},
		{"AaAa", []Convention{PascalCase}},
		{"aAaA", []Convention{CamelCase}},
		{"AAAA", []Convention{UpperCase, PascalCase}},
		{"aaaa", []Convention{LowerCase, CamelCase}},
		{"HTTPServer", []Convention{PascalCase}},
		{"userID", []Convention{CamelCase}},
		{"a-b", []Convention{LowerCase, CamelCase}},

		// Separator present
		{"A_", []Convention{UpperSnakeCase}},
		{"a_", []Convention{LowerSnakeCase}},
		{"A_A", []Convention{UpperSnakeCase}},
		{"a_a", []Convention{LowerSnakeCase}},
		{"A_1", []Convention{UpperSnakeCase}},
		{"a_1", []Convention{LowerSnakeCase}},
		{"AAAA_", []Convention{UpperSnakeCase}},
		{"aaaa_", []Convention{LowerSnakeCase}},
		{"_AAAA", []Convention{UpperSnakeCase}},
		{"__AAAA", []Convention{UpperSnakeCase}},
		{"_aaaa", []Convention{LowerSnakeCase}},
		{"__aaaa", []Convention{LowerSnakeCase}},
		{"__Aaaa", []Convention{PascalSnakeCase}},
		{"_Aaaa", []Convention{PascalSnakeCase}},
		{"snake_case_name", []Convention{LowerSnakeCase}},
		{"SNAKE_CASE_NAME", []Convention{UpperSnakeCase}},
		{"Lower_Case_Name", []Convention{PascalSnakeCase}},
		{"Aa_1a_Aa", []Convention{PascalSnakeCase}},
		{"Aa_", []Convention{}},
		{"a__b", []Convention{LowerSnakeCase}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Detect(tt.input)
			assert.Equal(t, NewSet(tt.want...), got, "Detect(%q) = %s", tt.input, got)
			assert.Equal(t, len(tt.want), got.Len())
		})
	}
}

func TestDetect_SnakeAndPlainAreExclusive(t *testing.T) {
	plain := NewSet(UpperCase, LowerCase, CamelCase, PascalCase)
	snake := NewSet(LowerSnakeCase, UpperSnakeCase, PascalSnakeCase)

	for _, input := range propertyCorpus {
		got := Detect(input)
		if strings.Contains(input, "_") {
			assert.Equal(t, Set(0), got&plain, "Detect(%q) mixes in non-snake conventions", input)
		} else {
			assert.Equal(t, Set(0), got&snake, "Detect(%q) mixes in snake conventions", input)
		}
	}
}

func TestDetect_AlphabeticNamesAlwaysMatch(t *testing.T) {
	for _, input := range []string{"a", "Z", "abc", "ABC", "aBc", "AbC", "xYZ", "Qq"} {
		assert.False(t, Detect(input).IsEmpty(), "Detect(%q) should match at least one convention", input)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		input string
		check func(string) bool
		conv  Convention
		want  bool
	}{
		{"USERPROFILE", IsUpperCase, UpperCase, true},
		{"UserProfile", IsUpperCase, UpperCase, false},
		{"userprofile", IsLowerCase, LowerCase, true},
		{"userProfile", IsLowerCase, LowerCase, false},
		{"userProfile", IsCamelCase, CamelCase, true},
		{"UserProfile", IsCamelCase, CamelCase, false},
		{"UserProfile", IsPascalCase, PascalCase, true},
		{"User_Profile", IsPascalCase, PascalCase, false},
		{"user_profile", IsLowerSnakeCase, LowerSnakeCase, true},
		{"User_profile", IsLowerSnakeCase, LowerSnakeCase, false},
		{"USER_PROFILE", IsUpperSnakeCase, UpperSnakeCase, true},
		{"USER_profile", IsUpperSnakeCase, UpperSnakeCase, false},
		{"User_Profile", IsPascalSnakeCase, PascalSnakeCase, true},
		{"UserProfile", IsPascalSnakeCase, PascalSnakeCase, false},
	}

	for _, tt := range tests {
		t.Run(tt.conv.String()+"/"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.input))
			assert.Equal(t, tt.want, Is(tt.input, tt.conv))
			assert.Equal(t, Detect(tt.input).Has(tt.conv), tt.check(tt.input), "predicate must agree with Detect")
		})
	}
}

func TestIs_InvalidConvention(t *testing.T) {
	assert.False(t, Is("abc", Convention(0)))
	assert.False(t, Is("abc", Convention(42)))
}
