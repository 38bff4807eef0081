// Package convention classifies identifier names against a fixed set of
// naming conventions and converts names between them.
//
// # Conventions
//
// Seven conventions are recognized:
//
//	UpperCase        THISISASAMPLE
//	LowerCase        thisisasample
//	CamelCase        thisIsASample
//	PascalCase       ThisIsASample
//	LowerSnakeCase   this_is_a_sample
//	UpperSnakeCase   THIS_IS_A_SAMPLE
//	PascalSnakeCase  This_Is_A_Sample
//
// Conventions overlap. "A" is both [UpperCase] and [PascalCase], "abc" is
// both [LowerCase] and [CamelCase]. A name that contains the underline
// separator can only satisfy the snake conventions, and a name without one can
// only satisfy the others.
//
// # Detection
//
// [Detect] returns the [Set] of every convention a name satisfies. It never
// fails: a name that matches nothing (empty, starting with a digit, or without
// any letter) yields an empty set. The Is* predicates are shorthands for
// Detect(name).Has(c).
//
//	conventions := convention.Detect("userProfile")
//	fmt.Println(conventions) // [CamelCase]
//
// # Conversion
//
// The To* functions and [Convert] rewrite a name so that it satisfies the
// target convention. Leading separators are skipped and the first letter
// anchors the result; a name that is empty or has no letter after its leading
// separators fails with a [*ConversionError].
//
//	name, err := convention.ToLowerSnakeCase("PascalCaseName")
//	// name == "pascal_case_name"
//
// Only ASCII letters and digits are interpreted. Any other byte is never
// recased and is copied through unchanged.
//
// All functions are pure and safe for concurrent use.
package convention
