// Package naming provides the byte-level primitives shared by the convention
// classifier and converter.
//
// Only ASCII is interpreted: a letter is 'a'-'z' or 'A'-'Z', a digit is
// '0'-'9', and every other byte (including each byte of a multibyte UTF-8
// sequence) is neither and is never recased. This keeps detection and
// conversion in agreement regardless of the input encoding.
//
// The package also provides [Cursor], an immutable read position used to walk
// a name without threading a mutable index through helper calls.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
