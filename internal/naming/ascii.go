package naming

// Separator delimits the words of the snake conventions.
const Separator byte = '_'

// IsUpper reports whether c is an ASCII uppercase letter.
func IsUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// IsLower reports whether c is an ASCII lowercase letter.
func IsLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return IsUpper(c) || IsLower(c)
}

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ToUpper returns the uppercase form of an ASCII lowercase letter.
// Any other byte is returned unchanged.
func ToUpper(c byte) byte {
	if IsLower(c) {
		return c - ('a' - 'A')
	}
	return c
}

// ToLower returns the lowercase form of an ASCII uppercase letter.
// Any other byte is returned unchanged.
func ToLower(c byte) byte {
	if IsUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}
