// Package classify holds the character-class predicates shared by the
// scanner and the disambiguation passes (section 4.2), kept separate
// from the scanner itself the way well/syntax/strs/scanner.go keeps its
// isIdentifierPartFirst/isIdentifierMiddle/isWhitespace helpers as small
// standalone predicates rather than inline conditionals.
package classify

// VariableStart reports whether r can begin a variable, function, or
// typename name: `[A-Za-z_]`.
func VariableStart(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// VariableContinue reports whether r can continue a simple name (after
// the first character): `[A-Za-z0-9_]`.
func VariableContinue(r rune) bool {
	return VariableStart(r) || Digit(r)
}

// Digit reports whether r is an ASCII digit.
func Digit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Whitespace reports whether r is one of the whitespace characters the
// scanner skips (section 4.2): space, tab, line feed, form feed,
// carriage return, no-break space, line separator, paragraph separator.
func Whitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r', ' ', ' ', ' ':
		return true
	default:
		return false
	}
}
