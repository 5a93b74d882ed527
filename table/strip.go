package table

import "unicode"

// wordClasses lists the Unicode categories making up word characters:
// letters, numbers and combining marks. Whitespace is handled separately,
// everything else is strippable.
var wordClasses = []*unicode.RangeTable{
	unicode.L,
	unicode.N,
	unicode.M,
}

// Strippable reports whether r is a non-word codepoint, i.e. punctuation,
// a symbol, a control character or anything else that should not survive
// slug normalization. Letters, digits, combining marks and whitespace
// (newlines included) are not strippable.
func Strippable(r rune) bool {
	if unicode.IsSpace(r) {
		return false
	}
	return !unicode.IsOneOf(wordClasses, r)
}
