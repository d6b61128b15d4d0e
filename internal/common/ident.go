package common

import (
	"strings"
	"unicode"
)

// SanitizeIdent turns an arbitrary type or key name into a valid
// identifier fragment for generated artifact names. Invalid runes are
// dropped, separator runes start a new capitalized word, and a name that
// would start with a digit is prefixed with an underscore.
//
// Examples: "book-order" -> "BookOrder", "ns:item" -> "NsItem",
// "3d" -> "_3d".
func SanitizeIdent(name string) string {
	var sb strings.Builder

	upperNext := true

	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if upperNext {
				r = unicode.ToUpper(r)
				upperNext = false
			}

			sb.WriteRune(r)
		case unicode.IsDigit(r):
			if sb.Len() == 0 {
				sb.WriteByte('_')
			}

			sb.WriteRune(r)
			upperNext = false
		default:
			upperNext = true
		}
	}

	if sb.Len() == 0 {
		return "Item"
	}

	return sb.String()
}
