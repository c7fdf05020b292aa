package mask

import "unicode"

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

// Accepts reports whether r is valid input for the slot. neg and dec
// are the active negative-sign and decimal-separator symbols; the
// remaining slot kinds match on their canonical characters.
func (m Mask) Accepts(r, neg, dec rune) bool {
	switch m.Kind {
	case Digit0, Dec0:
		return r >= '0' && r <= '9'
	case Digit, Dec:
		return r >= '0' && r <= '9' || r == ' '
	case Numeric:
		return r >= '0' && r <= '9' || r == neg || r == '-'
	case DecimalSep:
		return r == dec
	case Sign, Plus:
		return r == neg || r == '-'
	case Hex0:
		return isHexDigit(r)
	case Hex:
		return isHexDigit(r) || r == ' '
	case Oct0:
		return r >= '0' && r <= '7'
	case Oct:
		return r >= '0' && r <= '7' || r == ' '
	case Letter:
		return unicode.IsLetter(r)
	case LetterOrDigit:
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	case LetterDigitSpace:
		return unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' '
	case AnyChar:
		return true
	case Separator:
		// "." and "," match any separator so number keypads work
		if r == '.' || r == ',' {
			return true
		}
		for _, s := range m.Sep {
			return s == r
		}
		return false
	default:
		// grouping separators and the sentinel are never typed
		return false
	}
}
