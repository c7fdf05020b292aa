package mask

// Dir is the edit direction of a digit slot. Digits left of the decimal
// separator shift right-to-left, fraction digits fill left-to-right.
type Dir uint8

const (
	// Rtol shifts input toward the low end of the slot run.
	Rtol Dir = iota
	// Ltor overwrites slots from left to right.
	Ltor
)

func (d Dir) String() string {
	if d == Ltor {
		return ">"
	}
	return "<"
}

// Kind identifies one slot type of an input mask.
type Kind uint8

const (
	// None marks the cursor position past the last slot. Not editable.
	None Kind = iota
	// Digit0 accepts 0-9, displays "0" when empty.
	Digit0
	// Digit accepts 0-9, displays space when empty.
	Digit
	// Numeric accepts 0-9 and a sign, displays space when empty.
	Numeric
	// DecimalSep is the "." slot between integer and fraction digits.
	DecimalSep
	// GroupingSep is a "," slot maintained by reformatting, never typed.
	GroupingSep
	// Sign displays "-" or blank.
	Sign
	// Plus displays "+" or "-".
	Plus
	// Hex0 accepts hex digits, displays "0" when empty.
	Hex0
	// Hex accepts hex digits, displays space when empty.
	Hex
	// Oct0 accepts octal digits, displays "0" when empty.
	Oct0
	// Oct accepts octal digits, displays space when empty.
	Oct
	// Dec0 accepts decimal digits, displays "0" when empty.
	Dec0
	// Dec accepts decimal digits, displays space when empty.
	Dec
	// Letter accepts alphabetic characters.
	Letter
	// LetterOrDigit accepts alphanumeric characters.
	LetterOrDigit
	// LetterDigitSpace accepts alphanumeric characters and space.
	LetterDigitSpace
	// AnyChar accepts any character.
	AnyChar
	// Separator is a literal character that is part of the display.
	Separator
)

// Mask is one slot of a compiled input mask. Dir is meaningful for the
// digit kinds only, Sep for Separator only.
type Mask struct {
	Kind Kind
	Dir  Dir
	Sep  string
}

// IsNone reports whether this is the trailing sentinel slot.
func (m Mask) IsNone() bool {
	return m.Kind == None
}

// IsLtor reports whether the slot is edited left-to-right.
func (m Mask) IsLtor() bool {
	switch m.Kind {
	case Digit0, Digit, Numeric:
		return m.Dir == Ltor
	case DecimalSep, Hex0, Hex, Oct0, Oct, Dec0, Dec,
		Letter, LetterOrDigit, LetterDigitSpace, AnyChar, Separator:
		return true
	default:
		return false
	}
}

// IsRtol reports whether the slot is edited right-to-left.
func (m Mask) IsRtol() bool {
	switch m.Kind {
	case Digit0, Digit, Numeric:
		return m.Dir == Rtol
	case GroupingSep, Sign, Plus:
		return true
	default:
		return false
	}
}

// IsNumber reports whether the slot belongs to a number section.
func (m Mask) IsNumber() bool {
	switch m.Kind {
	case Digit0, Digit, Numeric, DecimalSep, GroupingSep, Sign, Plus:
		return true
	default:
		return false
	}
}

// IsSeparator reports whether the slot is a literal separator.
func (m Mask) IsSeparator() bool {
	return m.Kind == Separator
}

// IsFraction reports whether the slot is a fraction digit.
func (m Mask) IsFraction() bool {
	switch m.Kind {
	case Digit0, Digit, Numeric:
		return m.Dir == Ltor
	default:
		return false
	}
}

// SubSection classifies slot kinds that are edited as one unit.
func (m Mask) SubSection() int {
	switch m.Kind {
	case Digit0, Digit, Numeric, GroupingSep:
		return 0
	case Sign:
		return 1
	case Plus:
		return 2
	case DecimalSep:
		return 3
	case Hex0, Hex:
		return 4
	case Oct0, Oct:
		return 5
	case Dec0, Dec:
		return 6
	case Letter:
		return 7
	case LetterOrDigit:
		return 8
	case LetterDigitSpace:
		return 9
	case AnyChar:
		return 10
	case Separator:
		return 11
	default:
		return 12
	}
}

// Section classifies slot kinds that form one field, a whole number with
// sign, grouping and fraction being a single field.
func (m Mask) Section() int {
	switch m.Kind {
	case Digit0, Digit, Numeric, DecimalSep, GroupingSep, Sign, Plus:
		return 0
	case Hex0, Hex, Oct0, Oct, Dec0, Dec,
		Letter, LetterOrDigit, LetterDigitSpace, AnyChar:
		return 1
	case Separator:
		return 2
	default:
		return 3
	}
}

// CanOverwriteFraction reports whether the grapheme g occupying a
// fraction slot may be overwritten in place.
func (m Mask) CanOverwriteFraction(g string) bool {
	switch m.Kind {
	case Digit0:
		return g == "0"
	case Digit, Numeric:
		return g == " "
	default:
		return false
	}
}

// CanOverwrite reports whether typing over the grapheme g just replaces
// it instead of shifting the slot run.
func (m Mask) CanOverwrite(g string) bool {
	switch m.Kind {
	case DecimalSep:
		return g == "."
	case Sign:
		return g == "-" || g == " "
	case Plus:
		return g == "-" || g == "+" || g == " "
	case Hex0, Oct0, Dec0:
		return g == "0"
	case Separator:
		return g == m.Sep
	default:
		return false
	}
}

// CanDrop reports whether the grapheme g carries no information and a
// shift may discard it.
func (m Mask) CanDrop(g string) bool {
	switch m.Kind {
	case Digit0, Hex0, Oct0, Dec0:
		return g == "0"
	case Digit, Numeric, Hex, Oct, Dec,
		Letter, LetterOrDigit, LetterDigitSpace, AnyChar:
		return g == " "
	case GroupingSep:
		return true
	default:
		return false
	}
}

// EditValue is the default character the slot shows when empty.
func (m Mask) EditValue() string {
	switch m.Kind {
	case Digit0, Hex0, Oct0, Dec0:
		return "0"
	case DecimalSep:
		return "."
	case Plus:
		return "+"
	case Separator:
		return m.Sep
	case None:
		return ""
	default:
		// grouping separators stay blank until reformat fills them in
		return " "
	}
}

// String returns the pattern character for the slot. Separators are
// escaped so the result always re-compiles to the same mask.
func (m Mask) String() string {
	switch m.Kind {
	case Digit0:
		return "0"
	case Digit:
		return "9"
	case Numeric:
		return "#"
	case DecimalSep:
		return "."
	case GroupingSep:
		return ","
	case Sign:
		return "-"
	case Plus:
		return "+"
	case Hex0:
		return "H"
	case Hex:
		return "h"
	case Oct0:
		return "O"
	case Oct:
		return "o"
	case Dec0:
		return "D"
	case Dec:
		return "d"
	case Letter:
		return "l"
	case LetterOrDigit:
		return "a"
	case LetterDigitSpace:
		return "c"
	case AnyChar:
		return "_"
	case Separator:
		return `\` + m.Sep
	default:
		return ""
	}
}
