package mask

import (
	"errors"
	"fmt"

	"github.com/rivo/uniseg"
)

// ErrInvalidMask indicates a mask pattern that cannot be compiled. The
// typed InvalidMaskError matches this sentinel via errors.Is.
var ErrInvalidMask = errors.New("invalid mask pattern")

// InvalidMaskError reports the slot character that broke compilation.
type InvalidMaskError struct {
	Pattern string
	Pos     int // grapheme index into the pattern
	Char    string
}

func (e *InvalidMaskError) Error() string {
	if e.Char == "" {
		return fmt.Sprintf("invalid mask %q: dangling escape at %d", e.Pattern, e.Pos)
	}
	return fmt.Sprintf("invalid mask %q: unknown slot %q at %d", e.Pattern, e.Char, e.Pos)
}

func (e *InvalidMaskError) Is(target error) bool {
	return target == ErrInvalidMask
}

// Compile parses a mask pattern into tokens, one per slot plus the
// trailing sentinel.
//
// Slot characters: "0" digit, "9" optional digit, "#" digit or sign,
// "." decimal separator, "," grouping separator, "-" sign, "+" plus
// sign, "H"/"h" hex, "O"/"o" octal, "D"/"d" decimal, "l" letter,
// "a" letter or digit, "c" letter, digit or space, "_" any character.
// A space or a "\"-escaped character is a literal separator.
//
// Digit slots before a decimal separator shift right-to-left, digit
// slots after it fill left-to-right; any non-number slot resets the
// direction for the next number field.
func Compile(pattern string) ([]Token, error) {
	var out []Token

	startSub, startSec := 0, 0
	secID := 0
	last := Mask{Kind: None}
	dir := Rtol
	esc := false
	idx := 0

	flush := func(m Mask) {
		if m.Kind == Separator || m.Section() != last.Section() {
			for j := startSec; j < idx; j++ {
				out[j].SecID = secID
				out[j].SecStart = startSec
				out[j].SecEnd = idx
			}
			secID++
			startSec = idx
		}
		if m.Kind == Separator || m.SubSection() != last.SubSection() {
			for j := startSub; j < idx; j++ {
				out[j].SubStart = startSub
				out[j].SubEnd = idx
			}
			startSub = idx
		}
	}

	gpos := 0
	rest := pattern
	for {
		var g string
		if rest != "" {
			g, rest, _, _ = uniseg.FirstGraphemeClusterInString(rest, -1)
		}
		// g == "" is the terminal element that becomes the sentinel token

		var m Mask
		if esc {
			if g == "" {
				return nil, &InvalidMaskError{Pattern: pattern, Pos: gpos}
			}
			esc = false
			m = Mask{Kind: Separator, Sep: g}
		} else {
			switch g {
			case "0":
				m = Mask{Kind: Digit0, Dir: dir}
			case "9":
				m = Mask{Kind: Digit, Dir: dir}
			case "#":
				m = Mask{Kind: Numeric, Dir: dir}
			case ".":
				m = Mask{Kind: DecimalSep}
			case ",":
				m = Mask{Kind: GroupingSep}
			case "-":
				m = Mask{Kind: Sign}
			case "+":
				m = Mask{Kind: Plus}
			case "h":
				m = Mask{Kind: Hex}
			case "H":
				m = Mask{Kind: Hex0}
			case "o":
				m = Mask{Kind: Oct}
			case "O":
				m = Mask{Kind: Oct0}
			case "d":
				m = Mask{Kind: Dec}
			case "D":
				m = Mask{Kind: Dec0}
			case "l":
				m = Mask{Kind: Letter}
			case "a":
				m = Mask{Kind: LetterOrDigit}
			case "c":
				m = Mask{Kind: LetterDigitSpace}
			case "_":
				m = Mask{Kind: AnyChar}
			case " ":
				m = Mask{Kind: Separator, Sep: g}
			case "":
				m = Mask{Kind: None}
			case `\`:
				esc = true
				gpos++
				continue
			default:
				return nil, &InvalidMaskError{Pattern: pattern, Pos: gpos, Char: g}
			}
		}
		gpos++

		switch m.Kind {
		case DecimalSep:
			dir = Ltor
		case Hex0, Hex, Oct0, Oct, Dec0, Dec,
			Letter, LetterOrDigit, LetterDigitSpace, AnyChar, Separator:
			dir = Rtol
		}

		flush(m)

		out = append(out, Token{
			PeekLeft: last,
			Right:    m,
			Edit:     m.EditValue(),
		})
		idx++
		last = m

		if m.Kind == None {
			break
		}
	}

	// the sentinel closes its own zero-width section at the end
	n := len(out) - 1
	for j := startSec; j < len(out); j++ {
		out[j].SecID = secID
		out[j].SecStart = startSec
		out[j].SecEnd = n
	}
	for j := startSub; j < len(out); j++ {
		out[j].SubStart = startSub
		out[j].SubEnd = n
	}

	return out, nil
}
