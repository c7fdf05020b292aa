package mask

import (
	"fmt"
	"strings"
)

// Token is one compiled slot of an input mask, annotated with its
// position in the section and sub-section structure. All positions are
// grapheme indices into the mask.
//
// Right is the slot at this cursor position; PeekLeft the slot before
// it. The trailing sentinel token has Right.Kind == None, so the cursor
// position past the last slot still carries a valid PeekLeft.
type Token struct {
	SecID    int
	SecStart int
	SecEnd   int
	SubStart int
	SubEnd   int

	PeekLeft Mask
	Right    Mask

	// Edit is the default character of the slot, Right.EditValue().
	Edit string
}

// IsIntegerPart reports whether the token sits in the integer digits of
// a number field.
func (t *Token) IsIntegerPart() bool {
	return t.PeekLeft.IsRtol() || t.PeekLeft.IsNone() && t.Right.IsRtol()
}

func (t *Token) String() string {
	return fmt.Sprintf("#%d:%d-%d %v%v|%v%v",
		t.SecID, t.SubStart, t.SubEnd,
		t.PeekLeft.Dir, t.PeekLeft, t.Right.Dir, t.Right)
}

// EmptySection concatenates the default characters of the tokens. For a
// full token slice this is the default display value of the mask.
func EmptySection(tokens []Token) string {
	var buf strings.Builder
	for i := range tokens {
		buf.WriteString(tokens[i].Edit)
	}
	return buf.String()
}

// Pattern reassembles the mask pattern from compiled tokens.
func Pattern(tokens []Token) string {
	var buf strings.Builder
	for i := range tokens {
		buf.WriteString(tokens[i].Right.String())
	}
	return buf.String()
}
