package masked

import (
	"github.com/dshills/textcore/internal/engine/grapheme"
	"github.com/dshills/textcore/internal/engine/input"
	"github.com/dshills/textcore/internal/engine/mask"
	"github.com/dshills/textcore/internal/engine/sym"
)

// Core is the masked editing state machine: a plain single-line core
// plus the compiled mask tokens and the active number symbols.
type Core struct {
	ed     *input.Core
	tokens []mask.Token
	syms   sym.Symbols
}

// NewCore returns a core with an empty mask and canonical symbols.
func NewCore() *Core {
	return &Core{
		ed:   input.NewCore(),
		syms: sym.Default(),
	}
}

// SetMask compiles the pattern and resets the buffer to the default
// value with the default cursor.
func (c *Core) SetMask(pattern string) error {
	tokens, err := mask.Compile(pattern)
	if err != nil {
		return err
	}
	c.tokens = tokens
	c.Clear()
	return nil
}

// Mask returns the mask pattern.
func (c *Core) Mask() string {
	return mask.Pattern(c.tokens)
}

// Tokens returns the compiled mask. The slice is shared, not copied.
func (c *Core) Tokens() []mask.Token {
	return c.tokens
}

// SetSymbols sets the number symbols used to map input and output.
func (c *Core) SetSymbols(s sym.Symbols) {
	c.syms = s
}

// Symbols returns the active number symbols.
func (c *Core) Symbols() sym.Symbols {
	return c.syms
}

func (c *Core) decSep() rune {
	if c.syms.Decimal == 0 {
		return '.'
	}
	return c.syms.Decimal
}

func (c *Core) grpSep() rune {
	if c.syms.Grouping == 0 {
		// keep mask-idx == grapheme-idx even without a grouping char
		return ' '
	}
	return c.syms.Grouping
}

func (c *Core) negSym() rune {
	if c.syms.Negative == 0 {
		return '-'
	}
	return c.syms.Negative
}

func (c *Core) posSym() rune {
	if c.syms.Positive == 0 {
		return ' '
	}
	return c.syms.Positive
}

func (c *Core) accepts(m mask.Mask, r rune) bool {
	return m.Accepts(r, c.negSym(), c.decSep())
}

// graphemeAt returns the single grapheme occupying slot pos.
func (c *Core) graphemeAt(pos int) string {
	return c.ed.StrSlice(pos, pos+1)
}

// defaultValue is the display text of the empty mask.
func (c *Core) defaultValue() string {
	return mask.EmptySection(c.tokens)
}

// Clear resets the buffer to the default value and the default cursor.
func (c *Core) Clear() {
	c.ed.SetValue(c.defaultValue())
	c.SetDefaultCursor()
}

// Text returns the current buffer content.
func (c *Core) Text() string {
	return c.ed.Value()
}

// SetText sets the buffer without checking it against the mask. Too
// short values are padded with spaces, too long values truncated. The
// cursor moves to the default position.
func (c *Core) SetText(s string) {
	width := 0
	if len(c.tokens) > 0 {
		width = len(c.tokens) - 1
	}
	if width == 0 {
		c.ed.SetValue("")
		c.SetDefaultCursor()
		return
	}

	n := 0
	cut := len(s)
	it := grapheme.NewIter(s, 0)
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		n++
		if n == width {
			cut = g.ByteEnd
		}
	}
	if n > width {
		s = s[:cut]
		n = width
	}
	for ; n < width; n++ {
		s += " "
	}

	c.ed.SetValue(s)
	c.SetDefaultCursor()
}

// IsEmpty reports whether the buffer holds only default characters.
func (c *Core) IsEmpty() bool {
	return c.ed.Value() == c.defaultValue()
}

// Len returns the number of editable slots.
func (c *Core) Len() int {
	return c.ed.Len()
}

// Cursor returns the cursor slot index.
func (c *Core) Cursor() int {
	return c.ed.Cursor()
}

// Anchor returns the selection anchor slot index.
func (c *Core) Anchor() int {
	return c.ed.Anchor()
}

// SetCursor moves the cursor, extending the selection when extend is
// set.
func (c *Core) SetCursor(pos int, extend bool) bool {
	return c.ed.SetCursor(pos, extend)
}

// HasSelection reports whether a nonempty selection exists.
func (c *Core) HasSelection() bool {
	return c.ed.HasSelection()
}

// Selection returns the selected slot range, normalized.
func (c *Core) Selection() (start, end int) {
	return c.ed.Selection()
}

// SetSelection selects the range from anchor to cursor.
func (c *Core) SetSelection(anchor, cursor int) bool {
	return c.ed.SetSelection(anchor, cursor)
}

// SelectAll selects the whole buffer.
func (c *Core) SelectAll() bool {
	return c.ed.SelectAll()
}

// SelectedText returns the text of the current selection.
func (c *Core) SelectedText() string {
	return c.ed.SelectedText()
}

// StrSlice returns the text of the slot range [start, end).
func (c *Core) StrSlice(start, end int) string {
	return c.ed.StrSlice(start, end)
}

// ByteAt returns the byte range of the slot at pos.
func (c *Core) ByteAt(pos int) (start, end int) {
	return c.ed.ByteAt(pos)
}

// BytePos returns the slot index containing byte offset b.
func (c *Core) BytePos(b int) int {
	return c.ed.BytePos(b)
}

// Offset returns the first visible slot index.
func (c *Core) Offset() int {
	return c.ed.Offset()
}

// SetOffset scrolls the viewport, keeping the cursor visible.
func (c *Core) SetOffset(offset int) {
	c.ed.SetOffset(offset)
}

// Width returns the viewport width in slots.
func (c *Core) Width() int {
	return c.ed.Width()
}

// SetWidth resizes the viewport, keeping the cursor visible.
func (c *Core) SetWidth(width int) {
	c.ed.SetWidth(width)
}
