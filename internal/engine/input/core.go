// Package input provides a single-line plain text editing core.
//
// The core tracks a grapheme-indexed cursor, a selection anchor and a
// viewport (offset + width) over one line of text. It holds no rendering
// state beyond the viewport: widgets read offset, width and cursor to
// place the caret and decide visibility, and mutate only through the
// operations here.
package input

import (
	"github.com/dshills/textcore/internal/engine/grapheme"
)

// Core is a single-line editing state machine. Cursor, anchor and offset
// are grapheme indices into the value.
type Core struct {
	value string
	len   int

	offset int
	width  int

	cursor int
	anchor int
}

// NewCore returns an empty editing core.
func NewCore() *Core {
	return &Core{}
}

// Value returns the current text.
func (c *Core) Value() string {
	return c.value
}

// SetValue replaces the text and resets cursor, anchor and offset.
func (c *Core) SetValue(s string) {
	c.value = s
	c.len = grapheme.Count(s)
	c.cursor = 0
	c.anchor = 0
	c.offset = 0
}

// Clear empties the core.
func (c *Core) Clear() {
	c.SetValue("")
}

// IsEmpty reports whether the value is empty.
func (c *Core) IsEmpty() bool {
	return c.value == ""
}

// Len returns the value length as a grapheme count.
func (c *Core) Len() int {
	return c.len
}

// Offset returns the first visible grapheme index.
func (c *Core) Offset() int {
	return c.offset
}

// SetOffset scrolls the viewport, keeping the cursor visible.
func (c *Core) SetOffset(offset int) {
	switch {
	case offset > c.len:
		c.offset = c.len
	case offset > c.cursor:
		c.offset = c.cursor
	case offset+c.width < c.cursor:
		c.offset = c.cursor - c.width
	case offset < 0:
		c.offset = 0
	default:
		c.offset = offset
	}
}

// Width returns the viewport width in graphemes.
func (c *Core) Width() int {
	return c.width
}

// SetWidth resizes the viewport, keeping the cursor visible.
func (c *Core) SetWidth(width int) {
	c.width = width
	if c.offset+width < c.cursor {
		c.offset = c.cursor - width
	}
}

// Cursor returns the cursor as a grapheme index.
func (c *Core) Cursor() int {
	return c.cursor
}

// Anchor returns the selection anchor as a grapheme index.
func (c *Core) Anchor() int {
	return c.anchor
}

// SetCursor moves the cursor, clamped to the value. The anchor follows
// unless extend is set. It reports whether cursor or anchor changed.
func (c *Core) SetCursor(cursor int, extend bool) bool {
	oldCursor, oldAnchor := c.cursor, c.anchor

	cursor = min(max(cursor, 0), c.len)
	c.cursor = cursor
	if !extend {
		c.anchor = cursor
	}

	if c.offset > cursor {
		c.offset = cursor
	} else if c.offset+c.width < cursor {
		c.offset = cursor - c.width
	}

	return c.cursor != oldCursor || c.anchor != oldAnchor
}

// HasSelection reports whether a nonempty selection exists.
func (c *Core) HasSelection() bool {
	return c.anchor != c.cursor
}

// Selection returns the selected grapheme range, normalized.
func (c *Core) Selection() (start, end int) {
	if c.cursor < c.anchor {
		return c.cursor, c.anchor
	}
	return c.anchor, c.cursor
}

// SetSelection selects the range from anchor to cursor.
func (c *Core) SetSelection(anchor, cursor int) bool {
	oldStart, oldEnd := c.Selection()
	c.SetCursor(anchor, false)
	c.SetCursor(cursor, true)
	newStart, newEnd := c.Selection()
	return oldStart != newStart || oldEnd != newEnd
}

// SelectAll selects the whole value.
func (c *Core) SelectAll() bool {
	oldStart, oldEnd := c.Selection()
	c.SetCursor(0, false)
	c.SetCursor(c.len, true)
	newStart, newEnd := c.Selection()
	return oldStart != newStart || oldEnd != newEnd
}

// byteAtCol returns the byte range of the grapheme at col. One past the
// last grapheme yields an empty range at the end.
func (c *Core) byteAtCol(col int) (int, int) {
	it := grapheme.NewIter(c.value, 0)
	i := 0
	for {
		g, ok := it.Next()
		if !ok {
			n := len(c.value)
			return n, n
		}
		if i == col {
			return g.ByteStart, g.ByteEnd
		}
		i++
	}
}

// colAtByte returns the index of the grapheme containing the byte offset.
func (c *Core) colAtByte(b int) int {
	it := grapheme.NewIter(c.value, 0)
	col := 0
	for {
		g, ok := it.Next()
		if !ok || b < g.ByteEnd {
			return col
		}
		col++
	}
}

// ByteAt returns the byte range of the grapheme at col.
func (c *Core) ByteAt(col int) (start, end int) {
	return c.byteAtCol(min(max(col, 0), c.len))
}

// BytePos returns the grapheme index containing byte offset b.
func (c *Core) BytePos(b int) int {
	return c.colAtByte(min(max(b, 0), len(c.value)))
}

// Replace substitutes the grapheme range [start, end) with text. It is
// the single mutation primitive: length, cursor, anchor and viewport are
// all reconciled here. Cursor and anchor positions before the range keep
// their place, positions inside it snap to the end of the inserted text,
// and positions after it shift by the length delta. It reports whether
// value or selection changed.
func (c *Core) Replace(start, end int, text string) bool {
	start = min(max(start, 0), c.len)
	end = min(max(end, start), c.len)

	bs, _ := c.byteAtCol(start)
	be, _ := c.byteAtCol(end)

	newValue := c.value[:bs] + text + c.value[be:]
	oldValue, oldCursor, oldAnchor := c.value, c.cursor, c.anchor

	oldLen := c.len
	// Grapheme index just past the inserted text in the new value. Counted
	// on the new value so scalars that join across the seam are handled.
	insEnd := grapheme.Count(newValue[:bs+len(text)])
	c.value = newValue
	c.len = grapheme.Count(newValue)
	delta := c.len - oldLen

	shift := func(pos int) int {
		switch {
		case pos < start:
			return pos
		case pos <= end:
			return insEnd
		default:
			return pos + delta
		}
	}
	c.cursor = shift(c.cursor)
	c.anchor = shift(c.anchor)

	if c.offset > c.cursor {
		c.offset = c.cursor
	} else if c.offset+c.width < c.cursor {
		c.offset = c.cursor - c.width
	}

	return c.value != oldValue || c.cursor != oldCursor || c.anchor != oldAnchor
}

// InsertChar inserts r at col.
func (c *Core) InsertChar(col int, r rune) bool {
	return c.Replace(col, col, string(r))
}

// InsertString inserts s at col.
func (c *Core) InsertString(col int, s string) bool {
	return c.Replace(col, col, s)
}

// RemoveRange deletes the grapheme range [start, end).
func (c *Core) RemoveRange(start, end int) bool {
	return c.Replace(start, end, "")
}

// StrSlice returns the text of the grapheme range [start, end).
func (c *Core) StrSlice(start, end int) string {
	start = min(max(start, 0), c.len)
	end = min(max(end, start), c.len)
	bs, _ := c.byteAtCol(start)
	be, _ := c.byteAtCol(end)
	return c.value[bs:be]
}

// SelectedText returns the text of the current selection.
func (c *Core) SelectedText() string {
	start, end := c.Selection()
	return c.StrSlice(start, end)
}

// NextWordBoundary returns the next whitespace transition at or after the
// end of the cluster at col. The end of the value is a valid boundary; ok
// is false only when col is already there.
func (c *Core) NextWordBoundary(col int) (int, bool) {
	if col >= c.len {
		return 0, false
	}
	b, _ := c.byteAtCol(col)
	it := grapheme.NewIterAt(c.value, 0, b)
	first, _ := it.Next()
	class := first.IsWhitespace()
	pos := col + 1
	for {
		g, ok := it.Next()
		if !ok || g.IsWhitespace() != class {
			return pos, true
		}
		pos++
	}
}

// PrevWordBoundary returns the previous whitespace transition at or
// before the start of the cluster at col. The start of the value is a
// valid boundary; ok is false only when col is already there.
func (c *Core) PrevWordBoundary(col int) (int, bool) {
	if col <= 0 {
		return 0, false
	}
	b, _ := c.byteAtCol(col)
	it := grapheme.NewIterAt(c.value, 0, b)
	first, _ := it.Prev()
	class := first.IsWhitespace()
	pos := col - 1
	for {
		g, ok := it.Prev()
		if !ok || g.IsWhitespace() != class {
			return pos, true
		}
		pos--
	}
}

// NextWordStart returns the start of the next word: whitespace is
// skipped, the index of the first non-whitespace cluster is returned.
func (c *Core) NextWordStart(col int) int {
	b, _ := c.byteAtCol(min(max(col, 0), c.len))
	it := grapheme.NewIterAt(c.value, 0, b)
	last := b
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		last = g.ByteStart
		if !g.IsWhitespace() {
			break
		}
	}
	return c.colAtByte(last)
}

// NextWordEnd skips whitespace, then runs to the end of the word.
func (c *Core) NextWordEnd(col int) int {
	b, _ := c.byteAtCol(min(max(col, 0), c.len))
	it := grapheme.NewIterAt(c.value, 0, b)
	last := b
	init := true
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		last = g.ByteStart
		if init {
			if !g.IsWhitespace() {
				init = false
			}
		} else if g.IsWhitespace() {
			break
		}
		last = g.ByteEnd
	}
	return c.colAtByte(last)
}

// PrevWordStart skips whitespace backwards, then runs to the start of
// the word.
func (c *Core) PrevWordStart(col int) int {
	b, _ := c.byteAtCol(min(max(col, 0), c.len))
	it := grapheme.NewIterAt(c.value, 0, b)
	last := b
	init := true
	for {
		g, ok := it.Prev()
		if !ok {
			break
		}
		if init {
			if !g.IsWhitespace() {
				init = false
			}
		} else if g.IsWhitespace() {
			break
		}
		last = g.ByteStart
	}
	return c.colAtByte(last)
}

// PrevWordEnd returns the end of the previous word.
func (c *Core) PrevWordEnd(col int) int {
	b, _ := c.byteAtCol(min(max(col, 0), c.len))
	it := grapheme.NewIterAt(c.value, 0, b)
	last := b
	for {
		g, ok := it.Prev()
		if !ok {
			break
		}
		if !g.IsWhitespace() {
			break
		}
		last = g.ByteStart
	}
	return c.colAtByte(last)
}

// WordStart returns the start of the word containing col; col itself when
// it is not inside a word.
func (c *Core) WordStart(col int) int {
	b, _ := c.byteAtCol(min(max(col, 0), c.len))
	it := grapheme.NewIterAt(c.value, 0, b)
	last := b
	for {
		g, ok := it.Prev()
		if !ok || g.IsWhitespace() {
			break
		}
		last = g.ByteStart
	}
	return c.colAtByte(last)
}

// WordEnd returns the end of the word containing col; col itself when it
// is not inside a word.
func (c *Core) WordEnd(col int) int {
	b, _ := c.byteAtCol(min(max(col, 0), c.len))
	it := grapheme.NewIterAt(c.value, 0, b)
	last := b
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		last = g.ByteStart
		if g.IsWhitespace() {
			break
		}
		last = g.ByteEnd
	}
	return c.colAtByte(last)
}

// IsWordBoundary reports whether col sits on a whitespace transition.
func (c *Core) IsWordBoundary(col int) bool {
	if col <= 0 || col >= c.len {
		return false
	}
	b, _ := c.byteAtCol(col)
	it := grapheme.NewIterAt(c.value, 0, b)
	prev, okPrev := it.Prev()
	it.SeekByte(b)
	next, okNext := it.Next()
	if !okPrev || !okNext {
		return false
	}
	return prev.IsWhitespace() != next.IsWhitespace()
}

// visibleRange returns the grapheme range currently inside the viewport.
func (c *Core) visibleRange() (start, end int) {
	start = c.offset
	end = min(c.offset+c.width, c.len)
	if start > end {
		start = end
	}
	return start, end
}

// VisibleText returns the text inside the viewport.
func (c *Core) VisibleText() string {
	start, end := c.visibleRange()
	return c.StrSlice(start, end)
}
