package masked

import "github.com/dshills/textcore/internal/engine/mask"

// numberCursor returns the default cursor for a number section: just
// right of the last integer digit, or the section start when the
// section has no integer digits.
func (c *Core) numberCursor(start, end int) int {
	for i := end - 1; i >= start; i-- {
		switch c.tokens[i].Right.Kind {
		case mask.Digit0, mask.Digit, mask.Numeric:
			if c.tokens[i].Right.Dir == mask.Rtol {
				return i + 1
			}
		}
	}
	return start
}

// SectionCursor returns the default cursor for the section at cursor.
// ok is false on separators and past the last slot.
func (c *Core) SectionCursor(cursor int) (int, bool) {
	if cursor < 0 || cursor >= len(c.tokens) {
		return 0, false
	}

	t := &c.tokens[cursor]
	switch {
	case t.Right.IsNumber():
		return c.numberCursor(t.SecStart, t.SecEnd), true
	case t.Right.IsSeparator(), t.Right.IsNone():
		return 0, false
	default:
		return t.SecStart, true
	}
}

// NextSectionCursor returns the default cursor for the next editable
// section after the one at cursor.
func (c *Core) NextSectionCursor(cursor int) (int, bool) {
	if cursor < 0 || cursor >= len(c.tokens) {
		return 0, false
	}

	t := &c.tokens[cursor]
	for {
		if t.Right.IsNone() {
			return 0, false
		}

		t = &c.tokens[t.SecEnd]

		switch {
		case t.Right.IsNumber():
			return c.numberCursor(t.SecStart, t.SecEnd), true
		case t.Right.IsSeparator():
			continue
		case t.Right.IsNone():
			return 0, false
		default:
			return t.SecStart, true
		}
	}
}

// PrevSectionCursor returns the default cursor for the previous
// editable section before the one at cursor.
func (c *Core) PrevSectionCursor(cursor int) (int, bool) {
	if cursor < 0 || cursor >= len(c.tokens) {
		return 0, false
	}

	t := &c.tokens[c.tokens[cursor].SecStart]
	for {
		if t.PeekLeft.IsNone() {
			return 0, false
		}

		t = &c.tokens[c.tokens[t.SecStart-1].SecStart]

		switch {
		case t.Right.IsNumber():
			return c.numberCursor(t.SecStart, t.SecEnd), true
		case t.Right.IsSeparator():
			continue
		default:
			return t.SecStart, true
		}
	}
}

// SectionRange returns the slot range of the section at cursor. ok is
// false on separators and past the last slot.
func (c *Core) SectionRange(cursor int) (start, end int, ok bool) {
	if cursor < 0 || cursor >= len(c.tokens) {
		return 0, 0, false
	}

	t := &c.tokens[cursor]
	if t.Right.IsSeparator() || t.Right.IsNone() {
		return 0, 0, false
	}
	return t.SecStart, t.SecEnd, true
}

// NextSectionRange returns the slot range of the next editable section.
func (c *Core) NextSectionRange(cursor int) (start, end int, ok bool) {
	if cursor < 0 || cursor >= len(c.tokens) {
		return 0, 0, false
	}

	t := &c.tokens[cursor]
	for {
		if t.Right.IsNone() {
			return 0, 0, false
		}

		t = &c.tokens[t.SecEnd]

		switch {
		case t.Right.IsSeparator():
			continue
		case t.Right.IsNone():
			return 0, 0, false
		default:
			return t.SecStart, t.SecEnd, true
		}
	}
}

// PrevSectionRange returns the slot range of the previous editable
// section.
func (c *Core) PrevSectionRange(cursor int) (start, end int, ok bool) {
	if cursor < 0 || cursor >= len(c.tokens) {
		return 0, 0, false
	}

	t := &c.tokens[c.tokens[cursor].SecStart]
	for {
		if t.PeekLeft.IsNone() {
			return 0, 0, false
		}

		t = &c.tokens[c.tokens[t.SecStart-1].SecStart]

		if t.Right.IsSeparator() {
			continue
		}
		return t.SecStart, t.SecEnd, true
	}
}

// IsSectionBoundary reports whether pos sits between two sections.
func (c *Core) IsSectionBoundary(pos int) bool {
	if pos <= 0 || pos >= len(c.tokens) {
		return false
	}
	return c.tokens[pos-1].SecID != c.tokens[pos].SecID
}

// SetDefaultCursor places the cursor at the default position of the
// first editable section, slot 0 when there is none.
func (c *Core) SetDefaultCursor() {
	if pos, ok := c.SectionCursor(0); ok {
		c.ed.SetCursor(pos, false)
	} else if pos, ok := c.NextSectionCursor(0); ok {
		c.ed.SetCursor(pos, false)
	} else {
		c.ed.SetCursor(0, false)
	}
}
