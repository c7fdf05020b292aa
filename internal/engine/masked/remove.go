package masked

import (
	"github.com/dshills/textcore/internal/engine/mask"
	"github.com/dshills/textcore/internal/engine/store"
)

// RemovePrev removes the slot content left of the cursor, refilling the
// sub-section with defaults. In a right-to-left run the cursor holds
// its position until the whole sub-section is empty, then jumps to its
// start; left-to-right runs simply step left.
func (c *Core) RemovePrev() {
	cur := c.ed.Cursor()
	if cur == 0 {
		return
	}

	left := &c.tokens[cur-1]

	switch {
	case left.Right.IsRtol():
		secStr := c.ed.StrSlice(left.SubStart, left.SubEnd)
		secEmpty := secStr == mask.EmptySection(c.tokens[left.SubStart:left.SubEnd])

		l0 := &c.tokens[left.SubStart]
		c.ed.Replace(cur-1, cur, "")
		c.ed.InsertString(left.SubStart, l0.Edit)
		c.reformat(left.SubStart, left.SubEnd)

		if secEmpty {
			c.ed.SetCursor(left.SubStart, false)
		}

	case left.Right.IsLtor():
		l9 := &c.tokens[left.SubEnd-1]
		c.ed.Replace(cur-1, cur, "")
		c.ed.InsertString(left.SubEnd-1, l9.Edit)
		c.reformat(left.SubStart, left.SubEnd)

		c.ed.SetCursor(cur-1, false)
	}
}

// RemoveNext removes the slot content right of the cursor. The mirror
// of RemovePrev: left-to-right runs keep the cursor until the
// sub-section is empty, right-to-left runs step right.
func (c *Core) RemoveNext() {
	cur := c.ed.Cursor()
	if cur >= len(c.tokens)-1 {
		return
	}

	right := &c.tokens[cur]

	switch {
	case right.Right.IsRtol():
		l0 := &c.tokens[right.SubStart]
		c.ed.Replace(cur, cur+1, "")
		c.ed.InsertString(right.SubStart, l0.Edit)
		c.reformat(right.SubStart, right.SubEnd)

		c.ed.SetCursor(cur+1, false)

	case right.Right.IsLtor():
		secStr := c.ed.StrSlice(right.SubStart, right.SubEnd)
		secEmpty := secStr == mask.EmptySection(c.tokens[right.SubStart:right.SubEnd])

		l9 := &c.tokens[right.SubEnd-1]
		c.ed.Replace(cur, cur+1, "")
		c.ed.InsertString(right.SubEnd-1, l9.Edit)
		c.reformat(right.SubStart, right.SubEnd)

		if secEmpty {
			c.ed.SetCursor(right.SubEnd, false)
		}
	}
}

// RemoveRange blanks the slot range [start, end), refilling each
// touched sub-section with its defaults.
func (c *Core) RemoveRange(start, end int) (bool, error) {
	if start < 0 || start > end || end > c.Len() {
		return false, &store.RangeOutOfBoundsError{
			Range: store.Range(store.Pos(start, 0), store.Pos(end, 0)),
		}
	}
	if start == end {
		return false, nil
	}

	t := &c.tokens[start]
	if start >= t.SubStart && end <= t.SubEnd {
		n := end - start
		switch {
		case t.Right.IsRtol():
			c.ed.Replace(start, end, "")
			fill := c.tokens[t.SubStart : t.SubStart+n]
			c.ed.InsertString(t.SubStart, mask.EmptySection(fill))
			c.reformat(t.SubStart, t.SubEnd)
		case t.Right.IsLtor():
			c.ed.Replace(start, end, "")
			fill := c.tokens[t.SubEnd-n : t.SubEnd]
			c.ed.InsertString(t.SubEnd-n, mask.EmptySection(fill))
			c.reformat(t.SubStart, t.SubEnd)
		}
		return true, nil
	}

	pos := start
	for {
		t := &c.tokens[pos]

		switch {
		case t.SubStart < start:
			// partial head of the range
			n := t.SubEnd - start
			switch {
			case t.Right.IsRtol():
				c.ed.Replace(start, t.SubEnd, "")
				fill := c.tokens[t.SubStart : t.SubStart+n]
				c.ed.InsertString(t.SubStart, mask.EmptySection(fill))
				c.reformat(t.SubStart, t.SubEnd)
			case t.Right.IsLtor():
				c.ed.Replace(start, t.SubEnd, "")
				fill := c.tokens[start:t.SubEnd]
				c.ed.InsertString(start, mask.EmptySection(fill))
				c.reformat(t.SubStart, t.SubEnd)
			}

		case t.SubEnd > end:
			// partial tail of the range
			n := end - t.SubStart
			switch {
			case t.Right.IsRtol():
				c.ed.Replace(t.SubStart, end, "")
				fill := c.tokens[t.SubStart:end]
				c.ed.InsertString(t.SubStart, mask.EmptySection(fill))
				c.reformat(t.SubStart, t.SubEnd)
			case t.Right.IsLtor():
				c.ed.Replace(t.SubStart, end, "")
				fill := c.tokens[t.SubEnd-n : t.SubEnd]
				c.ed.InsertString(t.SubEnd-n, mask.EmptySection(fill))
			}

		default:
			// whole sub-section
			c.ed.Replace(t.SubStart, t.SubEnd, "")
			fill := c.tokens[t.SubStart:t.SubEnd]
			c.ed.InsertString(t.SubStart, mask.EmptySection(fill))
		}

		pos = t.SubEnd
		if pos >= end {
			break
		}
	}
	return true, nil
}
