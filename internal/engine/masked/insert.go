package masked

import "github.com/dshills/textcore/internal/engine/mask"

// AdvanceCursor scans from the cursor for the position where typing r
// should land and moves the cursor there. The cursor stays put when no
// position accepts r. It reports whether the cursor moved.
//
// Integer digits are served before anything right of them, signs find
// their slot anywhere in the number, grouping separators are skipped,
// and fraction input left-aligns by sliding over empty slots.
func (c *Core) AdvanceCursor(r rune) bool {
	if len(c.tokens) == 0 {
		return false
	}

	cur := c.ed.Cursor()
	tc := &c.tokens[cur]
	nc := cur

	for {
		t := &c.tokens[nc]

		if c.canInsertIntegerLeft(t, nc, r) {
			break
		} else if c.canInsertInteger(t, nc, r) {
			break
		} else if c.canInsertSign(t, nc, r) {
			break
		} else if c.canInsertDecimalSep(t, r) {
			break
		} else if t.Right.Kind == mask.GroupingSep {
			nc++
		} else if c.canInsertSeparator(t, r) {
			break
		} else if c.canMoveLeftInFraction(tc, t, nc, r) {
			nc--
		} else if c.canInsertFraction(tc, t, r) {
			break
		} else if c.canInsertOther(t, r) {
			break
		} else if t.Right.IsNone() {
			// no place for r, stay where we are
			nc = cur
			break
		} else {
			nc++
		}
	}

	return c.ed.SetCursor(nc, false)
}

// canInsertOther matches the non-number slot kinds.
func (c *Core) canInsertOther(t *mask.Token, r rune) bool {
	switch t.Right.Kind {
	case mask.Hex0, mask.Hex, mask.Oct0, mask.Oct, mask.Dec0, mask.Dec,
		mask.Letter, mask.LetterOrDigit, mask.LetterDigitSpace, mask.AnyChar:
		return c.accepts(t.Right, r)
	default:
		return false
	}
}

// canInsertFraction reports whether r can go into the fraction slot t.
// Never jumps the cursor from the integer part into the fraction.
func (c *Core) canInsertFraction(tc, t *mask.Token, r rune) bool {
	if !t.Right.IsFraction() {
		return false
	}
	if !c.accepts(t.Right, r) {
		return false
	}
	return !tc.IsIntegerPart()
}

// canMoveLeftInFraction reports whether a digit could still go to the
// left of nc, which keeps fraction input left-aligned.
func (c *Core) canMoveLeftInFraction(tc, t *mask.Token, nc int, r rune) bool {
	if !t.PeekLeft.IsFraction() {
		return false
	}
	if !c.accepts(t.PeekLeft, r) {
		return false
	}
	if tc.IsIntegerPart() {
		return false
	}
	return c.graphemeAt(nc-1) == " "
}

// canInsertSign reports whether typing r as a sign can be absorbed by
// the number section at nc.
func (c *Core) canInsertSign(t *mask.Token, nc int, r rune) bool {
	if !(mask.Mask{Kind: mask.Sign}).Accepts(r, c.negSym(), c.decSep()) {
		return false
	}
	// boundary right/left, prefer the number on the left
	if t.PeekLeft.IsNumber() && (t.Right.IsLtor() || t.Right.IsNone()) {
		t = &c.tokens[nc-1]
	}
	if !t.Right.IsNumber() {
		return false
	}

	for i := t.SecStart; i < t.SecEnd; i++ {
		tt := &c.tokens[i]
		switch tt.Right.Kind {
		case mask.Plus, mask.Sign:
			return true
		case mask.Numeric:
			if tt.Right.Dir == mask.Rtol {
				// numeric slots hold a sign if not otherwise occupied
				g := c.graphemeAt(i)
				return tt.Right.CanDrop(g) || g == "-"
			}
		}
	}
	return false
}

// canInsertInteger reports whether nc is the insert position inside an
// integer run: after any blanks and the sign.
func (c *Core) canInsertInteger(t *mask.Token, nc int, r rune) bool {
	if !t.Right.IsRtol() {
		return false
	}
	if !c.accepts(t.Right, r) {
		return false
	}
	g := c.graphemeAt(nc)
	if t.Right.CanDrop(g) {
		return false
	}
	return g != "-"
}

func (c *Core) canInsertSeparator(t *mask.Token, r rune) bool {
	return t.Right.IsSeparator() && c.accepts(t.Right, r)
}

func (c *Core) canInsertDecimalSep(t *mask.Token, r rune) bool {
	return t.Right.Kind == mask.DecimalSep && c.accepts(t.Right, r)
}

// canInsertIntegerLeft reports whether nc sits at the gap right of an
// integer run that still has room.
func (c *Core) canInsertIntegerLeft(t *mask.Token, nc int, r rune) bool {
	if !t.PeekLeft.IsRtol() {
		return false
	}
	if !t.Right.IsLtor() && !t.Right.IsNone() {
		return false
	}

	left := &c.tokens[nc-1]
	if !c.accepts(left.Right, r) {
		return false
	}

	t0 := &c.tokens[left.SubStart]
	return t0.Right.CanDrop(c.graphemeAt(left.SubStart))
}

// InsertChar inserts r at the cursor if the slot accepts it and the
// section has room. AdvanceCursor should run first; it picks the slot
// this operates on.
func (c *Core) InsertChar(r rune) bool {
	if len(c.tokens) == 0 {
		return false
	}

	cur := c.ed.Cursor()

	t := &c.tokens[cur]
	if t.Right.IsNumber() && c.canInsertSign(t, cur, r) {
		if c.insertSign(r) {
			return true
		}
	}
	if t.PeekLeft.IsNumber() && (t.Right.IsLtor() || t.Right.IsNone()) {
		left := &c.tokens[cur-1]
		if c.canInsertSign(left, cur, r) && c.insertSign(r) {
			return true
		}
	}
	if t.Right.IsRtol() {
		if c.insertRtol(r) {
			return true
		}
	}
	if t.PeekLeft.IsRtol() && (t.Right.IsLtor() || t.Right.IsNone()) {
		if c.insertRtol(r) {
			return true
		}
	}
	if t.Right.IsLtor() {
		if c.insertLtor(r) {
			return true
		}
	}
	return false
}

// insertLtor inserts r into a left-to-right sub-section: overwrite an
// empty fraction slot, overwrite a matching literal, or shift the tail
// of the sub-section right.
func (c *Core) insertLtor(r rune) bool {
	cur := c.ed.Cursor()
	t := &c.tokens[cur]
	t9 := &c.tokens[t.SubEnd-1]

	g := c.graphemeAt(cur)
	if t.Right.IsFraction() && t.Right.CanOverwriteFraction(g) && c.accepts(t.Right, r) {
		// only if everything right of the cursor is still defaults
		rest := c.ed.StrSlice(cur+1, t.SubEnd)
		if rest == mask.EmptySection(c.tokens[cur+1:t.SubEnd]) {
			c.ed.Replace(cur, cur+1, string(r))
			return true
		}
	}

	if t.Right.CanOverwrite(g) && c.accepts(t.Right, r) {
		switch {
		case t.Right.IsSeparator():
			if next, ok := c.NextSectionCursor(cur); ok {
				return c.ed.SetCursor(next, false)
			}
			return c.ed.SetCursor(c.Len(), false)
		case t.Right.Kind == mask.DecimalSep:
			c.ed.SetCursor(cur+1, false)
			return true
		default:
			c.ed.Replace(cur, cur+1, string(r))
			return true
		}
	}

	if t9.Right.CanDrop(c.graphemeAt(t.SubEnd-1)) && c.accepts(t.Right, r) {
		c.ed.Replace(t.SubEnd-1, t.SubEnd, "")
		c.ed.InsertChar(cur, r)
		return true
	}
	return false
}

// insertRtol inserts r into a right-to-left sub-section by dropping the
// leading blank and shifting the digits left.
func (c *Core) insertRtol(r rune) bool {
	cur := c.ed.Cursor()
	t := &c.tokens[cur]

	// boundary right/left, prefer the run on the left
	if t.PeekLeft.IsRtol() && (t.Right.IsLtor() || t.Right.IsNone()) {
		t = &c.tokens[cur-1]
	}

	t0 := &c.tokens[t.SubStart]
	if t0.Right.CanDrop(c.graphemeAt(t.SubStart)) && c.accepts(t.Right, r) {
		c.ed.Replace(t.SubStart, t.SubStart+1, "")
		c.ed.InsertChar(cur-1, r)
		c.reformat(t.SubStart, t.SubEnd)
		return true
	}
	return false
}

// insertSign toggles the sign of the number section at the cursor. The
// sign lives in an explicit sign slot if the mask has one, else where a
// sign already stands, else in a free numeric slot.
func (c *Core) insertSign(r rune) bool {
	cur := c.ed.Cursor()
	t := &c.tokens[cur]

	if t.PeekLeft.IsNumber() && (t.Right.IsLtor() || t.Right.IsNone()) {
		t = &c.tokens[cur-1]
	}

	idx, ok := 0, false
	for i := t.SecStart; i < t.SecEnd; i++ {
		if k := c.tokens[i].Right.Kind; k == mask.Sign || k == mask.Plus {
			idx, ok = i, true
			break
		}
	}
	if !ok {
		for i := t.SecStart; i < t.SecEnd; i++ {
			if g := c.graphemeAt(i); g == "-" || g == "+" {
				idx, ok = i, true
				break
			}
		}
	}
	if !ok {
		for i := t.SecEnd - 1; i >= t.SecStart; i-- {
			tt := &c.tokens[i]
			if tt.Right.Kind == mask.Numeric && tt.Right.Dir == mask.Rtol &&
				tt.Right.CanDrop(c.graphemeAt(i)) {
				idx, ok = i, true
				break
			}
		}
	}
	if !ok {
		return false
	}

	if r != c.negSym() && r != '-' {
		return false
	}

	g := c.graphemeAt(idx)
	var cc rune
	switch c.tokens[idx].Right.Kind {
	case mask.Plus:
		if g == "-" {
			cc = '+'
		} else {
			cc = '-'
		}
	default:
		if g == "-" {
			cc = ' '
		} else {
			cc = '-'
		}
	}

	c.ed.Replace(idx, idx+1, string(cc))
	c.ed.SetCursor(cur, false)
	return true
}
