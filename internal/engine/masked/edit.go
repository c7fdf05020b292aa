package masked

// TypeChar is the keystroke entry point: it replaces the selection if
// one exists, finds the slot for r and inserts it there.
func (c *Core) TypeChar(r rune) bool {
	removed := false
	if c.ed.HasSelection() {
		start, end := c.ed.Selection()
		ok, err := c.RemoveRange(start, end)
		if err == nil && ok {
			removed = true
		}
		c.ed.SetCursor(start, false)
	}
	moved := c.AdvanceCursor(r)
	inserted := c.InsertChar(r)
	return removed || moved || inserted
}

// Backspace deletes the selection, or the slot left of the cursor.
func (c *Core) Backspace() bool {
	if c.ed.HasSelection() {
		start, end := c.ed.Selection()
		ok, err := c.RemoveRange(start, end)
		if err != nil {
			return false
		}
		c.ed.SetCursor(start, false)
		return ok
	}
	before := c.ed.Cursor()
	text := c.ed.Value()
	c.RemovePrev()
	return c.ed.Cursor() != before || c.ed.Value() != text
}

// Delete deletes the selection, or the slot at the cursor.
func (c *Core) Delete() bool {
	if c.ed.HasSelection() {
		start, end := c.ed.Selection()
		ok, err := c.RemoveRange(start, end)
		if err != nil {
			return false
		}
		c.ed.SetCursor(start, false)
		return ok
	}
	before := c.ed.Cursor()
	text := c.ed.Value()
	c.RemoveNext()
	return c.ed.Cursor() != before || c.ed.Value() != text
}
