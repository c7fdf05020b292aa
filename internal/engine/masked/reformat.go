package masked

import (
	"strings"

	"github.com/dshills/textcore/internal/engine/grapheme"
	"github.com/dshills/textcore/internal/engine/mask"
)

// reformat rebuilds the slot range [start, end) after a structural
// change. Right-to-left runs are re-rendered from their digits so the
// grouping separators land where they belong; left-to-right runs get
// their zero-filled slots restored. Cursor and selection stay put.
func (c *Core) reformat(start, end int) {
	if start >= end {
		return
	}

	switch {
	case c.tokens[start].Right.IsRtol():
		cursor, anchor := c.ed.Cursor(), c.ed.Anchor()

		sec := c.ed.StrSlice(start, end)
		out := c.renderNumber(sec, start, end)
		if out != sec {
			c.ed.Replace(start, end, out)
			c.ed.SetCursor(anchor, false)
			c.ed.SetCursor(cursor, true)
		}

	case c.tokens[start].Right.IsLtor():
		cursor, anchor := c.ed.Cursor(), c.ed.Anchor()

		sec := c.ed.StrSlice(start, end)
		var buf strings.Builder
		i := start
		it := grapheme.NewIter(sec, 0)
		for {
			g, ok := it.Next()
			if !ok {
				break
			}
			switch c.tokens[i].Right.Kind {
			case mask.Digit0, mask.Hex0, mask.Oct0, mask.Dec0:
				if g.Text == " " {
					buf.WriteByte('0')
				} else {
					buf.WriteString(g.Text)
				}
			default:
				buf.WriteString(g.Text)
			}
			i++
		}
		if out := buf.String(); out != sec {
			c.ed.Replace(start, end, out)
			c.ed.SetCursor(anchor, false)
			c.ed.SetCursor(cursor, true)
		}
	}
}

// renderNumber lays the digits of sec out right-aligned over the slots
// [start, end). Leading zeros are dropped, grouping slots get their
// separator only between digits, and a floating sign lands on the first
// free slot left of the digits.
func (c *Core) renderNumber(sec string, start, end int) string {
	neg := false
	var digits []byte
	for _, r := range sec {
		switch {
		case r >= '0' && r <= '9':
			if len(digits) == 0 && r == '0' {
				continue
			}
			digits = append(digits, byte(r))
		case r == '-':
			neg = true
		}
	}

	out := make([]byte, end-start)
	di := len(digits)
	signPending := neg
	for i := end - 1; i >= start; i-- {
		var b byte
		switch c.tokens[i].Right.Kind {
		case mask.Digit0:
			if di > 0 {
				di--
				b = digits[di]
			} else {
				b = '0'
			}
		case mask.Digit:
			if di > 0 {
				di--
				b = digits[di]
			} else {
				b = ' '
			}
		case mask.Numeric:
			if di > 0 {
				di--
				b = digits[di]
			} else if signPending {
				b = '-'
				signPending = false
			} else {
				b = ' '
			}
		case mask.GroupingSep:
			if di > 0 {
				b = ','
			} else if signPending {
				b = '-'
				signPending = false
			} else {
				b = ' '
			}
		case mask.Sign:
			signPending = false
			if neg {
				b = '-'
			} else {
				b = ' '
			}
		case mask.Plus:
			signPending = false
			if neg {
				b = '-'
			} else {
				b = '+'
			}
		default:
			b = ' '
		}
		out[i-start] = b
	}
	return string(out)
}

// DisplayText returns the buffer with the canonical number characters
// mapped to the active symbols, the way a widget should render it.
func (c *Core) DisplayText() string {
	var buf strings.Builder
	i := 0
	it := grapheme.NewIter(c.ed.Value(), 0)
	for {
		g, ok := it.Next()
		if !ok || i >= len(c.tokens) {
			break
		}
		switch k := c.tokens[i].Right.Kind; {
		case k == mask.Numeric && g.Text == "-":
			buf.WriteRune(c.negSym())
		case k == mask.DecimalSep && g.Text == ".":
			buf.WriteRune(c.decSep())
		case k == mask.GroupingSep && g.Text == ",":
			buf.WriteRune(c.grpSep())
		case k == mask.GroupingSep && g.Text == "-":
			buf.WriteRune(c.negSym())
		case k == mask.Sign && g.Text == "-":
			buf.WriteRune(c.negSym())
		case k == mask.Sign:
			buf.WriteRune(c.posSym())
		default:
			buf.WriteString(g.Text)
		}
		i++
	}
	return buf.String()
}
