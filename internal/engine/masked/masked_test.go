package masked

import (
	"errors"
	"testing"

	"github.com/dshills/textcore/internal/engine/store"
	"github.com/dshills/textcore/internal/engine/sym"
)

func newMask(t *testing.T, pattern string) *Core {
	t.Helper()
	c := NewCore()
	if err := c.SetMask(pattern); err != nil {
		t.Fatalf("SetMask(%q): %v", pattern, err)
	}
	return c
}

func wantText(t *testing.T, c *Core, want string) {
	t.Helper()
	if got := c.Text(); got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

func wantCursor(t *testing.T, c *Core, want int) {
	t.Helper()
	if got := c.Cursor(); got != want {
		t.Fatalf("cursor = %d, want %d", got, want)
	}
}

func TestSingleDigit(t *testing.T) {
	c := newMask(t, "#")
	wantCursor(t, c, 1)
	c.AdvanceCursor('1')
	wantCursor(t, c, 1)
	c.InsertChar('1')
	wantText(t, c, "1")
}

func TestDigitsShiftAndRemove(t *testing.T) {
	c := newMask(t, "##")
	wantCursor(t, c, 2)
	c.AdvanceCursor('1')
	wantCursor(t, c, 2)
	c.InsertChar('1')
	wantCursor(t, c, 2)
	wantText(t, c, " 1")
	c.InsertChar('2')
	wantCursor(t, c, 2)
	wantText(t, c, "12")
	c.InsertChar('3')
	wantCursor(t, c, 2)
	wantText(t, c, "12")
	c.RemovePrev()
	wantText(t, c, " 1")
	c.RemovePrev()
	wantText(t, c, "  ")

	c.SetText("12")
	c.SetCursor(1, false)
	c.RemovePrev()
	wantCursor(t, c, 1)
	wantText(t, c, " 2")

	c.SetText("12")
	c.SetCursor(1, false)
	c.RemoveNext()
	wantCursor(t, c, 2)
	wantText(t, c, " 1")

	c.SetText("12")
	c.SetCursor(2, false)
	c.RemovePrev()
	wantCursor(t, c, 2)
	wantText(t, c, " 1")
	c.RemovePrev()
	wantCursor(t, c, 2)
	wantText(t, c, "  ")
	c.RemovePrev()
	wantCursor(t, c, 0)
	wantText(t, c, "  ")
	c.RemovePrev()
	wantCursor(t, c, 0)
	wantText(t, c, "  ")

	c.SetText("12")
	c.SetCursor(2, false)
	c.RemoveNext()
	wantCursor(t, c, 2)
	wantText(t, c, "12")
}

func TestZeroFilledDigits(t *testing.T) {
	c := newMask(t, "##0")
	c.SetCursor(0, false)
	c.AdvanceCursor('1')
	wantCursor(t, c, 3)
	c.InsertChar('1')
	wantText(t, c, "  1")
	c.SetCursor(0, false)
	c.AdvanceCursor('2')
	wantCursor(t, c, 2)
	c.InsertChar('2')
	wantText(t, c, " 21")
	wantCursor(t, c, 2)

	c.RemovePrev()
	wantText(t, c, "  1")
	wantCursor(t, c, 2)
	c.RemoveNext()
	wantText(t, c, "  0")
	wantCursor(t, c, 3)
	c.RemovePrev()
	wantCursor(t, c, 0)
}

func TestIntegerRunIsServedFirst(t *testing.T) {
	c := newMask(t, "###.##")
	c.SetCursor(0, false)
	c.AdvanceCursor('1')
	wantCursor(t, c, 3)
	c.InsertChar('1')
	wantText(t, c, "  1.  ")
	c.AdvanceCursor('2')
	c.InsertChar('2')
	wantText(t, c, " 12.  ")
	c.AdvanceCursor('3')
	c.InsertChar('3')
	wantText(t, c, "123.  ")
	wantCursor(t, c, 3)

	// integer run full: no jump into the fraction
	c.AdvanceCursor('4')
	wantCursor(t, c, 3)
	c.InsertChar('4')
	wantText(t, c, "123.  ")
}

func TestFractionInput(t *testing.T) {
	c := newMask(t, "###.0##")
	wantText(t, c, "   .0  ")
	c.SetCursor(0, false)
	c.AdvanceCursor('.')
	wantCursor(t, c, 3)
	c.InsertChar('.')
	wantCursor(t, c, 4)
	c.InsertChar('1')
	wantText(t, c, "   .1  ")
	c.AdvanceCursor('2')
	c.InsertChar('2')
	wantText(t, c, "   .12 ")
	c.AdvanceCursor('3')
	c.InsertChar('3')
	wantText(t, c, "   .123")
	c.AdvanceCursor('4')
	c.InsertChar('4')
	wantText(t, c, "   .123")

	c.RemovePrev()
	wantText(t, c, "   .12 ")
	c.RemovePrev()
	wantText(t, c, "   .1  ")
	c.RemovePrev()
	wantText(t, c, "   .0  ")
	wantCursor(t, c, 4)
	c.RemovePrev()
	wantCursor(t, c, 3)
	c.RemovePrev()
	wantCursor(t, c, 0)

	c.SetText("123.456")
	c.SetCursor(3, false)
	c.RemoveNext()
	wantCursor(t, c, 4)
	wantText(t, c, "123.456")
	c.RemoveNext()
	wantCursor(t, c, 4)
	wantText(t, c, "123.56 ")
	c.RemoveNext()
	wantCursor(t, c, 4)
	wantText(t, c, "123.6  ")
	c.RemoveNext()
	wantCursor(t, c, 4)
	wantText(t, c, "123.0  ")
	c.RemoveNext()
	wantCursor(t, c, 7)
	wantText(t, c, "123.0  ")
}

func TestRemoveRange(t *testing.T) {
	c := newMask(t, "###.0##")
	c.SetText("123.456")
	c.SelectAll()
	if start, end := c.Selection(); start != 0 || end != 7 {
		t.Fatalf("selection = %d..%d, want 0..7", start, end)
	}
	if _, err := c.RemoveRange(0, 7); err != nil {
		t.Fatalf("RemoveRange: %v", err)
	}
	wantText(t, c, "   .0  ")

	c.SetText("123.456")
	if _, err := c.RemoveRange(2, 5); err != nil {
		t.Fatalf("RemoveRange: %v", err)
	}
	wantText(t, c, " 12.56 ")
}

func TestRemoveRangeOutOfBounds(t *testing.T) {
	c := newMask(t, "###")
	if _, err := c.RemoveRange(1, 9); !errors.Is(err, store.ErrRangeOutOfBounds) {
		t.Fatalf("RemoveRange(1, 9) = %v, want range error", err)
	}
	if changed, err := c.RemoveRange(2, 2); err != nil || changed {
		t.Fatalf("empty range = (%v, %v), want no-op", changed, err)
	}
}

func TestFractionMidInsert(t *testing.T) {
	c := newMask(t, "###.0##")
	c.SetText("   .0  ")
	c.SetCursor(5, false)
	c.AdvanceCursor('1')
	wantCursor(t, c, 5)
	c.InsertChar('1')
	wantText(t, c, "   .01 ")
}

func TestSignOnFreeNumericSlot(t *testing.T) {
	c := newMask(t, "###.###")
	c.SetText("  1.0  ")

	c.AdvanceCursor('-')
	wantCursor(t, c, 3)
	c.InsertChar('-')
	wantText(t, c, " -1.0  ")

	c.InsertChar('-')
	wantText(t, c, "  1.0  ")
}

func TestSignOnExplicitSlot(t *testing.T) {
	c := newMask(t, "###.###-")
	c.SetText("  1.0   ")

	c.AdvanceCursor('-')
	c.InsertChar('-')
	wantText(t, c, "  1.0  -")

	c = newMask(t, "###.###+")
	c.SetText("  1.0   ")

	c.AdvanceCursor('-')
	c.InsertChar('-')
	wantText(t, c, "  1.0  -")
}

func TestSignTogglesFromAnySlot(t *testing.T) {
	c := newMask(t, "###.###")
	c.SetText("  1.0  ")

	// the sign toggles regardless of the cursor slot, cursor stays
	for pos := 0; pos <= 7; pos++ {
		c.SetCursor(pos, false)
		c.InsertChar('-')
		if pos%2 == 0 {
			wantText(t, c, " -1.0  ")
		} else {
			wantText(t, c, "  1.0  ")
		}
		wantCursor(t, c, pos)
	}
}

func TestSignBehindSeparatorPrefix(t *testing.T) {
	c := newMask(t, `\X###.###-`)
	c.SetText("   1.0   ")

	c.AdvanceCursor('-')
	wantCursor(t, c, 4)
	c.InsertChar('-')
	wantText(t, c, "   1.0  -")
}

func TestSectionCursor(t *testing.T) {
	tests := []struct {
		pattern string
		pos     int
		ok      bool
	}{
		{"", 0, false},
		{"#", 1, true},
		{"##", 2, true},
		{"###", 3, true},
		{"##0", 3, true},
		{"#00", 3, true},
		{"000", 3, true},
		{"###.#", 3, true},
		{"###.##", 3, true},
		{"###.###", 3, true},
		{"###.0", 3, true},
		{"###.0##", 3, true},
		{"###.00", 3, true},
		{"###.00#", 3, true},
		{"###.000", 3, true},
		{"##0.000", 3, true},
		{"#00.000", 3, true},
		{"990.000-", 3, true},
		{"990.000+", 3, true},
		{"-990.000-", 4, true},
		{"+990.000+", 4, true},
		{`##\/##\/####`, 2, true},
		{"###,##0.0##", 7, true},
		{"###,##0.0##-", 7, true},
		{"###,##0.0##+", 7, true},
		{`\€ ###,##0.0##+`, 0, false},
		{"HHH", 0, true},
		{"HH HH HH", 0, true},
		{"llllll", 0, true},
		{"aaaaaa", 0, true},
		{"cccccc", 0, true},
		{"______", 0, true},
		{`dd\°dd\'dd\"`, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			c := newMask(t, tc.pattern)
			pos, ok := c.SectionCursor(0)
			if ok != tc.ok || (ok && pos != tc.pos) {
				t.Errorf("SectionCursor(0) = (%d, %v), want (%d, %v)", pos, ok, tc.pos, tc.ok)
			}
		})
	}

	c := newMask(t, `\€ ###,##0.0##+`)
	if pos, ok := c.NextSectionCursor(0); !ok || pos != 9 {
		t.Errorf("NextSectionCursor(0) = (%d, %v), want (9, true)", pos, ok)
	}
}

func TestSectionCursorPastEnd(t *testing.T) {
	c := newMask(t, "###,##0.0##-")
	if _, ok := c.SectionCursor(12); ok {
		t.Errorf("SectionCursor(12) ok, want none")
	}
	if pos, ok := c.SectionCursor(11); !ok || pos != 7 {
		t.Errorf("SectionCursor(11) = (%d, %v), want (7, true)", pos, ok)
	}
}

func TestSeparatorAdvances(t *testing.T) {
	c := newMask(t, `##\/##\/####`)
	c.SetCursor(0, false)
	c.AdvanceCursor('/')
	wantCursor(t, c, 2)
	c.InsertChar('/')
	wantCursor(t, c, 5)

	c = newMask(t, `dd\°dd\'dd\"`)
	c.SetCursor(0, false)
	c.AdvanceCursor('\'')
	wantCursor(t, c, 5)
	c.InsertChar('\'')
	wantCursor(t, c, 6)

	c = newMask(t, `90\°90\'90\"`)
	c.SetCursor(0, false)
	c.AdvanceCursor('\'')
	wantCursor(t, c, 5)
	c.InsertChar('\'')
	wantCursor(t, c, 8)
	c.AdvanceCursor('"')
	wantCursor(t, c, 8)
	c.InsertChar('"')
	wantCursor(t, c, 9)

	c = newMask(t, `\€ ###,##0.0##+`)
	c.SetCursor(0, false)
	c.AdvanceCursor('€')
	wantCursor(t, c, 0)
	c.InsertChar('€')
	wantCursor(t, c, 9)
}

func TestGroupingReformat(t *testing.T) {
	c := newMask(t, "###,##0")
	for _, r := range "1234" {
		c.AdvanceCursor(r)
		c.InsertChar(r)
	}
	wantText(t, c, "  1,234")

	c.RemovePrev()
	wantText(t, c, "    123")
}

func TestSetTextPadsAndTruncates(t *testing.T) {
	c := newMask(t, "###")
	c.SetText("1")
	wantText(t, c, "1  ")
	c.SetText("12345")
	wantText(t, c, "123")
}

func TestIsEmpty(t *testing.T) {
	c := newMask(t, "###.0##")
	if !c.IsEmpty() {
		t.Fatalf("fresh mask not empty")
	}
	c.AdvanceCursor('1')
	c.InsertChar('1')
	if c.IsEmpty() {
		t.Fatalf("mask with input still empty")
	}
	c.Clear()
	if !c.IsEmpty() {
		t.Fatalf("cleared mask not empty")
	}
	wantText(t, c, "   .0  ")
}

func TestTypeCharReplacesSelection(t *testing.T) {
	c := newMask(t, "##0")
	c.SetText("123")
	c.SelectAll()
	c.TypeChar('7')
	wantText(t, c, "  7")
}

func TestBackspaceAndDelete(t *testing.T) {
	c := newMask(t, "##0")
	c.SetText("123")
	c.SetCursor(3, false)
	if !c.Backspace() {
		t.Fatalf("Backspace reported no change")
	}
	wantText(t, c, " 12")

	c.SetText("123")
	c.SetCursor(0, false)
	if !c.Delete() {
		t.Fatalf("Delete reported no change")
	}
	wantText(t, c, " 23")
	wantCursor(t, c, 1)
}

func TestDisplayTextUsesSymbols(t *testing.T) {
	c := newMask(t, "###,##0.0##")
	c.SetSymbols(sym.Symbols{Decimal: ',', Grouping: '.', Negative: '-', Positive: ' '})
	c.SetText("  1,234.5  ")
	if got := c.DisplayText(); got != "  1.234,5  " {
		t.Fatalf("DisplayText = %q, want %q", got, "  1.234,5  ")
	}
}

func TestSymbolsMapInput(t *testing.T) {
	c := newMask(t, "##0.0")
	c.SetSymbols(sym.Symbols{Decimal: ',', Grouping: '.', Negative: '-', Positive: ' '})
	c.SetCursor(0, false)
	// the locale decimal comma lands on the canonical "." slot
	c.AdvanceCursor(',')
	wantCursor(t, c, 3)
	c.InsertChar(',')
	wantCursor(t, c, 4)
	wantText(t, c, "  0.0")
}

func TestMaskRoundTrip(t *testing.T) {
	pattern := `\€ ###,##0.0##+`
	c := newMask(t, pattern)
	if got := c.Mask(); got != pattern {
		t.Fatalf("Mask() = %q, want %q", got, pattern)
	}
}
