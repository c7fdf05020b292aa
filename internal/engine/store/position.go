package store

import "fmt"

// TextPosition addresses a grapheme cluster in the text. X is the column
// as a grapheme count, Y is the line index. Both start at zero.
type TextPosition struct {
	X int
	Y int
}

// Pos is shorthand for TextPosition{X: x, Y: y}.
func Pos(x, y int) TextPosition {
	return TextPosition{X: x, Y: y}
}

// Cmp orders positions by line, then column. It returns -1, 0 or 1.
func (p TextPosition) Cmp(o TextPosition) int {
	switch {
	case p.Y < o.Y:
		return -1
	case p.Y > o.Y:
		return 1
	case p.X < o.X:
		return -1
	case p.X > o.X:
		return 1
	}
	return 0
}

// Less reports whether p orders before o.
func (p TextPosition) Less(o TextPosition) bool {
	return p.Cmp(o) < 0
}

func (p TextPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// TextRange is a half-open range of positions: Start is included, End is
// not. Start and End are equal for an empty range.
type TextRange struct {
	Start TextPosition
	End   TextPosition
}

// Range builds a TextRange, swapping the endpoints when they are given in
// reverse order.
func Range(start, end TextPosition) TextRange {
	if end.Less(start) {
		start, end = end, start
	}
	return TextRange{Start: start, End: end}
}

// RangeAt returns the empty range at pos.
func RangeAt(pos TextPosition) TextRange {
	return TextRange{Start: pos, End: pos}
}

// IsEmpty reports whether the range covers no graphemes.
func (r TextRange) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether pos lies inside the range. The end position is
// not contained.
func (r TextRange) Contains(pos TextPosition) bool {
	return r.Start.Cmp(pos) <= 0 && pos.Cmp(r.End) < 0
}

// ContainsRange reports whether o lies fully inside r.
func (r TextRange) ContainsRange(o TextRange) bool {
	return r.Start.Cmp(o.Start) <= 0 && o.End.Cmp(r.End) <= 0
}

func (r TextRange) String() string {
	return fmt.Sprintf("%v-%v", r.Start, r.End)
}

// Span is a half-open byte range.
type Span struct {
	Start int
	End   int
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}
