package store

import (
	"strings"

	"github.com/dshills/textcore/internal/engine/grapheme"
	"github.com/dshills/textcore/internal/engine/rope"
)

// RopeStore is a rope-backed multi-line TextStore.
type RopeStore struct {
	text rope.Rope
}

// NewRopeStore returns an empty multi-line store.
func NewRopeStore() *RopeStore {
	return &RopeStore{text: rope.New()}
}

// NewRopeStoreText returns a multi-line store over s.
func NewRopeStoreText(s string) *RopeStore {
	return &RopeStore{text: rope.FromString(s)}
}

// Rope returns the current rope snapshot.
func (s *RopeStore) Rope() rope.Rope {
	return s.text
}

func (s *RopeStore) IsMultiLine() bool {
	return true
}

func (s *RopeStore) String() string {
	return s.text.String()
}

func (s *RopeStore) SetString(t string) {
	s.text = rope.FromString(t)
}

func (s *RopeStore) LineCount() int {
	return s.text.LineCount()
}

// lineSpan returns the byte range of a line, terminator included. The row
// LineCount() is valid and empty.
func (s *RopeStore) lineSpan(row int) (Span, error) {
	lines := s.text.LineCount()
	if row < 0 || row > lines {
		return Span{}, &RowOutOfBoundsError{Row: row, Lines: lines}
	}
	if row == lines {
		n := s.text.Len()
		return Span{Start: n, End: n}, nil
	}
	return Span{
		Start: s.text.LineStartOffset(row),
		End:   s.text.LineStartOffset(row + 1),
	}, nil
}

func (s *RopeStore) LineAt(row int) (string, error) {
	span, err := s.lineSpan(row)
	if err != nil {
		return "", err
	}
	return s.text.Slice(span.Start, span.End), nil
}

func (s *RopeStore) LineGraphemes(row int) (*grapheme.Iter, error) {
	span, err := s.lineSpan(row)
	if err != nil {
		return nil, err
	}
	return grapheme.NewIter(s.text.Slice(span.Start, span.End), span.Start), nil
}

func (s *RopeStore) LineWidth(row int) (int, error) {
	it, err := s.LineGraphemes(row)
	if err != nil {
		return 0, err
	}
	width := 0
	for {
		g, ok := it.Next()
		if !ok {
			return width, nil
		}
		if !g.IsLineBreak() {
			width++
		}
	}
}

func (s *RopeStore) ByteRangeAt(pos TextPosition) (Span, error) {
	it, err := s.LineGraphemes(pos.Y)
	if err != nil {
		return Span{}, err
	}
	col := 0
	byteEnd := it.Offset()
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		if col == pos.X {
			return Span{Start: g.ByteStart, End: g.ByteEnd}, nil
		}
		col++
		byteEnd = g.ByteEnd
	}
	// One past the last grapheme is a valid, empty position.
	if col == pos.X {
		return Span{Start: byteEnd, End: byteEnd}, nil
	}
	return Span{}, &ColOutOfBoundsError{Col: pos.X, Width: col}
}

func (s *RopeStore) ByteRange(rng TextRange) (Span, error) {
	if rng.Start.Y != rng.End.Y {
		start, err := s.ByteRangeAt(rng.Start)
		if err != nil {
			return Span{}, err
		}
		end, err := s.ByteRangeAt(rng.End)
		if err != nil {
			return Span{}, err
		}
		return Span{Start: start.Start, End: end.Start}, nil
	}

	it, err := s.LineGraphemes(rng.Start.Y)
	if err != nil {
		return Span{}, err
	}
	start, end := -1, -1
	col := 0
	byteEnd := it.Offset()
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		if col == rng.Start.X {
			start = g.ByteStart
		}
		if col == rng.End.X {
			end = g.ByteStart
		}
		if start >= 0 && end >= 0 {
			break
		}
		col++
		byteEnd = g.ByteEnd
	}
	if col == rng.Start.X && start < 0 {
		start = byteEnd
	}
	if col == rng.End.X && end < 0 {
		end = byteEnd
	}
	if start < 0 {
		return Span{}, &ColOutOfBoundsError{Col: rng.Start.X, Width: col}
	}
	if end < 0 {
		return Span{}, &ColOutOfBoundsError{Col: rng.End.X, Width: col}
	}
	return Span{Start: start, End: end}, nil
}

func (s *RopeStore) BytePos(b int) (TextPosition, error) {
	if b < 0 || b > s.text.Len() {
		return TextPosition{}, &ByteOutOfBoundsError{Byte: b, Len: s.text.Len()}
	}
	row := s.text.LineAtByte(b)
	it, err := s.LineGraphemes(row)
	if err != nil {
		return TextPosition{}, err
	}
	col := 0
	for {
		g, ok := it.Next()
		if !ok || b < g.ByteEnd {
			return Pos(col, row), nil
		}
		col++
	}
}

func (s *RopeStore) ByteRangeToRange(span Span) (TextRange, error) {
	n := s.text.Len()
	if span.Start < 0 || span.Start > n {
		return TextRange{}, &ByteOutOfBoundsError{Byte: span.Start, Len: n}
	}
	if span.End < 0 || span.End > n {
		return TextRange{}, &ByteOutOfBoundsError{Byte: span.End, Len: n}
	}
	start, err := s.BytePos(span.Start)
	if err != nil {
		return TextRange{}, err
	}
	end, err := s.BytePos(span.End)
	if err != nil {
		return TextRange{}, err
	}
	return Range(start, end), nil
}

func (s *RopeStore) StrSlice(rng TextRange) (string, error) {
	span, err := s.ByteRange(rng)
	if err != nil {
		return "", err
	}
	return s.text.Slice(span.Start, span.End), nil
}

func (s *RopeStore) StrSliceBytes(span Span) (string, error) {
	n := s.text.Len()
	if span.Start < 0 || span.End > n || span.Start > span.End {
		return "", &RangeOutOfBoundsError{}
	}
	return s.text.Slice(span.Start, span.End), nil
}

func (s *RopeStore) Graphemes(rng TextRange, pos TextPosition) (*grapheme.Iter, error) {
	if !rng.Contains(pos) && pos != rng.End {
		return nil, &PosOutOfBoundsError{Pos: pos}
	}
	span, err := s.ByteRange(rng)
	if err != nil {
		return nil, err
	}
	posSpan, err := s.ByteRangeAt(pos)
	if err != nil {
		return nil, err
	}
	text := s.text.Slice(span.Start, span.End)
	return grapheme.NewIterAt(text, span.Start, posSpan.Start), nil
}

// normalizePos maps the end-of-text position (0, LineCount) onto the
// position of its byte offset, so edits at the very end report sensible
// coordinates.
func (s *RopeStore) normalizePos(pos TextPosition, byteOff int) TextPosition {
	if pos.X == 0 && pos.Y == s.text.LineCount() {
		p, err := s.BytePos(byteOff)
		if err == nil {
			return p
		}
	}
	return pos
}

// neighbors returns the grapheme clusters immediately before and after
// byte offset off. The previous cluster may be the terminator of the
// preceding line.
func (s *RopeStore) neighbors(row, off int) (prev, next grapheme.Grapheme, okPrev, okNext bool) {
	span, err := s.lineSpan(row)
	if err != nil {
		return
	}
	it := grapheme.NewIterAt(s.text.Slice(span.Start, span.End), span.Start, off)
	prev, okPrev = it.Prev()
	if !okPrev && row > 0 {
		pit, err := s.LineGraphemes(row - 1)
		if err == nil {
			pit.SeekEnd()
			prev, okPrev = pit.Prev()
		}
	}
	it.SeekByte(off)
	next, okNext = it.Peek()
	return
}

func (s *RopeStore) InsertChar(pos TextPosition, r rune) (TextRange, Span, error) {
	span, err := s.ByteRangeAt(pos)
	if err != nil {
		return TextRange{}, Span{}, err
	}
	pos = s.normalizePos(pos, span.Start)

	prev, next, okPrev, okNext := s.neighbors(pos.Y, span.Start)

	var affected TextRange
	switch {
	case r == '\n':
		// LF behind a CR completes an existing terminator.
		if okPrev && prev.Text == "\r" {
			affected = RangeAt(pos)
		} else {
			affected = TextRange{Start: pos, End: Pos(0, pos.Y+1)}
		}
	case r == '\r':
		// CR before an LF merges into its terminator.
		if okNext && next.Text == "\n" {
			affected = RangeAt(pos)
		} else {
			affected = TextRange{Start: pos, End: Pos(0, pos.Y+1)}
		}
	default:
		// A combining scalar joins a neighboring cluster; compare the
		// cluster count of the joined neighborhood against its parts.
		var buf strings.Builder
		parts := 1
		if okPrev {
			parts++
			buf.WriteString(prev.Text)
		}
		buf.WriteRune(r)
		if okNext {
			parts++
			buf.WriteString(next.Text)
		}
		if parts == grapheme.Count(buf.String()) {
			affected = TextRange{Start: pos, End: Pos(pos.X+1, pos.Y)}
		} else {
			affected = RangeAt(pos)
		}
	}

	ins := string(r)
	s.text = s.text.Insert(span.Start, ins)
	return affected, Span{Start: span.Start, End: span.Start + len(ins)}, nil
}

func (s *RopeStore) InsertString(pos TextPosition, t string) (TextRange, Span, error) {
	span, err := s.ByteRangeAt(pos)
	if err != nil {
		return TextRange{}, Span{}, err
	}
	pos = s.normalizePos(pos, span.Start)

	breaks, lastBreakEnd := countLineBreaks(t)

	var affected TextRange
	if breaks > 0 {
		lineSpan, err := s.lineSpan(pos.Y)
		if err != nil {
			return TextRange{}, Span{}, err
		}
		tail := s.text.Slice(span.Start, lineSpan.End)
		oldLen := widthOf(tail)
		newLen := widthOf(t[lastBreakEnd:] + tail)

		s.text = s.text.Insert(span.Start, t)
		affected = TextRange{Start: pos, End: Pos(newLen-oldLen, pos.Y+breaks)}
	} else {
		oldW, err := s.LineWidth(pos.Y)
		if err != nil {
			return TextRange{}, Span{}, err
		}
		s.text = s.text.Insert(span.Start, t)
		newW, err := s.LineWidth(pos.Y)
		if err != nil {
			return TextRange{}, Span{}, err
		}
		affected = TextRange{Start: pos, End: Pos(pos.X+newW-oldW, pos.Y)}
	}
	return affected, Span{Start: span.Start, End: span.Start + len(t)}, nil
}

func (s *RopeStore) Remove(rng TextRange) (string, TextRange, Span, error) {
	startSpan, err := s.ByteRangeAt(rng.Start)
	if err != nil {
		return "", TextRange{}, Span{}, err
	}
	endSpan, err := s.ByteRangeAt(rng.End)
	if err != nil {
		return "", TextRange{}, Span{}, err
	}
	rng.Start = s.normalizePos(rng.Start, startSpan.Start)
	rng.End = s.normalizePos(rng.End, endSpan.Start)

	old := s.text.Slice(startSpan.Start, endSpan.Start)
	s.text = s.text.Delete(startSpan.Start, endSpan.Start)
	return old, rng, Span{Start: startSpan.Start, End: endSpan.Start}, nil
}

// countLineBreaks counts the line terminators of t, "\r\n" as one, and
// returns the byte offset just past the last terminator.
func countLineBreaks(t string) (breaks, lastBreakEnd int) {
	wasCR := false
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '\r':
			wasCR = true
			breaks++
			lastBreakEnd = i + 1
		case '\n':
			if !wasCR {
				breaks++
			}
			wasCR = false
			lastBreakEnd = i + 1
		default:
			wasCR = false
		}
	}
	return breaks, lastBreakEnd
}

// widthOf returns the grapheme count of s, line terminators excluded.
func widthOf(s string) int {
	it := grapheme.NewIter(s, 0)
	n := 0
	for {
		g, ok := it.Next()
		if !ok {
			return n
		}
		if !g.IsLineBreak() {
			n++
		}
	}
}
