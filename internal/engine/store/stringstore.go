package store

import (
	"github.com/dshills/textcore/internal/engine/grapheme"
)

// StringStore is a single-line TextStore over a plain string. It caches
// the grapheme length so width queries stay O(1).
//
// The position (0,1) is accepted everywhere as an alias for the end of
// the line, mirroring the row-after-last convention of multi-line stores.
type StringStore struct {
	text string
	len  int
}

// NewStringStore returns an empty single-line store.
func NewStringStore() *StringStore {
	return &StringStore{}
}

// NewStringStoreText returns a single-line store over s.
func NewStringStoreText(s string) *StringStore {
	return &StringStore{text: s, len: grapheme.Count(s)}
}

func (s *StringStore) IsMultiLine() bool {
	return false
}

func (s *StringStore) String() string {
	return s.text
}

func (s *StringStore) SetString(t string) {
	s.text = t
	s.len = grapheme.Count(t)
}

func (s *StringStore) LineCount() int {
	return 1
}

// eol is the end-of-line alias position.
func eol() TextPosition {
	return Pos(0, 1)
}

func (s *StringStore) LineWidth(row int) (int, error) {
	switch row {
	case 0:
		return s.len, nil
	case 1:
		return 0, nil
	}
	return 0, &RowOutOfBoundsError{Row: row, Lines: 1}
}

func (s *StringStore) LineAt(row int) (string, error) {
	switch row {
	case 0:
		return s.text, nil
	case 1:
		return "", nil
	}
	return "", &RowOutOfBoundsError{Row: row, Lines: 1}
}

func (s *StringStore) LineGraphemes(row int) (*grapheme.Iter, error) {
	switch row {
	case 0:
		return grapheme.NewIter(s.text, 0), nil
	case 1:
		return grapheme.NewIter("", len(s.text)), nil
	}
	return nil, &RowOutOfBoundsError{Row: row, Lines: 1}
}

func (s *StringStore) ByteRangeAt(pos TextPosition) (Span, error) {
	if pos == eol() {
		n := len(s.text)
		return Span{Start: n, End: n}, nil
	}
	if pos.Y != 0 {
		return Span{}, &RowOutOfBoundsError{Row: pos.Y, Lines: 1}
	}
	it := grapheme.NewIter(s.text, 0)
	col := 0
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		if col == pos.X {
			return Span{Start: g.ByteStart, End: g.ByteEnd}, nil
		}
		col++
	}
	if col == pos.X {
		n := len(s.text)
		return Span{Start: n, End: n}, nil
	}
	return Span{}, &ColOutOfBoundsError{Col: pos.X, Width: s.len}
}

func (s *StringStore) ByteRange(rng TextRange) (Span, error) {
	if rng.Start.Y != 0 && rng.Start != eol() {
		return Span{}, &RowOutOfBoundsError{Row: rng.Start.Y, Lines: 1}
	}
	if rng.End.Y != 0 && rng.End != eol() {
		return Span{}, &RowOutOfBoundsError{Row: rng.End.Y, Lines: 1}
	}

	start, end := -1, -1
	if rng.Start == eol() {
		start = len(s.text)
	}
	if rng.End == eol() {
		end = len(s.text)
	}

	if start < 0 || end < 0 {
		it := grapheme.NewIter(s.text, 0)
		col := 0
		for {
			g, ok := it.Next()
			if !ok {
				break
			}
			if col == rng.Start.X && rng.Start.Y == 0 && start < 0 {
				start = g.ByteStart
			}
			if col == rng.End.X && rng.End.Y == 0 && end < 0 {
				end = g.ByteStart
			}
			if start >= 0 && end >= 0 {
				break
			}
			col++
		}
		if col == rng.Start.X && start < 0 {
			start = len(s.text)
		}
		if col == rng.End.X && end < 0 {
			end = len(s.text)
		}
	}

	if start < 0 {
		return Span{}, &ColOutOfBoundsError{Col: rng.Start.X, Width: s.len}
	}
	if end < 0 {
		return Span{}, &ColOutOfBoundsError{Col: rng.End.X, Width: s.len}
	}
	return Span{Start: start, End: end}, nil
}

func (s *StringStore) BytePos(b int) (TextPosition, error) {
	if b < 0 || b > len(s.text) {
		return TextPosition{}, &ByteOutOfBoundsError{Byte: b, Len: len(s.text)}
	}
	it := grapheme.NewIter(s.text, 0)
	col := 0
	for {
		g, ok := it.Next()
		if !ok || b < g.ByteEnd {
			return Pos(col, 0), nil
		}
		col++
	}
}

func (s *StringStore) ByteRangeToRange(span Span) (TextRange, error) {
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

func (s *StringStore) StrSlice(rng TextRange) (string, error) {
	span, err := s.ByteRange(rng)
	if err != nil {
		return "", err
	}
	return s.text[span.Start:span.End], nil
}

func (s *StringStore) StrSliceBytes(span Span) (string, error) {
	if span.Start < 0 || span.End > len(s.text) || span.Start > span.End {
		return "", &RangeOutOfBoundsError{}
	}
	return s.text[span.Start:span.End], nil
}

func (s *StringStore) Graphemes(rng TextRange, pos TextPosition) (*grapheme.Iter, error) {
	span, err := s.ByteRange(rng)
	if err != nil {
		return nil, err
	}
	posSpan, err := s.ByteRangeAt(pos)
	if err != nil {
		return nil, err
	}
	return grapheme.NewIterAt(s.text[span.Start:span.End], span.Start, posSpan.Start), nil
}

// normalize maps the end-of-line alias onto a real position.
func (s *StringStore) normalize(pos TextPosition) TextPosition {
	if pos == eol() {
		return Pos(s.len, 0)
	}
	return pos
}

func (s *StringStore) InsertChar(pos TextPosition, r rune) (TextRange, Span, error) {
	return s.InsertString(pos, string(r))
}

func (s *StringStore) InsertString(pos TextPosition, t string) (TextRange, Span, error) {
	pos = s.normalize(pos)
	if pos.Y != 0 {
		return TextRange{}, Span{}, &PosOutOfBoundsError{Pos: pos}
	}
	span, err := s.ByteRangeAt(pos)
	if err != nil {
		return TextRange{}, Span{}, err
	}

	oldLen := s.len
	s.text = s.text[:span.Start] + t + s.text[span.Start:]
	s.len = grapheme.Count(s.text)

	// The grapheme delta accounts for scalars that join neighboring
	// clusters: a combining mark adds zero columns.
	affected := TextRange{Start: pos, End: Pos(pos.X+(s.len-oldLen), pos.Y)}
	return affected, Span{Start: span.Start, End: span.Start + len(t)}, nil
}

func (s *StringStore) Remove(rng TextRange) (string, TextRange, Span, error) {
	rng.Start = s.normalize(rng.Start)
	rng.End = s.normalize(rng.End)
	if rng.Start.Y != 0 || rng.End.Y != 0 {
		return "", TextRange{}, Span{}, &RangeOutOfBoundsError{Range: rng}
	}

	span, err := s.ByteRange(rng)
	if err != nil {
		return "", TextRange{}, Span{}, err
	}

	old := s.text[span.Start:span.End]
	s.text = s.text[:span.Start] + s.text[span.End:]
	s.len = grapheme.Count(s.text)
	return old, rng, span, nil
}
