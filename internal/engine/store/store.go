package store

import "github.com/dshills/textcore/internal/engine/grapheme"

// TextStore is grapheme-aware text storage. Columns count grapheme
// clusters; conversions between positions and byte offsets run both ways.
//
// Mutations report the affected range in grapheme coordinates and the
// inserted or removed bytes as a Span. A caret sitting at the end of the
// affected range after applying it lands where a user expects the cursor:
// when an inserted scalar merges into an existing cluster (combining mark,
// ZWJ continuation, LF after CR) the affected range is empty and carets do
// not move.
type TextStore interface {
	// IsMultiLine reports whether the store accepts more than one line.
	// Single-line stores reject rows other than 0, with position (0,1)
	// accepted as an end-of-line alias.
	IsMultiLine() bool

	// String returns the full content.
	String() string

	// SetString replaces the full content.
	SetString(s string)

	// LineCount returns the number of lines.
	LineCount() int

	// LineWidth returns the grapheme count of a line, terminator excluded.
	LineWidth(row int) (int, error)

	// LineAt returns the text of a line, terminator included. The row
	// LineCount() is valid and empty.
	LineAt(row int) (string, error)

	// ByteRangeAt returns the byte range of the single grapheme at pos.
	// One column past the end of a line yields an empty span.
	ByteRangeAt(pos TextPosition) (Span, error)

	// ByteRange converts a grapheme range to a byte range.
	ByteRange(rng TextRange) (Span, error)

	// BytePos returns the position of the grapheme containing byte.
	BytePos(byte int) (TextPosition, error)

	// ByteRangeToRange converts a byte range to a grapheme range.
	ByteRangeToRange(span Span) (TextRange, error)

	// StrSlice returns the text of a grapheme range.
	StrSlice(rng TextRange) (string, error)

	// StrSliceBytes returns the text of a byte range.
	StrSliceBytes(span Span) (string, error)

	// Graphemes returns an iterator over the clusters of rng, positioned
	// at pos. pos must lie inside rng or at its end.
	Graphemes(rng TextRange, pos TextPosition) (*grapheme.Iter, error)

	// LineGraphemes returns an iterator over the clusters of a line,
	// terminator included.
	LineGraphemes(row int) (*grapheme.Iter, error)

	// InsertChar inserts one rune at pos. It returns the affected
	// grapheme range and the inserted bytes.
	InsertChar(pos TextPosition, r rune) (TextRange, Span, error)

	// InsertString inserts text at pos. It returns the affected grapheme
	// range and the inserted bytes.
	InsertString(pos TextPosition, s string) (TextRange, Span, error)

	// Remove deletes a grapheme range. It returns the removed text, the
	// normalized range and the removed bytes.
	Remove(rng TextRange) (string, TextRange, Span, error)
}
