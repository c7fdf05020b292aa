// Package grapheme provides grapheme-cluster views over UTF-8 text.
//
// The extended grapheme cluster (Unicode UAX #29, via rivo/uniseg) is the
// atomic unit of cursor movement and editing. A user-perceived character
// such as a flag emoji or a ZWJ sequence is one grapheme regardless of how
// many scalars encode it, and editing operations never split one.
package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Grapheme is one grapheme cluster together with its absolute byte range
// in the underlying text.
type Grapheme struct {
	Text      string
	ByteStart int
	ByteEnd   int
}

// IsWhitespace reports whether every rune of the cluster is white space.
func (g Grapheme) IsWhitespace() bool {
	if g.Text == "" {
		return false
	}
	for _, r := range g.Text {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsLineBreak reports whether the cluster is a line terminator. "\r\n"
// segments as a single cluster.
func (g Grapheme) IsLineBreak() bool {
	switch g.Text {
	case "\n", "\r", "\r\n":
		return true
	}
	return false
}

// Width returns the number of terminal cells the cluster occupies.
func (g Grapheme) Width() int {
	return runewidth.StringWidth(g.Text)
}

// Rune returns the first rune of the cluster.
func (g Grapheme) Rune() rune {
	r, _ := utf8.DecodeRuneInString(g.Text)
	return r
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
