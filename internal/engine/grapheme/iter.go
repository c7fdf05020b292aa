package grapheme

import "github.com/rivo/uniseg"

// Iter walks the grapheme clusters of a text segment in either direction.
// Byte ranges are reported relative to an absolute base offset, so an
// iterator over one line of a larger text yields text-wide positions.
//
// The iterator sits between clusters. Next returns the cluster to the
// right and moves over it; Prev returns the cluster to the left and moves
// back over it. Past either end the ok result is false.
type Iter struct {
	text string
	base int
	pos  int // byte position within text
}

// NewIter returns an iterator over text positioned at its start. base is
// the absolute byte offset of text[0].
func NewIter(text string, base int) *Iter {
	return &Iter{text: text, base: base}
}

// NewIterAt returns an iterator positioned at absolute byte offset off,
// which must lie on a cluster boundary within [base, base+len(text)].
func NewIterAt(text string, base, off int) *Iter {
	it := &Iter{text: text, base: base}
	it.SeekByte(off)
	return it
}

// Offset returns the absolute byte offset of the iterator position.
func (it *Iter) Offset() int {
	return it.base + it.pos
}

// SeekByte positions the iterator at absolute byte offset off, clamped to
// the segment.
func (it *Iter) SeekByte(off int) {
	it.pos = min(max(off-it.base, 0), len(it.text))
}

// SeekStart positions the iterator before the first cluster.
func (it *Iter) SeekStart() {
	it.pos = 0
}

// SeekEnd positions the iterator after the last cluster.
func (it *Iter) SeekEnd() {
	it.pos = len(it.text)
}

// Next returns the cluster right of the position and advances over it.
func (it *Iter) Next() (Grapheme, bool) {
	if it.pos >= len(it.text) {
		return Grapheme{}, false
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(it.text[it.pos:], -1)
	g := Grapheme{
		Text:      cluster,
		ByteStart: it.base + it.pos,
		ByteEnd:   it.base + it.pos + len(cluster),
	}
	it.pos += len(cluster)
	return g, true
}

// Peek returns the cluster right of the position without advancing.
func (it *Iter) Peek() (Grapheme, bool) {
	pos := it.pos
	g, ok := it.Next()
	it.pos = pos
	return g, ok
}

// Prev returns the cluster left of the position and moves back over it.
//
// Cluster boundaries cannot be found by scanning backwards, so Prev walks
// forward from the segment start. Segments are single lines or mask
// buffers, which keeps this cheap in practice.
func (it *Iter) Prev() (Grapheme, bool) {
	if it.pos <= 0 {
		return Grapheme{}, false
	}
	start := 0
	rest := it.text
	state := -1
	for {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		end := start + len(cluster)
		if end >= it.pos {
			g := Grapheme{
				Text:      it.text[start:end],
				ByteStart: it.base + start,
				ByteEnd:   it.base + end,
			}
			it.pos = start
			return g, true
		}
		start = end
	}
}
