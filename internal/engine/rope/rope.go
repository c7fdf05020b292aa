package rope

import "strings"

// Rope is an immutable text rope. The zero value is an empty rope.
type Rope struct {
	root *node
}

// New returns an empty rope.
func New() Rope {
	return Rope{root: newLeaf(nil)}
}

// FromString builds a rope over s.
func FromString(s string) Rope {
	return Rope{root: build(splitChunks(s))}
}

func (r Rope) node() *node {
	if r.root == nil {
		return newLeaf(nil)
	}
	return r.root
}

// Len returns the length in bytes.
func (r Rope) Len() int {
	return r.node().sum.Bytes
}

// LineCount returns the number of lines. An empty rope has one line; a
// trailing terminator opens a final empty line.
func (r Rope) LineCount() int {
	return r.node().sum.Breaks + 1
}

// IsASCII reports whether the rope contains only ASCII bytes.
func (r Rope) IsASCII() bool {
	return r.node().sum.ASCII
}

// String returns the full text.
func (r Rope) String() string {
	n := r.node()
	var b strings.Builder
	b.Grow(n.sum.Bytes)
	n.eachChunk(func(s string) {
		b.WriteString(s)
	})
	return b.String()
}

// Slice returns the text in the byte range [start, end). The range is
// clamped to the rope.
func (r Rope) Slice(start, end int) string {
	n := r.node()
	start = max(start, 0)
	end = min(end, n.sum.Bytes)
	if start >= end {
		return ""
	}
	return string(n.writeRange(make([]byte, 0, end-start), start, end))
}

// ByteAt returns the byte at offset off. It panics when off is out of
// range, matching slice indexing.
func (r Rope) ByteAt(off int) byte {
	return r.node().byteAt(off)
}

// Insert returns a rope with s inserted at byte offset off.
func (r Rope) Insert(off int, s string) Rope {
	if s == "" {
		return r
	}
	l, rt := splitNode(r.node(), off)
	return Rope{root: concat(concat(l, build(splitChunks(s))), rt)}
}

// Delete returns a rope with the byte range [start, end) removed.
func (r Rope) Delete(start, end int) Rope {
	if start >= end {
		return r
	}
	l, _ := splitNode(r.node(), start)
	_, rt := splitNode(r.node(), end)
	return Rope{root: concat(l, rt)}
}

// Split divides the rope at byte offset off.
func (r Rope) Split(off int) (Rope, Rope) {
	l, rt := splitNode(r.node(), off)
	return Rope{root: l}, Rope{root: rt}
}

// Concat returns the concatenation of r and o.
func (r Rope) Concat(o Rope) Rope {
	return Rope{root: concat(r.node(), o.node())}
}

// LineStartOffset returns the byte offset of the first byte of line. Lines
// past the last are clamped to Len, which makes
// [LineStartOffset(i), LineStartOffset(i+1)) the byte range of line i,
// terminator included.
func (r Rope) LineStartOffset(line int) int {
	if line <= 0 {
		return 0
	}
	n := r.node()
	off, ok := n.breakEndOffset(line, false)
	if !ok {
		return n.sum.Bytes
	}
	// A terminator split across chunks ends local scans between its CR
	// and LF bytes.
	if off < n.sum.Bytes && off > 0 && n.byteAt(off) == '\n' && n.byteAt(off-1) == '\r' {
		off++
	}
	return off
}

// LineText returns the text of line, terminator included. Lines out of
// range yield the empty string.
func (r Rope) LineText(line int) string {
	return r.Slice(r.LineStartOffset(line), r.LineStartOffset(line+1))
}

// LineAtByte returns the index of the line containing byte offset off.
// Both bytes of a "\r\n" terminator belong to the line it ends.
func (r Rope) LineAtByte(off int) int {
	n := r.node()
	off = max(off, 0)
	off = min(off, n.sum.Bytes)
	if off > 0 && off < n.sum.Bytes && n.byteAt(off) == '\n' && n.byteAt(off-1) == '\r' {
		off--
	}
	return n.breaksInPrefix(off)
}

// eachChunk calls fn for every chunk of text in order.
func (n *node) eachChunk(fn func(string)) {
	if n.height == 0 {
		for _, c := range n.chunks {
			fn(c.data)
		}
		return
	}
	for _, c := range n.children {
		c.eachChunk(fn)
	}
}
