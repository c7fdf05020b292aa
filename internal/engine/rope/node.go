package rope

// maxFanout bounds the number of children of an internal node and the
// number of chunks in a leaf.
const maxFanout = 8

// node is a rope tree node. Leaves (height 0) carry text chunks; internal
// nodes carry children one level down. Nodes are immutable once built.
type node struct {
	height   int
	sum      Summary
	chunks   []chunk // height == 0
	children []*node // height > 0
}

func newLeaf(chunks []chunk) *node {
	n := &node{chunks: chunks}
	for _, c := range chunks {
		n.sum = n.sum.add(c.sum)
	}
	return n
}

func newInternal(children []*node, height int) *node {
	n := &node{height: height, children: children}
	for _, c := range children {
		n.sum = n.sum.add(c.sum)
	}
	return n
}

// build constructs a balanced tree over chunks.
func build(chunks []chunk) *node {
	if len(chunks) == 0 {
		return newLeaf(nil)
	}
	nodes := make([]*node, 0, len(chunks)/maxFanout+1)
	for len(chunks) > 0 {
		n := min(len(chunks), maxFanout)
		nodes = append(nodes, newLeaf(chunks[:n:n]))
		chunks = chunks[n:]
	}
	height := 1
	for len(nodes) > 1 {
		next := make([]*node, 0, len(nodes)/maxFanout+1)
		for len(nodes) > 0 {
			n := min(len(nodes), maxFanout)
			next = append(next, newInternal(nodes[:n:n], height))
			nodes = nodes[n:]
		}
		nodes = next
		height++
	}
	return nodes[0]
}

// packNodes wraps same-height siblings in a parent, splitting into two
// parents under a grandparent when the fanout overflows. len(kids) must be
// at most 2*maxFanout.
func packNodes(kids []*node, height int) *node {
	if len(kids) <= maxFanout {
		return newInternal(kids, height)
	}
	mid := (len(kids) + 1) / 2
	return newInternal([]*node{
		newInternal(kids[:mid:mid], height),
		newInternal(kids[mid:], height),
	}, height+1)
}

// packLeaves is packNodes for chunk slices.
func packLeaves(chunks []chunk) *node {
	if len(chunks) <= maxFanout {
		return newLeaf(chunks)
	}
	mid := (len(chunks) + 1) / 2
	return newInternal([]*node{
		newLeaf(chunks[:mid:mid]),
		newLeaf(chunks[mid:]),
	}, 1)
}

// concat joins two trees into one balanced tree.
func concat(a, b *node) *node {
	switch {
	case a == nil || a.sum.Bytes == 0:
		if b == nil {
			return newLeaf(nil)
		}
		return b
	case b == nil || b.sum.Bytes == 0:
		return a
	}

	switch {
	case a.height == b.height:
		if a.height == 0 {
			return packLeaves(joinChunks(a.chunks, b.chunks))
		}
		kids := make([]*node, 0, len(a.children)+len(b.children))
		kids = append(kids, a.children...)
		kids = append(kids, b.children...)
		return packNodes(kids, a.height)

	case a.height > b.height:
		sub := concat(a.children[len(a.children)-1], b)
		kids := make([]*node, 0, len(a.children)+maxFanout)
		kids = append(kids, a.children[:len(a.children)-1]...)
		if sub.height == a.height {
			kids = append(kids, sub.children...)
		} else {
			kids = append(kids, sub)
		}
		return packNodes(kids, a.height)

	default:
		sub := concat(a, b.children[0])
		kids := make([]*node, 0, len(b.children)+maxFanout)
		if sub.height == b.height {
			kids = append(kids, sub.children...)
		} else {
			kids = append(kids, sub)
		}
		kids = append(kids, b.children[1:]...)
		return packNodes(kids, b.height)
	}
}

// joinChunks concatenates two chunk runs, coalescing the boundary pair when
// either side is small enough that fragmentation would build up.
func joinChunks(a, b []chunk) []chunk {
	if len(a) > 0 && len(b) > 0 {
		last, first := a[len(a)-1], b[0]
		if (len(last.data) < minChunkBytes || len(first.data) < minChunkBytes) &&
			len(last.data)+len(first.data) <= maxChunkBytes {
			out := make([]chunk, 0, len(a)+len(b)-1)
			out = append(out, a[:len(a)-1]...)
			out = append(out, newChunk(last.data+first.data))
			return append(out, b[1:]...)
		}
	}
	out := make([]chunk, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// splitNode divides the tree at byte offset off.
func splitNode(n *node, off int) (left, right *node) {
	if n.height == 0 {
		var l, r []chunk
		for _, c := range n.chunks {
			switch {
			case off >= len(c.data):
				l = append(l, c)
				off -= len(c.data)
			case off <= 0:
				r = append(r, c)
			default:
				if off > 0 {
					l = append(l, newChunk(c.data[:off]))
				}
				r = append(r, newChunk(c.data[off:]))
				off = 0
			}
		}
		return newLeaf(l), newLeaf(r)
	}

	var acc *node
	for i, c := range n.children {
		if off > c.sum.Bytes {
			acc = concat(acc, c)
			off -= c.sum.Bytes
			continue
		}
		cl, cr := splitNode(c, off)
		left = concat(acc, cl)
		right = cr
		for _, rest := range n.children[i+1:] {
			right = concat(right, rest)
		}
		return left, right
	}
	return concat(acc, nil), newLeaf(nil)
}

// byteAt returns the byte at offset off. The caller guarantees bounds.
func (n *node) byteAt(off int) byte {
	for n.height > 0 {
		for _, c := range n.children {
			if off < c.sum.Bytes {
				n = c
				break
			}
			off -= c.sum.Bytes
		}
	}
	for _, c := range n.chunks {
		if off < len(c.data) {
			return c.data[off]
		}
		off -= len(c.data)
	}
	panic("rope: byte offset out of range")
}

// writeRange appends the bytes of [start, end) to buf.
func (n *node) writeRange(buf []byte, start, end int) []byte {
	if n.height == 0 {
		for _, c := range n.chunks {
			if start < len(c.data) && end > 0 {
				s := max(start, 0)
				e := min(end, len(c.data))
				buf = append(buf, c.data[s:e]...)
			}
			start -= len(c.data)
			end -= len(c.data)
			if end <= 0 {
				break
			}
		}
		return buf
	}
	for _, c := range n.children {
		if start < c.sum.Bytes && end > 0 {
			buf = c.writeRange(buf, start, end)
		}
		start -= c.sum.Bytes
		end -= c.sum.Bytes
		if end <= 0 {
			break
		}
	}
	return buf
}

// breakEndOffset locates the end offset of the target-th line terminator
// (1-based). prevCR tells whether the byte before this subtree is '\r'.
func (n *node) breakEndOffset(target int, prevCR bool) (off int, ok bool) {
	base := 0
	for n.height > 0 {
		var next *node
		for _, c := range n.children {
			eff := c.sum.breaksAfter(prevCR)
			if target <= eff {
				next = c
				break
			}
			target -= eff
			base += c.sum.Bytes
			if c.sum.Bytes > 0 {
				prevCR = c.sum.EndsCR
			}
		}
		if next == nil {
			return 0, false
		}
		n = next
	}
	for _, c := range n.chunks {
		consumed, end, found := breakEnd(c.data, prevCR, target)
		if found {
			return base + end, true
		}
		target -= consumed
		base += len(c.data)
		if len(c.data) > 0 {
			prevCR = c.sum.EndsCR
		}
	}
	return 0, false
}

// breaksInPrefix counts line terminators that end within [0, off). off must
// not split a "\r\n" pair.
func (n *node) breaksInPrefix(off int) int {
	breaks := 0
	prevCR := false
	for n.height > 0 {
		var next *node
		for _, c := range n.children {
			if off < c.sum.Bytes {
				next = c
				break
			}
			breaks += c.sum.breaksAfter(prevCR)
			off -= c.sum.Bytes
			if c.sum.Bytes > 0 {
				prevCR = c.sum.EndsCR
			}
		}
		if next == nil {
			return breaks
		}
		n = next
	}
	for _, c := range n.chunks {
		if off < len(c.data) {
			return breaks + breaksBefore(c.data, off, prevCR)
		}
		breaks += c.sum.breaksAfter(prevCR)
		off -= len(c.data)
		if len(c.data) > 0 {
			prevCR = c.sum.EndsCR
		}
	}
	return breaks
}
