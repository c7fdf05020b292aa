package rope

import "unicode/utf8"

const (
	// maxChunkBytes bounds the size of a leaf text chunk. Small chunks keep
	// edits cheap; larger chunks keep the tree shallow.
	maxChunkBytes = 256
	// minChunkBytes is the rebalancing threshold for merged chunks.
	minChunkBytes = maxChunkBytes / 4
)

// chunk is a bounded run of text with its precomputed summary.
type chunk struct {
	data string
	sum  Summary
}

func newChunk(s string) chunk {
	return chunk{data: s, sum: summarize(s)}
}

// chunkBoundary returns a split point at or below limit that does not fall
// inside a UTF-8 sequence.
func chunkBoundary(s string, limit int) int {
	if len(s) <= limit {
		return len(s)
	}
	n := limit
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	if n == 0 {
		// Degenerate input; take the whole rune.
		n = limit
		for n < len(s) && !utf8.RuneStart(s[n]) {
			n++
		}
	}
	return n
}

// splitChunks slices s into chunks of at most maxChunkBytes each.
func splitChunks(s string) []chunk {
	if len(s) == 0 {
		return nil
	}
	chunks := make([]chunk, 0, len(s)/maxChunkBytes+1)
	for len(s) > 0 {
		n := chunkBoundary(s, maxChunkBytes)
		chunks = append(chunks, newChunk(s[:n]))
		s = s[n:]
	}
	return chunks
}

// breakEnd locates the end offset of the n-th line terminator in data
// (1-based). skipLF drops a leading '\n' that belongs to a CR in the
// preceding chunk. It returns the number of terminators consumed and, when
// the n-th one is found, its end offset.
func breakEnd(data string, skipLF bool, n int) (consumed, off int, ok bool) {
	i := 0
	if skipLF && len(data) > 0 && data[0] == '\n' {
		i = 1
	}
	for ; i < len(data); i++ {
		end := -1
		switch data[i] {
		case '\n':
			end = i + 1
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				end = i + 2
				i++
			} else {
				end = i + 1
			}
		}
		if end < 0 {
			continue
		}
		consumed++
		if consumed == n {
			return consumed, end, true
		}
	}
	return consumed, 0, false
}

// breaksBefore counts the line terminators of data that lie within the
// prefix [0, off). A '\r' at off-1 counts; callers must not pass an off
// that splits a "\r\n" pair.
func breaksBefore(data string, off int, skipLF bool) int {
	n, _, _ := breakEnd(data[:off], skipLF, -1)
	return n
}
