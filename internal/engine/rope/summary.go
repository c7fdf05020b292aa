package rope

// Summary holds aggregated metrics for a span of text. Summaries combine
// associatively, which lets internal nodes cache the metrics of their
// subtrees and answer offset/line queries without touching the text.
type Summary struct {
	// Bytes is the length of the span in bytes.
	Bytes int
	// Breaks is the number of line terminators in the span, counting a
	// trailing CR as a terminator of its own. Concatenation corrects the
	// count when a trailing CR meets a leading LF.
	Breaks int
	// StartsLF reports whether the first byte of the span is '\n'.
	StartsLF bool
	// EndsCR reports whether the last byte of the span is '\r'.
	EndsCR bool
	// ASCII reports whether every byte of the span is < 0x80.
	ASCII bool
}

// summarize computes the Summary of s from scratch.
func summarize(s string) Summary {
	sum := Summary{Bytes: len(s), ASCII: true}
	if len(s) == 0 {
		return sum
	}
	sum.StartsLF = s[0] == '\n'
	sum.EndsCR = s[len(s)-1] == '\r'
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\n':
			sum.Breaks++
		case c == '\r':
			// "\r\n" is counted once, at the '\n'.
			if i+1 >= len(s) || s[i+1] != '\n' {
				sum.Breaks++
			}
		case c >= 0x80:
			sum.ASCII = false
		}
	}
	return sum
}

// add combines two adjacent summaries into the summary of the joined span.
func (s Summary) add(o Summary) Summary {
	r := Summary{
		Bytes:  s.Bytes + o.Bytes,
		Breaks: s.Breaks + o.Breaks,
		ASCII:  s.ASCII && o.ASCII,
	}
	// A trailing CR met a leading LF: both halves counted a terminator,
	// but together they form a single "\r\n".
	if s.EndsCR && o.StartsLF {
		r.Breaks--
	}
	switch {
	case s.Bytes > 0:
		r.StartsLF = s.StartsLF
	default:
		r.StartsLF = o.StartsLF
	}
	switch {
	case o.Bytes > 0:
		r.EndsCR = o.EndsCR
	default:
		r.EndsCR = s.EndsCR
	}
	return r
}

// breaksAfter returns the effective terminator count of s when the byte
// immediately preceding the span is a CR.
func (s Summary) breaksAfter(prevCR bool) int {
	if prevCR && s.StartsLF {
		return s.Breaks - 1
	}
	return s.Breaks
}
