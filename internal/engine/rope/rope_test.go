package rope

import (
	"strings"
	"testing"
)

func TestFromStringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"ascii", "hello world"},
		{"multiline", "line one\nline two\nline three"},
		{"unicode", "héllo wörld 日本語 🎉"},
		{"large", strings.Repeat("0123456789abcdef\n", 500)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.text)
			if got := r.String(); got != tt.text {
				t.Errorf("String() = %q, want %q", got, tt.text)
			}
			if got := r.Len(); got != len(tt.text) {
				t.Errorf("Len() = %d, want %d", got, len(tt.text))
			}
		})
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		text string
		off  int
		ins  string
		want string
	}{
		{"empty", "", 0, "abc", "abc"},
		{"front", "world", 0, "hello ", "hello world"},
		{"middle", "helloworld", 5, ", ", "hello, world"},
		{"end", "hello", 5, "!", "hello!"},
		{"newline", "ab", 1, "\n", "a\nb"},
		{"unicode", "aö", 1, "日", "a日ö"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.text).Insert(tt.off, tt.ins)
			if got := r.String(); got != tt.want {
				t.Errorf("Insert(%d, %q) = %q, want %q", tt.off, tt.ins, got, tt.want)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		want       string
	}{
		{"front", "hello world", 0, 6, "world"},
		{"middle", "hello, world", 5, 7, "helloworld"},
		{"end", "hello!", 5, 6, "hello"},
		{"all", "hello", 0, 5, ""},
		{"noop", "hello", 3, 3, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.text).Delete(tt.start, tt.end)
			if got := r.String(); got != tt.want {
				t.Errorf("Delete(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestImmutability(t *testing.T) {
	orig := FromString("hello world")
	_ = orig.Insert(5, "XXX")
	_ = orig.Delete(0, 6)
	if got := orig.String(); got != "hello world" {
		t.Errorf("original mutated: %q", got)
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 1},
		{"no terminator", "abc", 1},
		{"lf", "a\nb", 2},
		{"cr", "a\rb", 2},
		{"crlf", "a\r\nb", 2},
		{"trailing lf", "a\n", 2},
		{"trailing cr", "a\r", 2},
		{"mixed", "a\nb\rc\r\nd", 4},
		{"lone breaks", "\n\r\r\n", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromString(tt.text).LineCount(); got != tt.want {
				t.Errorf("LineCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestLineStartOffset(t *testing.T) {
	text := "ab\ncd\r\nef\rgh"
	r := FromString(text)
	wants := []int{0, 3, 7, 10}
	for line, want := range wants {
		if got := r.LineStartOffset(line); got != want {
			t.Errorf("LineStartOffset(%d) = %d, want %d", line, got, want)
		}
	}
	if got := r.LineStartOffset(4); got != len(text) {
		t.Errorf("LineStartOffset past end = %d, want %d", got, len(text))
	}
}

func TestLineAtByte(t *testing.T) {
	text := "ab\ncd\r\nef"
	r := FromString(text)
	wants := []int{0, 0, 0, 1, 1, 1, 1, 2, 2}
	for off, want := range wants {
		if got := r.LineAtByte(off); got != want {
			t.Errorf("LineAtByte(%d) = %d, want %d", off, got, want)
		}
	}
	if got := r.LineAtByte(len(text)); got != 2 {
		t.Errorf("LineAtByte(len) = %d, want 2", got)
	}
}

// A CRLF pair that straddles a chunk boundary must still count as a single
// terminator.
func TestSplitCRLF(t *testing.T) {
	// Chunks above the coalesce threshold keep the CR and LF in separate
	// chunks after Concat.
	a := strings.Repeat("x", 100)
	b := strings.Repeat("y", 100)
	r := FromString(a + "\r").Concat(FromString("\n" + b))

	if got := r.LineCount(); got != 2 {
		t.Errorf("LineCount = %d, want 2", got)
	}
	if got := r.LineStartOffset(1); got != 102 {
		t.Errorf("LineStartOffset(1) = %d, want 102", got)
	}
	if got := r.LineAtByte(101); got != 0 {
		t.Errorf("LineAtByte(101) = %d, want 0", got)
	}
	if got := r.LineAtByte(102); got != 1 {
		t.Errorf("LineAtByte(102) = %d, want 1", got)
	}

	// Joining via Insert behaves the same.
	r = FromString("ab\ncd").Insert(2, "\r")
	if got := r.LineCount(); got != 2 {
		t.Errorf("after Insert: LineCount = %d, want 2", got)
	}
}

func TestSlice(t *testing.T) {
	text := strings.Repeat("abcdefghij", 100)
	r := FromString(text)
	tests := []struct {
		start, end int
	}{
		{0, 10}, {0, 1000}, {500, 523}, {995, 1000}, {250, 250},
	}
	for _, tt := range tests {
		want := text[tt.start:tt.end]
		if got := r.Slice(tt.start, tt.end); got != want {
			t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.end, got, want)
		}
	}
	if got := r.Slice(-5, 2000); got != text {
		t.Errorf("clamped Slice = %d bytes, want full text", len(got))
	}
}

func TestSplitConcat(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor\n", 64)
	r := FromString(text)
	for _, off := range []int{0, 1, 17, 500, len(text)} {
		l, rt := r.Split(off)
		if got := l.String() + rt.String(); got != text {
			t.Errorf("Split(%d): join mismatch", off)
		}
		if got := l.Concat(rt).String(); got != text {
			t.Errorf("Split(%d): Concat mismatch", off)
		}
	}
}

func TestEditSequence(t *testing.T) {
	r := New()
	var want strings.Builder
	for i := 0; i < 200; i++ {
		r = r.Insert(r.Len(), "line text here\n")
		want.WriteString("line text here\n")
	}
	if got := r.String(); got != want.String() {
		t.Fatalf("built text mismatch after appends")
	}
	if got := r.LineCount(); got != 201 {
		t.Errorf("LineCount = %d, want 201", got)
	}

	// Delete every other line from the back.
	for i := 198; i >= 0; i -= 2 {
		start := i * 15
		r = r.Delete(start, start+15)
	}
	if got := r.LineCount(); got != 101 {
		t.Errorf("LineCount after deletes = %d, want 101", got)
	}
}

func FuzzEditOps(f *testing.F) {
	f.Add("hello\nworld", 3, "X")
	f.Add("a\r\nb", 1, "\n")
	f.Add("", 0, "\r\n")
	f.Fuzz(func(t *testing.T, text string, off int, ins string) {
		if off < 0 || off > len(text) {
			return
		}
		r := FromString(text).Insert(off, ins)
		want := text[:off] + ins + text[off:]
		if got := r.String(); got != want {
			t.Fatalf("Insert(%d, %q) on %q = %q, want %q", off, ins, text, got, want)
		}
		if got, want := r.LineCount(), naiveLineCount(want); got != want {
			t.Fatalf("LineCount = %d, want %d", got, want)
		}
	})
}

func naiveLineCount(s string) int {
	n := 1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			n++
		case '\r':
			if i+1 >= len(s) || s[i+1] != '\n' {
				n++
			}
		}
	}
	return n
}
