package mask

import (
	"errors"
	"reflect"
	"testing"
)

func TestCompileNumber(t *testing.T) {
	toks, err := Compile("###.###")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(toks) != 8 {
		t.Fatalf("len = %d, want 8", len(toks))
	}

	for i := 0; i < 3; i++ {
		if toks[i].Right.Kind != Numeric || toks[i].Right.Dir != Rtol {
			t.Errorf("token %d = %v, want rtol numeric", i, toks[i].Right)
		}
	}
	if toks[3].Right.Kind != DecimalSep {
		t.Errorf("token 3 = %v, want decimal sep", toks[3].Right)
	}
	for i := 4; i < 7; i++ {
		if toks[i].Right.Kind != Numeric || toks[i].Right.Dir != Ltor {
			t.Errorf("token %d = %v, want ltor numeric", i, toks[i].Right)
		}
	}
	if !toks[7].Right.IsNone() {
		t.Errorf("token 7 = %v, want sentinel", toks[7].Right)
	}

	// one number section, three sub-sections
	for i := 0; i < 7; i++ {
		if toks[i].SecStart != 0 || toks[i].SecEnd != 7 {
			t.Errorf("token %d section = %d..%d, want 0..7", i, toks[i].SecStart, toks[i].SecEnd)
		}
	}
	wantSub := [][2]int{{0, 3}, {0, 3}, {0, 3}, {3, 4}, {4, 7}, {4, 7}, {4, 7}, {7, 7}}
	for i, w := range wantSub {
		if toks[i].SubStart != w[0] || toks[i].SubEnd != w[1] {
			t.Errorf("token %d sub = %d..%d, want %d..%d",
				i, toks[i].SubStart, toks[i].SubEnd, w[0], w[1])
		}
	}
}

func TestCompileEscape(t *testing.T) {
	toks, err := Compile(`##\/##\/####`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(toks) != 11 {
		t.Fatalf("len = %d, want 11", len(toks))
	}
	if toks[2].Right.Kind != Separator || toks[2].Right.Sep != "/" {
		t.Errorf("token 2 = %+v, want separator /", toks[2].Right)
	}

	// separators split the digit runs into their own sections
	wantSec := []int{1, 1, 2, 3, 3, 4, 5, 5, 5, 5, 6}
	for i, w := range wantSec {
		if toks[i].SecID != w {
			t.Errorf("token %d sec id = %d, want %d", i, toks[i].SecID, w)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []string{"x", "##x", "€ #", `##\`}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			_, err := Compile(pattern)
			if err == nil {
				t.Fatalf("Compile(%q) = nil error", pattern)
			}
			if !errors.Is(err, ErrInvalidMask) {
				t.Errorf("error %v does not match ErrInvalidMask", err)
			}
			var ime *InvalidMaskError
			if !errors.As(err, &ime) {
				t.Errorf("error %v is not an InvalidMaskError", err)
			}
		})
	}
}

func TestPatternRoundTrip(t *testing.T) {
	tests := []string{
		"##0",
		"###.0##",
		"990.000-",
		"+990.000+",
		`##\/##\/####`,
		"HH HH HH",
		"llllll",
		`dd\°dd\'dd\"`,
		`\€ ###,##0.0##+`,
	}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			toks, err := Compile(pattern)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			again, err := Compile(Pattern(toks))
			if err != nil {
				t.Fatalf("Compile(Pattern): %v", err)
			}
			if !reflect.DeepEqual(toks, again) {
				t.Errorf("round trip changed tokens:\n%v\n%v", toks, again)
			}
		})
	}
}

func TestEmptySection(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"##0", "  0"},
		{"###.0##", "   .0  "},
		{"990.000-", "  0.000 "},
		{`##\/##\/####`, "  /  /    "},
		{`\€ ###,##0.0##+`, "€       0.0  +"},
		{"HH-HH", "00 00"},
	}
	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			toks, err := Compile(tc.pattern)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if got := EmptySection(toks); got != tc.want {
				t.Errorf("EmptySection = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	rtolDigit := Mask{Kind: Numeric, Dir: Rtol}
	ltorDigit := Mask{Kind: Numeric, Dir: Ltor}

	if !rtolDigit.IsRtol() || rtolDigit.IsLtor() || rtolDigit.IsFraction() {
		t.Errorf("rtol numeric direction predicates wrong")
	}
	if !ltorDigit.IsLtor() || ltorDigit.IsRtol() || !ltorDigit.IsFraction() {
		t.Errorf("ltor numeric direction predicates wrong")
	}
	if !(Mask{Kind: GroupingSep}).IsRtol() || !(Mask{Kind: Sign}).IsRtol() {
		t.Errorf("grouping and sign must edit right-to-left")
	}
	if !(Mask{Kind: DecimalSep}).IsLtor() || !(Mask{Kind: Separator, Sep: "/"}).IsLtor() {
		t.Errorf("decimal sep and separator must edit left-to-right")
	}
	if !(Mask{Kind: Sign}).IsNumber() || (Mask{Kind: Letter}).IsNumber() {
		t.Errorf("number classification wrong")
	}
}

func TestOverwriteDropTables(t *testing.T) {
	if !(Mask{Kind: DecimalSep}).CanOverwrite(".") {
		t.Errorf("decimal sep must overwrite itself")
	}
	if !(Mask{Kind: Plus}).CanOverwrite("+") || !(Mask{Kind: Plus}).CanOverwrite("-") {
		t.Errorf("plus slot must overwrite stored signs")
	}
	if (Mask{Kind: Numeric, Dir: Rtol}).CanOverwrite("5") {
		t.Errorf("digits shift, they do not overwrite")
	}

	if !(Mask{Kind: Digit0, Dir: Rtol}).CanDrop("0") || (Mask{Kind: Digit0, Dir: Rtol}).CanDrop(" ") {
		t.Errorf("zero-filled digit drops only its zero")
	}
	if !(Mask{Kind: GroupingSep}).CanDrop(",") || !(Mask{Kind: GroupingSep}).CanDrop(" ") {
		t.Errorf("grouping sep always drops")
	}
	if (Mask{Kind: Separator, Sep: "/"}).CanDrop("/") {
		t.Errorf("separators never drop")
	}

	if !(Mask{Kind: Digit0, Dir: Ltor}).CanOverwriteFraction("0") {
		t.Errorf("fraction digit0 overwrites its zero")
	}
	if !(Mask{Kind: Digit, Dir: Ltor}).CanOverwriteFraction(" ") {
		t.Errorf("fraction digit overwrites a blank")
	}
}

func TestAccepts(t *testing.T) {
	tests := []struct {
		name string
		m    Mask
		r    rune
		want bool
	}{
		{"digit", Mask{Kind: Digit0}, '7', true},
		{"digit rejects letter", Mask{Kind: Digit0}, 'a', false},
		{"numeric sign", Mask{Kind: Numeric}, '-', true},
		{"numeric custom neg", Mask{Kind: Numeric}, '~', false},
		{"hex upper", Mask{Kind: Hex0}, 'F', true},
		{"hex rejects g", Mask{Kind: Hex0}, 'g', false},
		{"oct", Mask{Kind: Oct0}, '7', true},
		{"oct rejects 8", Mask{Kind: Oct0}, '8', false},
		{"letter unicode", Mask{Kind: Letter}, 'ö', true},
		{"letter rejects digit", Mask{Kind: Letter}, '1', false},
		{"any", Mask{Kind: AnyChar}, '!', true},
		{"separator exact", Mask{Kind: Separator, Sep: "/"}, '/', true},
		{"separator keypad dot", Mask{Kind: Separator, Sep: "/"}, '.', true},
		{"separator other", Mask{Kind: Separator, Sep: "/"}, 'x', false},
		{"grouping never", Mask{Kind: GroupingSep}, ',', false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.Accepts(tc.r, '-', '.'); got != tc.want {
				t.Errorf("Accepts(%q) = %v, want %v", tc.r, got, tc.want)
			}
		})
	}

	// symbol mapping: the locale negative sign is accepted too
	if !(Mask{Kind: Sign}).Accepts('~', '~', '.') {
		t.Errorf("sign slot must accept the locale negative symbol")
	}
	if !(Mask{Kind: DecimalSep}).Accepts(',', '-', ',') {
		t.Errorf("decimal sep must accept the locale decimal symbol")
	}
}
