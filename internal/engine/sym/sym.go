// Package sym holds the number symbols used by masked editing. The
// edit buffer always stores the canonical characters ("." "," "-" "+"),
// symbols only map user input and rendered output.
package sym

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Symbols is one locale's set of number symbols.
type Symbols struct {
	// Decimal separates integer and fraction digits.
	Decimal rune
	// Grouping separates digit groups in the integer part.
	Grouping rune
	// Negative marks negative numbers.
	Negative rune
	// Positive fills the sign slot of positive numbers.
	Positive rune
	// Currency is the display symbol for currency fields.
	Currency string
}

// Default returns the canonical symbol set.
func Default() Symbols {
	return Symbols{
		Decimal:  '.',
		Grouping: ',',
		Negative: '-',
		Positive: ' ',
		Currency: "$",
	}
}

// FromJSON looks up a locale in a JSON symbol table of the form
//
//	{"de-AT": {"decimal": ",", "grouping": ".", "currency": "€"}}
//
// Fields missing from the locale entry keep their defaults.
func FromJSON(data []byte, locale string) (Symbols, error) {
	entry := gjson.GetBytes(data, locale)
	if !entry.Exists() {
		return Symbols{}, fmt.Errorf("symbols: no locale %q", locale)
	}

	s := Default()
	setRune := func(dst *rune, key string) {
		if v := entry.Get(key); v.Exists() && v.String() != "" {
			*dst = []rune(v.String())[0]
		}
	}
	setRune(&s.Decimal, "decimal")
	setRune(&s.Grouping, "grouping")
	setRune(&s.Negative, "negative")
	setRune(&s.Positive, "positive")
	if v := entry.Get("currency"); v.Exists() {
		s.Currency = v.String()
	}
	return s, nil
}
