// Package main is a small terminal demo for the editing cores: one
// masked currency field and one plain text field. It drives the cores
// exactly the way a widget should: keystrokes go through the editing
// operations, rendering only reads text, offset, width and cursor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/tidwall/sjson"

	"github.com/dshills/textcore/internal/engine/grapheme"
	"github.com/dshills/textcore/internal/engine/input"
	"github.com/dshills/textcore/internal/engine/masked"
	"github.com/dshills/textcore/internal/engine/sym"
)

const currencyMask = `\€ ###,##0.0##+`

type options struct {
	SymbolsPath string
	Locale      string
	OutPath     string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	symbols := sym.Default()
	if opts.SymbolsPath != "" {
		data, err := os.ReadFile(opts.SymbolsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: read symbols: %v\n", err)
			return 1
		}
		symbols, err = sym.FromJSON(data, opts.Locale)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	amount := masked.NewCore()
	amount.SetSymbols(symbols)
	if err := amount.SetMask(currencyMask); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	amount.SetWidth(amount.Len())

	note := input.NewCore()
	note.SetWidth(24)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	d := &demo{
		screen: screen,
		amount: amount,
		note:   note,
	}
	d.loop()

	if opts.OutPath != "" {
		if err := saveValues(opts.OutPath, amount, note); err != nil {
			fmt.Fprintf(os.Stderr, "Error: save values: %v\n", err)
			return 1
		}
	}
	return 0
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.SymbolsPath, "symbols", "", "Path to a JSON number-symbol table")
	flag.StringVar(&opts.Locale, "locale", "en-US", "Locale key in the symbol table")
	flag.StringVar(&opts.OutPath, "out", "", "Write entered values to this JSON file on exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "maskdemo - masked input demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: maskdemo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: Tab switches fields, Esc quits.\n")
	}
	flag.Parse()
	return opts
}

// saveValues writes the entered values into the JSON file, creating or
// updating it in place.
func saveValues(path string, amount *masked.Core, note *input.Core) error {
	doc := "{}"
	if data, err := os.ReadFile(path); err == nil {
		doc = string(data)
	}

	doc, err := sjson.Set(doc, "amount", amount.Text())
	if err != nil {
		return err
	}
	doc, err = sjson.Set(doc, "note", note.Value())
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}

type demo struct {
	screen tcell.Screen
	amount *masked.Core
	note   *input.Core

	// 0 = amount, 1 = note
	focus int
}

func (d *demo) loop() {
	for {
		d.draw()
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			if !d.handleKey(ev) {
				return
			}
		}
	}
}

func (d *demo) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		d.focus = 1 - d.focus
	case tcell.KeyLeft:
		d.moveCursor(-1, ev.Modifiers()&tcell.ModShift != 0)
	case tcell.KeyRight:
		d.moveCursor(1, ev.Modifiers()&tcell.ModShift != 0)
	case tcell.KeyHome:
		d.setCursor(0)
	case tcell.KeyEnd:
		d.setCursorEnd()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if d.focus == 0 {
			d.amount.Backspace()
		} else if start, end := d.note.Selection(); start != end {
			d.note.RemoveRange(start, end)
		} else if cur := d.note.Cursor(); cur > 0 {
			d.note.RemoveRange(cur-1, cur)
		}
	case tcell.KeyDelete:
		if d.focus == 0 {
			d.amount.Delete()
		} else if start, end := d.note.Selection(); start != end {
			d.note.RemoveRange(start, end)
		} else {
			cur := d.note.Cursor()
			d.note.RemoveRange(cur, cur+1)
		}
	case tcell.KeyRune:
		if d.focus == 0 {
			d.amount.TypeChar(ev.Rune())
		} else {
			if start, end := d.note.Selection(); start != end {
				d.note.Replace(start, end, string(ev.Rune()))
			} else {
				d.note.InsertChar(d.note.Cursor(), ev.Rune())
			}
		}
	}
	return true
}

func (d *demo) moveCursor(delta int, extend bool) {
	if d.focus == 0 {
		d.amount.SetCursor(d.amount.Cursor()+delta, extend)
	} else {
		d.note.SetCursor(d.note.Cursor()+delta, extend)
	}
}

func (d *demo) setCursor(pos int) {
	if d.focus == 0 {
		d.amount.SetCursor(pos, false)
	} else {
		d.note.SetCursor(pos, false)
	}
}

func (d *demo) setCursorEnd() {
	if d.focus == 0 {
		d.amount.SetCursor(d.amount.Len(), false)
	} else {
		d.note.SetCursor(d.note.Len(), false)
	}
}

func (d *demo) draw() {
	d.screen.Clear()

	style := tcell.StyleDefault
	label := style.Foreground(tcell.ColorYellow)
	field := style.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)

	putString(d.screen, 2, 1, "Amount:", label)
	putString(d.screen, 10, 1, d.amount.DisplayText(), field)

	putString(d.screen, 2, 3, "Note:", label)
	putString(d.screen, 10, 3, d.note.VisibleText(), field)

	putString(d.screen, 2, 5, "Tab switches fields, Esc quits", style.Dim(true))

	if d.focus == 0 {
		col := displayColumns(d.amount.DisplayText(), d.amount.Cursor()-d.amount.Offset())
		d.screen.ShowCursor(10+col, 1)
	} else {
		col := displayColumns(d.note.VisibleText(), d.note.Cursor()-d.note.Offset())
		d.screen.ShowCursor(10+col, 3)
	}

	d.screen.Show()
}

// putString draws text cluster by cluster, advancing one screen cell per
// column so wide clusters do not shift everything after them.
func putString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	it := grapheme.NewIter(text, 0)
	for g, ok := it.Next(); ok; g, ok = it.Next() {
		runes := []rune(g.Text)
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += g.Width()
	}
}

// displayColumns returns the screen column of the n-th grapheme cluster
// of text, summing cluster widths up to it.
func displayColumns(text string, n int) int {
	cols := 0
	it := grapheme.NewIter(text, 0)
	for i := 0; i < n; i++ {
		g, ok := it.Next()
		if !ok {
			break
		}
		cols += g.Width()
	}
	return cols
}
