// Package glyph holds the symbol tables used to draw focus-log cells.
package glyph

import "fmt"

// Glyph is one symbol of a table. Key is the human readable name shown in
// tooltips; rating glyphs usually leave it empty.
type Glyph struct {
	Key     string `json:"key,omitempty"`
	Symbol  string `json:"symbol"`
	Meaning string `json:"meaning,omitempty"`
}

func (g Glyph) String() string {
	return g.Symbol
}

// OutOfBounds is drawn for scale values past the end of a symbol table.
const OutOfBounds = "⚠"

// Blank is drawn for cells without a value.
const Blank = " "

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}
