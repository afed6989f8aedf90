package printers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/focuslog/pkg/app"
	"tableflip.dev/focuslog/pkg/entry"
	"tableflip.dev/focuslog/pkg/focuslog"
	"tableflip.dev/focuslog/pkg/glyph"
)

// Remarks lists the remarks of every visible cell that has them.
func (pp *PrettyPrint) Remarks(g app.Grid) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("Item"), bold.Sprint("Date"), bold.Sprint("Remarks"))
	n := 0
	for _, r := range g.Rows {
		for _, c := range r.Cells {
			if !c.Entry.HasRemarks() {
				continue
			}
			tbl.AddRow(r.Item.Label, c.Date, c.Entry.Remarks)
			n++
		}
	}
	if n == 0 {
		return
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Legend prints the symbols of one rating and one flag table.
func (pp *PrettyPrint) Legend(r glyph.RatingMap, f glyph.FlagMap) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Value"), bold.Sprint("Symbol"), bold.Sprint("Meaning"))
	for i, s := range r.Symbols {
		tbl.AddRow(strconv.Itoa(i+1), s, "rating "+strconv.Itoa(i+1))
	}
	for i, g := range f.Glyphs {
		tbl.AddRow(strconv.Itoa(-(i + 1)), g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), glyph.Bold(glyph.Underline(r.Name+" / "+f.Name)))
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Maps lists every built in table by name.
func (pp *PrettyPrint) Maps(ratings []glyph.RatingMap, flags []glyph.FlagMap) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Rating map"), bold.Sprint("Symbols"))
	for _, r := range ratings {
		tbl.AddRow(r.Name, strings.Join(r.Symbols, " "))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Flag map"), bold.Sprint("Symbols"))
	for _, f := range flags {
		tbl.AddRow(f.Name, strings.Join(f.Symbols(), " "))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Log prints every entry of one log in stored order.
func (pp *PrettyPrint) Log(title string, l focuslog.Log, r glyph.RatingMap, f glyph.FlagMap) {
	pp.TitleWithCount(title, l.Len())
	if l.Len() == 0 {
		pp.NoResults()
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint(""), bold.Sprint("Value"), bold.Sprint("Remarks"))
	for _, date := range l.Dates() {
		e := l.Entry(date)
		d := entry.Draw(e, r, f)
		tbl.AddRow(date, d.Symbol, e.Value().String(), e.Remarks)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
