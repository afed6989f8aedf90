// Package printers renders focus grids and symbol tables for the terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/focuslog/pkg/app"
	"tableflip.dev/focuslog/pkg/timeutil"
)

// cellWidth fits one wide glyph; narrow symbols are padded to it.
const cellWidth = 2

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// ShowRemarks lists the remarks of the visible cells under the grid.
	ShowRemarks bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

// NoResults is drawn in place of an empty grid.
func (pp *PrettyPrint) NoResults() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " no results\n\n")
}

// Notice prints a one line warning.
func (pp *PrettyPrint) Notice(format string, args ...any) {
	y := color.New(color.FgHiYellow)
	_, _ = y.Fprintf(pp.out(), format+"\n", args...)
}

// gridTitle names the focal day, or the window span when none is focal.
func gridTitle(w timeutil.Window) string {
	const layout = "Mon Jan 2 2006"
	if i := w.Focal(); i >= 0 {
		return w[i].Date.Format(layout)
	}
	if len(w) == 0 {
		return "focus"
	}
	return w[0].Date.Format(layout) + " to " + w[len(w)-1].Date.Format(layout)
}

// Grid draws one line per row under a two line date header.
func (pp *PrettyPrint) Grid(g app.Grid) {
	pp.TitleWithCount(gridTitle(g.Window), len(g.Rows))
	if len(g.Rows) == 0 {
		pp.NoResults()
		return
	}

	labelWidth := len("item")
	for _, r := range g.Rows {
		if w := ansi.PrintableRuneWidth(r.Item.Label); w > labelWidth {
			labelWidth = w
		}
	}

	pp.windowHeader(labelWidth, g.Window)

	label := color.New(color.FgHiWhite)
	faint := color.New(color.Faint)
	plain := color.New()
	for _, r := range g.Rows {
		_, _ = label.Fprint(pp.out(), pad(r.Item.Label, labelWidth))
		_, _ = fmt.Fprint(pp.out(), "  ")
		for _, c := range r.Cells {
			p := plain
			if c.Day.IsFuture {
				p = faint
			}
			_, _ = p.Fprint(pp.out(), pad(c.Display.Symbol, cellWidth)+" ")
		}
		_, _ = fmt.Fprintln(pp.out(), "")
	}
	pp.NewLine()

	if pp.ShowRemarks {
		pp.Remarks(g)
	}
}

func pad(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
