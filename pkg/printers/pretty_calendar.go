package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/focuslog/pkg/timeutil"
)

// windowHeader prints the weekday initials and the day of month above the
// grid columns. Today is bold, the focal day underlined and weekends faint.
func (pp *PrettyPrint) windowHeader(indent int, w timeutil.Window) {
	lead := strings.Repeat(" ", indent+2)

	_, _ = fmt.Fprint(pp.out(), lead)
	for _, d := range w {
		_, _ = dayPrinter(d).Fprint(pp.out(), pad(d.Weekday.String()[0:1], cellWidth))
		_, _ = fmt.Fprint(pp.out(), " ")
	}
	_, _ = fmt.Fprintln(pp.out(), "")

	_, _ = fmt.Fprint(pp.out(), lead)
	for _, d := range w {
		_, _ = dayPrinter(d).Fprintf(pp.out(), "%2d", d.Date.Day())
		_, _ = fmt.Fprint(pp.out(), " ")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

func dayPrinter(d timeutil.Day) *color.Color {
	var attrs []color.Attribute
	if d.IsToday {
		attrs = append(attrs, color.Bold, color.FgHiWhite)
	}
	if d.IsFocal {
		attrs = append(attrs, color.Underline)
	}
	if d.Weekday == time.Saturday || d.Weekday == time.Sunday {
		attrs = append(attrs, color.Faint)
	}
	return color.New(attrs...)
}
