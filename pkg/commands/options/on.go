package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/focuslog/pkg/timeutil"
)

const (
	layoutISOLoose = "2006-1-2"
	layoutShort    = "1/2"
)

// OnOptions select a single day.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions, usage string) {
	cmd.Flags().StringVar(&o.OnString, "on", "", usage+
		` Example: --on="2024-02-28", --on="2/28" or --on=yesterday.`)
}

// GetOn resolves the flag against now. An empty flag returns the zero time.
// Month/day dates fall in the current year.
func (o *OnOptions) GetOn(now time.Time) (time.Time, error) {
	s := strings.TrimSpace(strings.ToLower(o.OnString))
	switch s {
	case "":
		return time.Time{}, nil
	case "today":
		return timeutil.Civil(now), nil
	case "yesterday":
		return timeutil.AddDays(timeutil.Civil(now), -1), nil
	case "tomorrow":
		return timeutil.AddDays(timeutil.Civil(now), 1), nil
	}
	if t, err := timeutil.ParseDate(s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutISOLoose, s); err == nil {
		return timeutil.Civil(t), nil
	}
	t, err := time.Parse(layoutShort, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", o.OnString)
	}
	return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Date is GetOn formatted as a log key, defaulting to today.
func (o *OnOptions) Date(now time.Time) (string, error) {
	t, err := o.GetOn(now)
	if err != nil {
		return "", err
	}
	if t.IsZero() {
		t = now
	}
	return timeutil.FormatDate(t), nil
}
