// Package cell changes one day of one item's focus log.
package cell

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/focuslog/pkg/app"
	"tableflip.dev/focuslog/pkg/entry"
	"tableflip.dev/focuslog/pkg/focuslog"
	"tableflip.dev/focuslog/pkg/glyph"
)

type Cell struct {
	Service *app.Service
	Path    string
	Field   string
	Date    string

	// Mutation is applied as is unless Step is set.
	Mutation focuslog.Mutation
	// Step advances the current rating within the tables' range.
	Step    bool
	Ratings glyph.RatingMap
	Flags   glyph.FlagMap

	JSON bool
	Out  io.Writer
}

func (n *Cell) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not change cell, no service")
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	var (
		l   focuslog.Log
		err error
	)
	if n.Step {
		l, err = n.Service.Step(ctx, n.Path, n.Field, n.Date, n.Ratings, n.Flags)
	} else {
		l, err = n.Service.Mutate(ctx, n.Path, n.Field, n.Date, n.Mutation)
	}
	if err != nil {
		return err
	}

	e := l.Entry(n.Date)
	if n.JSON {
		b, err := json.Marshal(map[string]any{
			"path":  n.Path,
			"date":  n.Date,
			"entry": e,
		})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(n.Out, string(b))
		return nil
	}

	d := entry.Draw(e, n.Ratings, n.Flags)
	_, _ = fmt.Fprintf(n.Out, "%s %s %s %s\n", n.Path, n.Date, d.Symbol, e.Value())
	if e.HasRemarks() {
		_, _ = color.New(color.Faint).Fprintf(n.Out, "  %s\n", e.Remarks)
	}
	return nil
}
