// Package log prints one item's normalized focus log.
package log

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/focuslog/pkg/app"
	"tableflip.dev/focuslog/pkg/glyph"
	"tableflip.dev/focuslog/pkg/printers"
)

type Log struct {
	Service *app.Service
	Path    string
	Field   string
	Ratings glyph.RatingMap
	Flags   glyph.FlagMap

	JSON bool
	Out  io.Writer
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log, no service")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	l, err := n.Service.Log(ctx, n.Path, n.Field)
	if err != nil {
		return err
	}
	if n.JSON {
		enc := json.NewEncoder(n.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Log(n.Path, l, n.Ratings, n.Flags)
	return nil
}
