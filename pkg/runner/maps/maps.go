// Package maps lists the symbol tables.
package maps

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/focuslog/pkg/glyph"
	"tableflip.dev/focuslog/pkg/printers"
)

type Maps struct {
	// Rating and Flag, when set, print the legend of those two tables.
	Rating string
	Flag   string

	JSON bool
	Out  io.Writer
}

func (n *Maps) Do(_ context.Context) error {
	if n.Out == nil {
		n.Out = color.Output
	}
	if n.JSON {
		enc := json.NewEncoder(n.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"ratingMaps": glyph.RatingMaps(),
			"flagMaps":   glyph.FlagMaps(),
		})
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.Rating != "" || n.Flag != "" {
		pp.Legend(
			glyph.RatingMapFor(n.Rating, glyph.DefaultRatingMap),
			glyph.FlagMapFor(n.Flag, glyph.DefaultFlagMap),
		)
		return nil
	}
	pp.Maps(glyph.RatingMaps(), glyph.FlagMaps())
	return nil
}
