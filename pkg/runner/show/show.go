// Package show renders the focus grid once, or on every store change.
package show

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"tableflip.dev/focuslog/pkg/app"
	"tableflip.dev/focuslog/pkg/config"
	"tableflip.dev/focuslog/pkg/printers"
	"tableflip.dev/focuslog/pkg/store"
	"tableflip.dev/focuslog/pkg/timeutil"
)

type Show struct {
	Service *app.Service
	Options config.Options
	Now     func() time.Time
	Out     io.Writer

	JSON    bool
	Remarks bool
	Legend  bool
	// Watch keeps rendering on store events until ctx is done.
	Watch bool
	// Clear wipes the terminal before each watch render.
	Clear bool
}

// gridJSON is the --json shape of a grid.
type gridJSON struct {
	Focal string    `json:"focal"`
	Today string    `json:"today"`
	Dates []string  `json:"dates"`
	Rows  []app.Row `json:"rows"`
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	if n.Now == nil {
		n.Now = time.Now
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	if !n.Watch {
		return n.render(ctx)
	}

	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	if err := n.render(ctx); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type != store.EventItemChanged && ev.Type != store.EventItemsInvalidated {
				continue
			}
			if err := n.render(ctx); err != nil {
				return err
			}
		}
	}
}

func (n *Show) render(ctx context.Context) error {
	today := n.Now()
	g, err := n.Service.Grid(ctx, n.Options, today)
	if err != nil && !errors.Is(err, app.ErrNoResults) {
		return err
	}

	if n.JSON {
		out := gridJSON{
			Focal: timeutil.FormatDate(n.Options.Focal(today)),
			Today: timeutil.FormatDate(today),
			Dates: g.Dates(),
			Rows:  g.Rows,
		}
		if out.Rows == nil {
			out.Rows = []app.Row{}
		}
		enc := json.NewEncoder(n.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if n.Watch && n.Clear {
		termenv.NewOutput(n.Out).ClearScreen()
	}
	pp := printers.PrettyPrint{Out: n.Out, ShowRemarks: n.Remarks}
	pp.Grid(g)
	if n.Legend {
		pp.Legend(g.Ratings, g.Flags)
	}
	return nil
}
