// Package app derives the focus grid from the vault and writes cell changes
// back. UIs and CLIs share it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"tableflip.dev/focuslog/pkg/config"
	"tableflip.dev/focuslog/pkg/entry"
	"tableflip.dev/focuslog/pkg/focuslog"
	"tableflip.dev/focuslog/pkg/glyph"
	"tableflip.dev/focuslog/pkg/item"
	"tableflip.dev/focuslog/pkg/scale"
	"tableflip.dev/focuslog/pkg/store"
	"tableflip.dev/focuslog/pkg/timeutil"
)

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrNoResults     = errors.New("app: no items match")
	ErrMissingPath   = errors.New("app: item path required")
	ErrMissingDate   = errors.New("app: date required")
	ErrInvalidDate   = errors.New("app: invalid date")
)

const defaultConcurrency = 8

// Service provides the grid and cell operations over a store.Persistence.
type Service struct {
	Persistence store.Persistence
	Logger      *slog.Logger
	// Concurrency bounds parallel log reads; zero means a small default.
	Concurrency int
	// Language drives label collation.
	Language language.Tag
}

func (s *Service) log() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// Items returns the filtered and sorted items for opts.
func (s *Service) Items(ctx context.Context, opts config.Options) ([]item.Item, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	candidates := s.Persistence.ListCandidates(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range candidates {
		candidates[i] = candidates[i].WithLabelFrom(opts.TitleProperty)
	}
	matched := item.Filter(candidates, opts.Filter())
	if len(matched) == 0 {
		return nil, ErrNoResults
	}
	return item.Sort(matched, opts.SortBy, opts.SortDescending, s.Language), nil
}

// Log reads and normalizes the log stored in field of the item at path.
// A missing field is an empty log.
func (s *Service) Log(ctx context.Context, path, field string) (focuslog.Log, error) {
	if s.Persistence == nil {
		return focuslog.Log{}, ErrNoPersistence
	}
	if strings.TrimSpace(path) == "" {
		return focuslog.Log{}, ErrMissingPath
	}
	if err := ctx.Err(); err != nil {
		return focuslog.Log{}, err
	}
	if field == "" {
		field = focuslog.DefaultField
	}
	root, err := s.Persistence.ReadHeaderNode(path)
	if err != nil {
		return focuslog.Log{}, err
	}
	return focuslog.NormalizeNode(lookup(root, field)), nil
}

func lookup(root *yaml.Node, field string) *yaml.Node {
	if root == nil || root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == field {
			return root.Content[i+1]
		}
	}
	return nil
}

// Mutate applies m to the entry at date in the item's log and writes the
// result back. The written log is returned.
func (s *Service) Mutate(ctx context.Context, path, field, date string, m focuslog.Mutation) (focuslog.Log, error) {
	if strings.TrimSpace(path) == "" {
		return focuslog.Log{}, ErrMissingPath
	}
	date = strings.TrimSpace(date)
	if date == "" {
		return focuslog.Log{}, ErrMissingDate
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		return focuslog.Log{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if field == "" {
		field = focuslog.DefaultField
	}

	current, err := s.Log(ctx, path, field)
	if err != nil {
		return focuslog.Log{}, err
	}
	if m.IsEmpty() {
		return current, nil
	}

	next := focuslog.Apply(current, date, m)
	if err := s.Persistence.WriteField(path, field, next); err != nil {
		return current, err
	}
	s.log().Debug("app: mutated entry", "path", path, "date", date, "entry", next.Entry(date).String())
	return next, nil
}

// Step advances the rating at date one position within the legal range of
// the given tables.
func (s *Service) Step(ctx context.Context, path, field, date string, r glyph.RatingMap, f glyph.FlagMap) (focuslog.Log, error) {
	current, err := s.Log(ctx, path, field)
	if err != nil {
		return focuslog.Log{}, err
	}
	next := scale.Step(current.Entry(date).Rating, 1, len(r.Symbols), len(f.Glyphs))
	return s.Mutate(ctx, path, field, date, focuslog.SetRating(next))
}

// Watch subscribes to store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Cell is one day of one row.
type Cell struct {
	Day     timeutil.Day  `json:"-"`
	Date    string        `json:"date"`
	Entry   entry.Entry   `json:"entry"`
	Display entry.Display `json:"display"`
}

// Row is one item and its cells across the window.
type Row struct {
	Item  item.Item    `json:"item"`
	Log   focuslog.Log `json:"log"`
	Cells []Cell       `json:"cells"`
}

// Grid is a derived view; it is rebuilt, never edited.
type Grid struct {
	Options config.Options  `json:"-"`
	Window  timeutil.Window `json:"-"`
	Ratings glyph.RatingMap `json:"ratings"`
	Flags   glyph.FlagMap   `json:"flags"`
	Rows    []Row           `json:"rows"`
}

// Dates lists the window dates as YYYY-MM-DD keys.
func (g Grid) Dates() []string {
	out := make([]string, len(g.Window))
	for i, d := range g.Window {
		out[i] = d.Key()
	}
	return out
}

// Grid derives the grid for opts. Logs are read concurrently; a row's
// position is fixed by the sort before any read starts. A log that cannot
// be read renders as empty. ErrNoResults is returned with an empty grid.
func (s *Service) Grid(ctx context.Context, opts config.Options, today time.Time) (Grid, error) {
	g := Grid{
		Options: opts,
		Window:  opts.Window(today),
		Ratings: opts.Ratings(),
		Flags:   opts.Flags(),
	}

	items, err := s.Items(ctx, opts)
	if err != nil {
		return g, err
	}

	rows := make([]Row, len(items))
	field := opts.Field()

	eg, egCtx := errgroup.WithContext(ctx)
	limit := s.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}
	eg.SetLimit(limit)
	for i, it := range items {
		eg.Go(func() error {
			l, err := s.Log(egCtx, it.Path, field)
			if err != nil {
				if ctxErr := egCtx.Err(); ctxErr != nil {
					return ctxErr
				}
				s.log().Warn("app: read log", "path", it.Path, "err", err)
				l = focuslog.Log{}
			}
			rows[i] = s.row(it, l, g)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return g, err
	}
	g.Rows = rows
	return g, nil
}

func (s *Service) row(it item.Item, l focuslog.Log, g Grid) Row {
	if err := glyph.Validate(g.Ratings, g.Flags, l.Ratings()...); err != nil {
		s.log().Warn("app: symbol table too small", "path", it.Path, "err", err)
	}
	cells := make([]Cell, len(g.Window))
	for i, d := range g.Window {
		key := d.Key()
		e := l.Entry(key)
		cells[i] = Cell{
			Day:     d,
			Date:    key,
			Entry:   e,
			Display: entry.Draw(e, g.Ratings, g.Flags),
		}
	}
	return Row{Item: it, Log: l, Cells: cells}
}
