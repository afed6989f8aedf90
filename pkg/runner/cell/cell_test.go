package cell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/focuslog/pkg/app"
	"tableflip.dev/focuslog/pkg/focuslog"
	"tableflip.dev/focuslog/pkg/glyph"
	"tableflip.dev/focuslog/pkg/store"
)

type vault string

func (v vault) BasePath() string { return string(v) }

func newCell(t *testing.T) *Cell {
	t.Helper()
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "run.md"), []byte("---\ntitle: Run\n---\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := store.Load(vault(base), logger)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return &Cell{
		Service: &app.Service{Persistence: p, Logger: logger},
		Path:    "run.md",
		Field:   focuslog.DefaultField,
		Date:    "2024-03-06",
		Ratings: glyph.RatingMap{Name: "two", Symbols: []string{"a", "b"}},
		Flags:   glyph.FlagMapFor(glyph.DefaultFlagMap, glyph.DefaultFlagMap),
		JSON:    true,
	}
}

func decode(t *testing.T, buf *bytes.Buffer) (int, string) {
	t.Helper()
	var out struct {
		Entry struct {
			Rating  int    `json:"rating"`
			Remarks string `json:"remarks"`
		} `json:"entry"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	buf.Reset()
	return out.Entry.Rating, out.Entry.Remarks
}

func TestCellSetAndStep(t *testing.T) {
	c := newCell(t)
	var buf bytes.Buffer
	c.Out = &buf
	ctx := context.Background()

	c.Mutation = focuslog.Mutation{Rating: focuslog.SetRating(2).Rating, Remarks: focuslog.SetRemarks(" ok ").Remarks}
	if err := c.Do(ctx); err != nil {
		t.Fatalf("set: %v", err)
	}
	if r, m := decode(t, &buf); r != 2 || m != "ok" {
		t.Fatalf("after set = %d %q", r, m)
	}

	c.Step = true
	if err := c.Do(ctx); err != nil {
		t.Fatalf("step: %v", err)
	}
	if r, m := decode(t, &buf); r != 0 || m != "ok" {
		t.Fatalf("step past two symbols = %d %q, want 0 \"ok\"", r, m)
	}
}

func TestCellBadDate(t *testing.T) {
	c := newCell(t)
	c.Out = io.Discard
	c.Date = "tomorrow-ish"
	c.Mutation = focuslog.SetRating(1)
	if err := c.Do(context.Background()); !errors.Is(err, app.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
