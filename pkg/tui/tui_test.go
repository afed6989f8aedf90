package tui

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/focuslog/pkg/app"
	"tableflip.dev/focuslog/pkg/config"
	"tableflip.dev/focuslog/pkg/focuslog"
	"tableflip.dev/focuslog/pkg/store"
)

type vault string

func (v vault) BasePath() string { return string(v) }

var fixedToday = time.Date(2024, time.March, 6, 9, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T, docs map[string]string) (Model, *app.Service) {
	t.Helper()
	base := t.TempDir()
	for name, content := range docs {
		if err := os.WriteFile(filepath.Join(base, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := store.Load(vault(base), logger)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	svc := &app.Service{Persistence: p, Logger: logger}
	opts := config.Defaults(config.DefaultSettings()).WithDays(2, 2)

	m := New(context.Background(), svc, opts)
	m.now = func() time.Time { return fixedToday }
	cmd := m.load()
	return settle(t, m, cmd), svc
}

// settle runs cmd and feeds the resulting messages back into m. Only
// commands that finish immediately may be passed.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = settle(t, m, c)
		}
		return m
	default:
		next, follow := m.Update(msg)
		m = next.(Model)
		if _, ok := msg.(gridLoadedMsg); ok {
			return m
		}
		return settle(t, m, follow)
	}
}

func press(t *testing.T, m Model, key tea.KeyPressMsg) Model {
	t.Helper()
	next, cmd := m.Update(key)
	return settle(t, next.(Model), cmd)
}

func runes(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg{Text: s, Code: r}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func focalEntry(t *testing.T, svc *app.Service, path string) (int, string) {
	t.Helper()
	l, err := svc.Log(context.Background(), path, focuslog.DefaultField)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	e := l.Entry("2024-03-06")
	return e.Rating, e.Remarks
}

func TestInitialLoadCentresCursor(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{
		"read.md": "---\ntitle: Read\n---\n",
		"run.md":  "---\ntitle: Run\n---\n",
	})

	if len(m.grid.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(m.grid.Rows))
	}
	if m.row != 0 || m.col != 2 {
		t.Fatalf("cursor = (%d, %d), want (0, 2)", m.row, m.col)
	}
	view := stripANSI(m.View())
	for _, want := range []string{"Wed Mar 6 2024", "read", "run", " 4  5  6  7  8"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestKeysMutateFocalCell(t *testing.T) {
	m, svc := newTestModel(t, map[string]string{"run.md": "---\ntitle: Run\n---\n"})

	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got, _ := focalEntry(t, svc, "run.md"); got != 1 {
		t.Fatalf("after enter rating = %d, want 1", got)
	}

	m = press(t, m, runes("4"))
	if got, _ := focalEntry(t, svc, "run.md"); got != 4 {
		t.Fatalf("after 4 rating = %d, want 4", got)
	}
	if c, _ := m.cell(); c.Entry.Rating != 4 {
		t.Fatalf("grid not reloaded, cell rating = %d", c.Entry.Rating)
	}

	m = press(t, m, runes("f"))
	if got, _ := focalEntry(t, svc, "run.md"); got != -1 {
		t.Fatalf("after f rating = %d, want -1", got)
	}
	m = press(t, m, runes("f"))
	if got, _ := focalEntry(t, svc, "run.md"); got != -2 {
		t.Fatalf("after second f rating = %d, want -2", got)
	}

	m = press(t, m, runes("x"))
	if got, _ := focalEntry(t, svc, "run.md"); got != 0 {
		t.Fatalf("after x rating = %d, want 0", got)
	}
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
}

func TestRatingPastTableIsRejected(t *testing.T) {
	m, svc := newTestModel(t, map[string]string{"run.md": "---\n---\n"})
	m.grid.Ratings.Symbols = m.grid.Ratings.Symbols[:3]

	m = press(t, m, runes("5"))
	if got, _ := focalEntry(t, svc, "run.md"); got != 0 {
		t.Fatalf("rating should not be written, got %d", got)
	}
	if !strings.Contains(m.status, "past the end") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestRemarksMode(t *testing.T) {
	m, svc := newTestModel(t, map[string]string{"run.md": "---\n---\n"})

	next, _ := m.Update(runes("r"))
	m = next.(Model)
	if m.mode != modeRemarks {
		t.Fatalf("expected remarks mode, got %v", m.mode)
	}
	m.input.SetValue("  felt strong  ")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after enter, got %v", m.mode)
	}
	if _, remarks := focalEntry(t, svc, "run.md"); remarks != "felt strong" {
		t.Fatalf("remarks = %q", remarks)
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "felt strong") {
		t.Fatalf("expected remarks in detail panel:\n%s", view)
	}
}

func TestShiftAndTodayKeys(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{"run.md": "---\n---\n"})

	m = press(t, m, runes("]"))
	if got := m.grid.Window[m.grid.Window.Focal()].Key(); got != "2024-03-07" {
		t.Fatalf("after ] focal = %s", got)
	}
	m = press(t, m, runes("{"))
	if got := m.grid.Window[m.grid.Window.Focal()].Key(); got != "2024-02-29" {
		t.Fatalf("after { focal = %s", got)
	}
	if m.grid.Window.Today() != -1 {
		t.Fatalf("today should be outside the shifted window")
	}
	m = press(t, m, runes("t"))
	if got := m.grid.Window[m.grid.Window.Focal()].Key(); got != "2024-03-06" {
		t.Fatalf("after t focal = %s", got)
	}
}

// loadMsg runs cmd and returns the grid load it produced.
func loadMsg(t *testing.T, cmd tea.Cmd) gridLoadedMsg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a load command")
	}
	switch msg := cmd().(type) {
	case gridLoadedMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			return loadMsg(t, c)
		}
	}
	t.Fatalf("no grid load in command")
	return gridLoadedMsg{}
}

func TestStaleLoadIsDropped(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{"run.md": "---\n---\n"})

	next, first := m.Update(runes("]"))
	m = next.(Model)
	next, second := m.Update(runes("]"))
	m = next.(Model)

	newer, older := loadMsg(t, second), loadMsg(t, first)
	next, _ = m.Update(newer)
	m = next.(Model)
	next, _ = m.Update(older)
	m = next.(Model)

	want := "2024-03-08"
	if got := m.grid.Window[m.grid.Window.Focal()].Key(); got != want {
		t.Fatalf("displayed focal = %s, want %s", got, want)
	}
	if got := m.opts.Focal(fixedToday).Format("2006-01-02"); got != want {
		t.Fatalf("options focal = %s, want %s", got, want)
	}
}

func TestSortToggle(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{
		"alpha.md": "---\n---\n",
		"beta.md":  "---\n---\n",
	})
	if m.grid.Rows[0].Item.Label != "alpha" {
		t.Fatalf("first row = %s", m.grid.Rows[0].Item.Label)
	}
	m = press(t, m, runes("s"))
	if m.grid.Rows[0].Item.Label != "beta" {
		t.Fatalf("after s first row = %s", m.grid.Rows[0].Item.Label)
	}
}

func TestNavigationWraps(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{
		"a.md": "---\n---\n",
		"b.md": "---\n---\n",
	})
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyUp})
	if m.row != 1 {
		t.Fatalf("up from first row = %d, want 1", m.row)
	}
	for i := 0; i < 10; i++ {
		m = press(t, m, tea.KeyPressMsg{Code: tea.KeyRight})
	}
	if m.col != 4 {
		t.Fatalf("col clamped = %d, want 4", m.col)
	}
}

func TestEmptyVault(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if view := stripANSI(m.View()); !strings.Contains(view, "no results") {
		t.Fatalf("expected no results:\n%s", view)
	}
	if m.err != nil {
		t.Fatalf("no results is not an error: %v", m.err)
	}
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.err != nil {
		t.Fatalf("enter on empty grid: %v", m.err)
	}
}
