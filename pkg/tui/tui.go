// Package tui is the interactive focus grid.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/focuslog/pkg/app"
	"tableflip.dev/focuslog/pkg/config"
	"tableflip.dev/focuslog/pkg/focuslog"
	"tableflip.dev/focuslog/pkg/scale"
	"tableflip.dev/focuslog/pkg/store"
	"tableflip.dev/focuslog/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeRemarks
	modeHelp
)

const (
	cellWidth = 2
	helpLine  = "enter step · 1-9 rate · f flag · x clear · r remarks · [ ] day · { } week · t today · s sort · ? help · q quit"
)

// gridLoadedMsg carries the generation of the load that produced it; only
// the latest generation is applied.
type gridLoadedMsg struct {
	gen  int
	grid app.Grid
	err  error
}

type storeEventMsg struct {
	event store.Event
	ok    bool
}

type errMsg struct{ err error }

// Model is the grid UI state. Every control derives a new config.Options
// value and reloads the grid from it.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	opts   config.Options
	now    func() time.Time
	events <-chan store.Event

	grid   app.Grid
	loads  int
	loaded bool
	empty  bool
	row    int
	col    int

	mode   mode
	input  textinput.Model
	status string
	err    error
	theme  theme.Theme

	termWidth  int
	termHeight int
}

// New creates a grid model backed by svc.
func New(ctx context.Context, svc *app.Service, opts config.Options) Model {
	ti := textinput.New()
	ti.Placeholder = "remarks"
	ti.CharLimit = 512
	ti.Prompt = ""

	return Model{
		svc:    svc,
		ctx:    ctx,
		opts:   opts,
		now:    time.Now,
		input:  ti,
		col:    -1,
		theme:  theme.Default(),
		status: helpLine,
	}
}

// Init loads the first grid and subscribes to store events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadGen(m.loads), m.waitForEvent())
}

// load starts a new generation; results of earlier loads are dropped.
func (m *Model) load() tea.Cmd {
	m.loads++
	return m.loadGen(m.loads)
}

func (m Model) loadGen(gen int) tea.Cmd {
	svc, ctx, opts, today := m.svc, m.ctx, m.opts, m.now()
	return func() tea.Msg {
		g, err := svc.Grid(ctx, opts, today)
		return gridLoadedMsg{gen: gen, grid: g, err: err}
	}
}

func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		return storeEventMsg{event: ev, ok: ok}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case gridLoadedMsg:
		if msg.gen != m.loads {
			break
		}
		m.applyGrid(msg.grid, msg.err)
	case storeEventMsg:
		if !msg.ok {
			break
		}
		cmds = append(cmds, m.load(), m.waitForEvent())
	case errMsg:
		m.err = msg.err
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeRemarks:
			switch msg.String() {
			case "enter":
				text := m.input.Value()
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				cmds = append(cmds, m.mutate(focuslog.SetRemarks(text), "Remarks saved"))
			case "esc":
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				m.status = "Remarks cancelled"
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		default:
			cmds = append(cmds, m.handleKey(msg.String()))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(key string) tea.Cmd {
	m.err = nil
	switch key {
	case "q", "ctrl+c":
		return tea.Quit
	case "?":
		m.mode = modeHelp
	case "up", "k":
		m.moveRow(-1)
	case "down", "j":
		m.moveRow(1)
	case "left", "h":
		m.moveCol(-1)
	case "right", "l":
		m.moveCol(1)
	case "enter", "space":
		c, ok := m.cell()
		if !ok {
			return nil
		}
		r, f := m.grid.Ratings, m.grid.Flags
		next := scale.Step(c.Entry.Rating, 1, len(r.Symbols), len(f.Glyphs))
		return m.mutate(focuslog.SetRating(next), "Stepped")
	case "f":
		c, ok := m.cell()
		if !ok {
			return nil
		}
		return m.mutate(focuslog.SetRating(scale.StepFlag(c.Entry.Rating, len(m.grid.Flags.Glyphs))), "Flagged")
	case "x", "backspace", "delete":
		return m.mutate(focuslog.Clear(), "Cleared")
	case "r":
		c, ok := m.cell()
		if !ok {
			return nil
		}
		m.mode = modeRemarks
		m.input.SetValue(c.Entry.Remarks)
		return m.input.Focus()
	case "[":
		return m.reframe(m.opts.ShiftFocal(-1, m.now()))
	case "]":
		return m.reframe(m.opts.ShiftFocal(1, m.now()))
	case "{":
		return m.reframe(m.opts.ShiftFocal(-7, m.now()))
	case "}":
		return m.reframe(m.opts.ShiftFocal(7, m.now()))
	case "t":
		return m.reframe(m.opts.WithFocalDate(time.Time{}))
	case "s":
		m.status = "Sorted descending"
		if m.opts.SortDescending {
			m.status = "Sorted ascending"
		}
		return m.reframe(m.opts.WithSort(m.opts.SortBy, !m.opts.SortDescending))
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
			if n > len(m.grid.Ratings.Symbols) {
				m.status = fmt.Sprintf("Rating %d is past the end of %q", n, m.grid.Ratings.Name)
				return nil
			}
			return m.mutate(focuslog.SetRating(n), "Rated "+key)
		}
	}
	return nil
}

// reframe swaps in new options; the cursor column is re-centred on focal.
func (m *Model) reframe(opts config.Options) tea.Cmd {
	m.opts = opts
	m.col = -1
	return m.load()
}

func (m *Model) mutate(mut focuslog.Mutation, done string) tea.Cmd {
	if m.svc == nil {
		return nil
	}
	c, ok := m.cell()
	if !ok {
		return nil
	}
	r := m.grid.Rows[m.row]
	if _, err := m.svc.Mutate(m.ctx, r.Item.Path, m.opts.Field(), c.Date, mut); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	m.status = fmt.Sprintf("%s %s on %s", done, r.Item.Label, c.Date)
	return m.load()
}

func (m *Model) applyGrid(g app.Grid, err error) {
	m.grid = g
	m.loaded = true
	m.empty = errors.Is(err, app.ErrNoResults)
	if err != nil && !m.empty {
		m.err = err
	}
	if m.row >= len(g.Rows) {
		m.row = len(g.Rows) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	if m.col < 0 || m.col >= len(g.Window) {
		m.col = g.Window.Focal()
	}
}

func (m *Model) moveRow(d int) {
	if len(m.grid.Rows) == 0 {
		return
	}
	m.row = (m.row + d + len(m.grid.Rows)) % len(m.grid.Rows)
}

func (m *Model) moveCol(d int) {
	if len(m.grid.Window) == 0 {
		return
	}
	m.col += d
	if m.col < 0 {
		m.col = 0
	}
	if m.col >= len(m.grid.Window) {
		m.col = len(m.grid.Window) - 1
	}
}

func (m Model) cell() (app.Cell, bool) {
	if m.row < 0 || m.row >= len(m.grid.Rows) {
		return app.Cell{}, false
	}
	cells := m.grid.Rows[m.row].Cells
	if m.col < 0 || m.col >= len(cells) {
		return app.Cell{}, false
	}
	return cells[m.col], true
}

// View renders the grid, the selected cell detail and the status bar.
func (m Model) View() string {
	if !m.loaded {
		return "loading…"
	}
	th := m.theme

	var b strings.Builder
	focal := m.opts.Focal(m.now())
	b.WriteString(th.Grid.Title.Render(focal.Format("Mon Jan 2 2006")))
	b.WriteString("\n\n")

	if m.empty || len(m.grid.Rows) == 0 {
		b.WriteString(th.Grid.Empty.Render("no results"))
	} else {
		b.WriteString(m.renderGrid())
		if c, ok := m.cell(); ok {
			title := th.Panel.Title.Render(m.grid.Rows[m.row].Item.Label + " · " + c.Date)
			body := th.Panel.Body.Render(c.Display.Tooltip)
			if body == "" {
				body = th.Grid.Empty.Render("empty")
			}
			b.WriteString("\n")
			b.WriteString(th.Panel.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, title, body)))
		}
	}

	switch m.mode {
	case modeRemarks:
		b.WriteString("\n\nRemarks: " + m.input.View())
	case modeHelp:
		b.WriteString("\n\n" + th.Panel.Frame.Render(helpLine))
	}

	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(th.Footer.Error.Render("ERR: " + m.err.Error()))
	} else {
		b.WriteString(th.Footer.Status.Render(m.status))
	}
	return b.String()
}

func (m Model) renderGrid() string {
	th := m.theme.Grid

	labelWidth := len("item")
	for _, r := range m.grid.Rows {
		if w := lipgloss.Width(r.Item.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth+2))
	for _, d := range m.grid.Window {
		st := th.Header
		switch {
		case d.IsToday:
			st = th.Today
		case d.Weekday == time.Saturday || d.Weekday == time.Sunday:
			st = th.Weekend
		}
		if d.IsFocal {
			st = st.Inherit(th.Focal)
		}
		b.WriteString(st.Render(fmt.Sprintf("%2d", d.Date.Day())))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for i, r := range m.grid.Rows {
		b.WriteString(th.Label.Render(pad(r.Item.Label, labelWidth)))
		b.WriteString("  ")
		for j, c := range r.Cells {
			st := th.Cell
			if c.Day.IsFuture {
				st = th.Future
			}
			if v := c.Entry.Value(); v.Kind == scale.Rating {
				st = st.Foreground(theme.RatingColor(v.Level, len(m.grid.Ratings.Symbols)))
			}
			if i == m.row && j == m.col {
				st = th.Cursor
			}
			b.WriteString(st.Render(pad(c.Display.Symbol, cellWidth)))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Run opens the grid UI and blocks until it quits. Store events reload the
// grid while it is open.
func Run(ctx context.Context, svc *app.Service, opts config.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(ctx, svc, opts)
	if ch, err := svc.Watch(ctx); err == nil {
		m.events = ch
	} else {
		m.status = "watch unavailable: " + err.Error()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
