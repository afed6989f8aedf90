package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea grid.
type Theme struct {
	Grid   GridTheme
	Footer FooterTheme
	Panel  PanelTheme
}

// GridTheme styles the date header, row labels and cells.
type GridTheme struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Today   lipgloss.Style
	Focal   lipgloss.Style
	Weekend lipgloss.Style
	Label   lipgloss.Style
	Cell    lipgloss.Style
	Future  lipgloss.Style
	Cursor  lipgloss.Style
	Empty   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles the framed detail and help panels.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	return Theme{
		Grid: GridTheme{
			Title:   lipgloss.NewStyle().Bold(true).Underline(true),
			Header:  header,
			Today:   header.Bold(true).Foreground(lipgloss.Color("212")),
			Focal:   header.Underline(true),
			Weekend: header.Faint(true),
			Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Cell:    lipgloss.NewStyle(),
			Future:  lipgloss.NewStyle().Faint(true),
			Cursor:  lipgloss.NewStyle().Reverse(true),
			Empty:   lipgloss.NewStyle().Italic(true).Faint(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}

var (
	ratingLow  = colorful.Color{R: 0.84, G: 0.38, B: 0.35}
	ratingHigh = colorful.Color{R: 0.37, G: 0.72, B: 0.47}
)

// RatingColor shades rating level of count from the low to the high end of
// the scale.
func RatingColor(level, count int) color.Color {
	if count <= 1 {
		return ratingHigh
	}
	t := float64(level-1) / float64(count-1)
	switch {
	case t <= 0:
		return ratingLow
	case t >= 1:
		return ratingHigh
	}
	return ratingLow.BlendLab(ratingHigh, t).Clamped()
}
