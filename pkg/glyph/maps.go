package glyph

import (
	"fmt"
	"sort"
)

const (
	// DefaultRatingMap names the rating table used when nothing is configured.
	DefaultRatingMap = "digitsFilled"
	// DefaultFlagMap names the flag table used when nothing is configured.
	DefaultFlagMap = "default"
)

// RatingMap is an ordered rating symbol table; rating n draws Symbols[n-1].
type RatingMap struct {
	Name    string   `json:"name"`
	Symbols []string `json:"symbols"`
}

// FlagMap is an ordered flag symbol table; flag n draws Glyphs[n-1].
type FlagMap struct {
	Name   string  `json:"name"`
	Glyphs []Glyph `json:"glyphs"`
}

// Symbols returns the flag symbols in table order.
func (m FlagMap) Symbols() []string {
	out := make([]string, len(m.Glyphs))
	for i, g := range m.Glyphs {
		out[i] = g.Symbol
	}
	return out
}

// Keys returns the flag key strings in table order.
func (m FlagMap) Keys() []string {
	out := make([]string, len(m.Glyphs))
	for i, g := range m.Glyphs {
		out[i] = g.Key
	}
	return out
}

var ratingMaps = map[string]RatingMap{
	"colors1": {
		Name:    "colors1",
		Symbols: []string{"🟥", "🟧", "🟨", "🟩", "🟦", "🟪"},
	},
	"digitsOpen": {
		Name:    "digitsOpen",
		Symbols: []string{"①", "②", "③", "④", "⑤", "⑥", "⑦", "⑧", "⑨", "⑩"},
	},
	"digitsFilled": {
		Name:    "digitsFilled",
		Symbols: []string{"❶", "❷", "❸", "❹", "❺", "❻", "❼", "❽", "❾", "❿"},
	},
	"moonPhases": {
		Name:    "moonPhases",
		Symbols: []string{"🌑", "🌒", "🌓", "🌔", "🌕"},
	},
}

var flagMaps = map[string]FlagMap{
	"default": {
		Name: "default",
		Glyphs: []Glyph{
			{Key: "blocked", Symbol: "⛔", Meaning: "work could not continue"},
			{Key: "due", Symbol: "⏰", Meaning: "deadline on this day"},
			{Key: "important", Symbol: "⭐", Meaning: "needs attention"},
			{Key: "question", Symbol: "❓", Meaning: "open question"},
			{Key: "idea", Symbol: "💡", Meaning: "new idea"},
			{Key: "done", Symbol: "✅", Meaning: "finished"},
			{Key: "in progress", Symbol: "🚧", Meaning: "started, not finished"},
			{Key: "paused", Symbol: "⏸", Meaning: "intentionally on hold"},
			{Key: "cancelled", Symbol: "❌", Meaning: "dropped"},
		},
	},
}

// RatingMaps returns every built in rating table sorted by name.
func RatingMaps() []RatingMap {
	out := make([]RatingMap, 0, len(ratingMaps))
	for _, m := range ratingMaps {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FlagMaps returns every built in flag table sorted by name.
func FlagMaps() []FlagMap {
	out := make([]FlagMap, 0, len(flagMaps))
	for _, m := range flagMaps {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// RatingMapFor looks up name, then fallback, then DefaultRatingMap.
func RatingMapFor(name, fallback string) RatingMap {
	for _, n := range []string{name, fallback} {
		if m, ok := ratingMaps[n]; ok {
			return m
		}
	}
	return ratingMaps[DefaultRatingMap]
}

// FlagMapFor looks up name, then fallback, then DefaultFlagMap.
func FlagMapFor(name, fallback string) FlagMap {
	for _, n := range []string{name, fallback} {
		if m, ok := flagMaps[n]; ok {
			return m
		}
	}
	return flagMaps[DefaultFlagMap]
}

// Validate reports the largest rating and flag levels found in values that
// the given tables cannot draw. Such cells still render, with OutOfBounds.
func Validate(r RatingMap, f FlagMap, values ...int) error {
	maxRating, maxFlag := 0, 0
	for _, v := range values {
		switch {
		case v > maxRating:
			maxRating = v
		case -v > maxFlag:
			maxFlag = -v
		}
	}
	switch {
	case maxRating > len(r.Symbols):
		return fmt.Errorf("glyph: rating map %q has %d symbols, log uses rating %d", r.Name, len(r.Symbols), maxRating)
	case maxFlag > len(f.Glyphs):
		return fmt.Errorf("glyph: flag map %q has %d symbols, log uses flag %d", f.Name, len(f.Glyphs), maxFlag)
	}
	return nil
}
