package entry

import (
	"fmt"

	"tableflip.dev/focuslog/pkg/glyph"
	"tableflip.dev/focuslog/pkg/scale"
)

// RemarksSeparator sits between the value description and the remarks in a
// tooltip.
const RemarksSeparator = "───────────"

// Display is what a single grid cell shows.
type Display struct {
	HasValue bool   `json:"hasValue"`
	Symbol   string `json:"symbol"`
	Tooltip  string `json:"tooltip"`
}

// ToDisplay picks the symbol and tooltip for e. Levels past the end of a
// symbol table draw glyph.OutOfBounds instead of failing.
func ToDisplay(e Entry, ratingSymbols, flagSymbols, flagKeys []string) Display {
	v := e.Value()

	var d Display
	switch v.Kind {
	case scale.Rating:
		d = Display{
			HasValue: true,
			Symbol:   symbolAt(ratingSymbols, v.Index()),
			Tooltip:  fmt.Sprintf("Rating: %d", v.Level),
		}
	case scale.Flag:
		d = Display{
			HasValue: true,
			Symbol:   symbolAt(flagSymbols, v.Index()),
			Tooltip:  fmt.Sprintf("Flag %d", v.Level),
		}
		if i := v.Index(); i < len(flagKeys) && flagKeys[i] != "" {
			d.Tooltip += ": " + flagKeys[i]
		}
	default:
		return Display{Symbol: glyph.Blank, Tooltip: e.Remarks}
	}

	if e.HasRemarks() {
		d.Tooltip = d.Tooltip + "\n" + RemarksSeparator + "\n" + e.Remarks
	}
	return d
}

// Draw is ToDisplay with the symbol tables taken from the given maps.
func Draw(e Entry, r glyph.RatingMap, f glyph.FlagMap) Display {
	return ToDisplay(e, r.Symbols, f.Symbols(), f.Keys())
}

func symbolAt(symbols []string, i int) string {
	if i < 0 || i >= len(symbols) {
		return glyph.OutOfBounds
	}
	return symbols[i]
}
