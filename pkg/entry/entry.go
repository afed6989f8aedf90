// Package entry converts stored focus-log values into canonical entries and
// entries into drawable cells.
package entry

import (
	"fmt"

	"tableflip.dev/focuslog/pkg/scale"
)

// Entry is the canonical form of one day in a focus log. Rating is a signed
// scale value (see package scale); an empty Remarks is absent and is never
// written out.
type Entry struct {
	Rating  int    `json:"rating" yaml:"rating"`
	Remarks string `json:"remarks,omitempty" yaml:"remarks,omitempty"`
}

// Value returns the decoded scale value of the rating.
func (e Entry) Value() scale.Value {
	return scale.FromInt(e.Rating)
}

// HasRemarks reports whether remarks are present.
func (e Entry) HasRemarks() bool {
	return e.Remarks != ""
}

// IsZero reports whether e carries neither a value nor remarks.
func (e Entry) IsZero() bool {
	return e.Rating == 0 && e.Remarks == ""
}

func (e Entry) String() string {
	if e.Remarks == "" {
		return e.Value().String()
	}
	return fmt.Sprintf("%s (%s)", e.Value(), e.Remarks)
}
