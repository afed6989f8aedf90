package focuslog

import (
	"sort"
	"strings"

	"tableflip.dev/focuslog/pkg/timeutil"
)

// Mutation changes one day of a log. Nil fields are left alone.
type Mutation struct {
	Rating  *int
	Remarks *string
}

// SetRating returns a mutation that overwrites the rating.
func SetRating(n int) Mutation {
	return Mutation{Rating: &n}
}

// SetRemarks returns a mutation that overwrites the remarks; blank text
// removes them.
func SetRemarks(s string) Mutation {
	return Mutation{Remarks: &s}
}

// Clear returns a mutation that unsets the rating and removes the remarks.
func Clear() Mutation {
	zero, empty := 0, ""
	return Mutation{Rating: &zero, Remarks: &empty}
}

// IsEmpty reports whether m changes nothing.
func (m Mutation) IsEmpty() bool {
	return m.Rating == nil && m.Remarks == nil
}

// Apply returns l with the entry at date changed by m. Remarks are trimmed
// and removed when blank. The result is ordered by date across every key, so
// the stored log stays chronological after each write; keys that are not
// dates sort last.
func Apply(l Log, date string, m Mutation) Log {
	e := l.Entry(date)
	if m.Rating != nil {
		e.Rating = *m.Rating
	}
	if m.Remarks != nil {
		e.Remarks = strings.TrimSpace(*m.Remarks)
	}
	out := l.With(date, e)
	out.sortByDate()
	return out
}

func (l *Log) sortByDate() {
	sort.SliceStable(l.dates, func(i, j int) bool {
		return dateLess(l.dates[i], l.dates[j])
	})
}

func dateLess(a, b string) bool {
	at, aerr := timeutil.ParseDate(a)
	bt, berr := timeutil.ParseDate(b)
	switch {
	case aerr == nil && berr == nil:
		return at.Before(bt)
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return a < b
	}
}
