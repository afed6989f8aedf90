// Package scale splits the signed scale encoding used by focus logs into
// ratings and flags.
//
// A stored scale value is a single signed integer: 0 is unset, n > 0 is
// rating level n and n < 0 is flag level |n|. Callers convert to a Value
// before acting on it so the sign never leaks into business logic.
package scale

import "fmt"

// Kind discriminates the variants of a Value.
type Kind int

const (
	// Unset is the zero value: nothing recorded.
	Unset Kind = iota
	// Rating is a 1-indexed level into the rating symbol table.
	Rating
	// Flag is a 1-indexed level into the flag symbol table.
	Flag
)

func (k Kind) String() string {
	switch k {
	case Rating:
		return "rating"
	case Flag:
		return "flag"
	default:
		return "unset"
	}
}

// Value is a decoded scale value. Level is always >= 1 unless Kind is Unset.
type Value struct {
	Kind  Kind
	Level int
}

// FromInt decodes the signed storage encoding.
func FromInt(n int) Value {
	switch {
	case n > 0:
		return NewRating(n)
	case n < 0:
		return NewFlag(-n)
	default:
		return Value{}
	}
}

// NewRating returns rating level n, or Unset when n < 1.
func NewRating(n int) Value {
	if n < 1 {
		return Value{}
	}
	return Value{Kind: Rating, Level: n}
}

// NewFlag returns flag level n, or Unset when n < 1.
func NewFlag(n int) Value {
	if n < 1 {
		return Value{}
	}
	return Value{Kind: Flag, Level: n}
}

// Int returns the signed storage encoding.
func (v Value) Int() int {
	switch v.Kind {
	case Rating:
		return v.Level
	case Flag:
		return -v.Level
	default:
		return 0
	}
}

// IsSet reports whether v carries a rating or a flag.
func (v Value) IsSet() bool {
	return v.Kind != Unset
}

// Index is the 0-based position of v in its symbol table, or -1 when unset.
func (v Value) Index() int {
	if v.Kind == Unset {
		return -1
	}
	return v.Level - 1
}

func (v Value) String() string {
	switch v.Kind {
	case Rating:
		return fmt.Sprintf("rating %d", v.Level)
	case Flag:
		return fmt.Sprintf("flag %d", v.Level)
	default:
		return "unset"
	}
}
