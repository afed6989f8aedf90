package scale

import "testing"

func TestStepFromUnsetEntersRatings(t *testing.T) {
	for _, dir := range []int{1, -1} {
		for _, counts := range [][2]int{{0, 0}, {5, 9}, {10, 0}, {0, 3}} {
			if got := Step(0, dir, counts[0], counts[1]); got != 1 {
				t.Fatalf("Step(0, %d, %d, %d) = %d, want 1", dir, counts[0], counts[1], got)
			}
		}
	}
}

func TestStepRatingsWrapToUnset(t *testing.T) {
	const ratings = 5
	for start := 1; start <= ratings; start++ {
		v := start
		steps := ratings - start + 1
		for i := 0; i < steps; i++ {
			v = Step(v, 1, ratings, 9)
			if i < steps-1 && v <= 0 {
				t.Fatalf("start %d: left the rating scale early at step %d (%d)", start, i, v)
			}
		}
		if v != 0 {
			t.Fatalf("start %d: expected 0 after %d steps, got %d", start, steps, v)
		}
	}
}

func TestStepFlagsWrapToUnset(t *testing.T) {
	const flags = 4
	for start := 1; start <= flags; start++ {
		v := -start
		steps := flags - start + 1
		for i := 0; i < steps; i++ {
			v = Step(v, 1, 10, flags)
			if i < steps-1 && v >= 0 {
				t.Fatalf("start -%d: left the flag scale early at step %d (%d)", start, i, v)
			}
		}
		if v != 0 {
			t.Fatalf("start -%d: expected 0 after %d steps, got %d", start, steps, v)
		}
	}
}

func TestStepOutOfRangeValueClears(t *testing.T) {
	if got := Step(12, 1, 5, 9); got != 0 {
		t.Fatalf("expected out-of-range rating to clear, got %d", got)
	}
	if got := Step(-12, 1, 5, 9); got != 0 {
		t.Fatalf("expected out-of-range flag to clear, got %d", got)
	}
}

func TestFromIntRoundTrip(t *testing.T) {
	tests := []struct {
		in   int
		kind Kind
		lvl  int
	}{
		{0, Unset, 0},
		{3, Rating, 3},
		{-2, Flag, 2},
	}
	for _, tt := range tests {
		v := FromInt(tt.in)
		if v.Kind != tt.kind || v.Level != tt.lvl {
			t.Fatalf("FromInt(%d) = %+v", tt.in, v)
		}
		if v.Int() != tt.in {
			t.Fatalf("Int() = %d, want %d", v.Int(), tt.in)
		}
	}
	if NewFlag(0).IsSet() || NewRating(-1).IsSet() {
		t.Fatalf("non-positive levels must be unset")
	}
}

func TestStepFlag(t *testing.T) {
	tests := []struct {
		current, flags, want int
	}{
		{0, 9, -1},
		{4, 9, -1},
		{-1, 9, -2},
		{-9, 9, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := StepFlag(tt.current, tt.flags); got != tt.want {
			t.Fatalf("StepFlag(%d, %d) = %d, want %d", tt.current, tt.flags, got, tt.want)
		}
	}
}

func TestStepIgnoresDirection(t *testing.T) {
	for _, v := range []int{0, 1, 3, 5, -1, -4, -9} {
		if fwd, back := Step(v, 1, 5, 9), Step(v, -1, 5, 9); fwd != back {
			t.Fatalf("Step(%d) forward = %d, backward = %d", v, fwd, back)
		}
	}
}
