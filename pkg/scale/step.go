package scale

// Step advances a stored scale value one position within its legal range.
//
// The second argument is the requested direction; the cycle runs one way
// only and the result does not depend on it. From 0 the result is always 1,
// entering the rating scale. From a rating or flag the magnitude grows by
// one, staying on the same side of zero; stepping past the last symbol of
// that side wraps to 0.
// The result is therefore always within [-flagCount, ratingCount].
func Step(current, _, ratingCount, flagCount int) int {
	v := FromInt(current)
	if !v.IsSet() {
		return 1
	}

	max := ratingCount
	if v.Kind == Flag {
		max = flagCount
	}
	next := v.Level + 1
	if next > max {
		return 0
	}
	return Value{Kind: v.Kind, Level: next}.Int()
}

// StepFlag moves a value along the flag side of the scale. Unset values and
// ratings become flag 1; flags advance as Step does, wrapping to 0.
func StepFlag(current, flagCount int) int {
	if current >= 0 {
		if flagCount < 1 {
			return 0
		}
		return -1
	}
	return Step(current, -1, 0, flagCount)
}
