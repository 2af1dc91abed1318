package doomsday

import "fmt"

// MaxNormalizationSteps bounds every normalisation walk: the ±400 year
// century shifts and the ±7 day shifts towards the target day.
const MaxNormalizationSteps = 2500

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a mod b with the sign of b.
func floorMod(a, b int) int {
	return ((a % b) + b) % b
}

// walk adds delta to v while cond holds. Each shift records the new value
// under shiftMsg followed by the re-check under checkMsg.
func walk(path Path, v, delta int, cond func(int) bool, shiftMsg, checkMsg string) (int, Path, error) {
	for n := 0; cond(v); n++ {
		if n == MaxNormalizationSteps {
			return v, path, fmt.Errorf("%w: %q did not settle within %d steps", ErrDomainRange, shiftMsg, MaxNormalizationSteps)
		}
		v += delta
		path = append(path, Int(shiftMsg, v))
		path = append(path, Bool(checkMsg, cond(v)))
	}
	return v, path, nil
}
