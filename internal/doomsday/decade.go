package doomsday

// DecadeDrift returns how many days the doomsday of year is ahead of the
// doomsday of its century, using the odd+11 rule on the two-digit year.
//
// The result is in 1..7: a remainder of 0 yields 7, not 0. Weekday reduces
// the combined drift mod 7, so both spellings give the same weekday.
func DecadeDrift(year int) (int, Path) {
	drift := floorMod(year, 100)
	path := Path{Int("Take the decade of the years date", drift)}

	odd := drift%2 != 0
	path = append(path, Bool("Check if the decade is odd", odd))
	if odd {
		drift += 11
	}
	path = append(path, Int("If yes add 11", drift))

	drift /= 2
	path = append(path, Int("Divide by 2", drift))

	odd = drift%2 != 0
	path = append(path, Bool("Check if result is odd", odd))
	if odd {
		drift += 11
	}
	path = append(path, Int("If yes add 11", drift))

	drift %= 7
	path = append(path, Int("Take result mod 7", drift))

	drift = 7 - drift
	path = append(path, Int("Subtract result from 7", drift))

	return drift, path
}
