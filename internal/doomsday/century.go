package doomsday

import "fmt"

// centuryDrifts maps the normalised century to the doomsday of its first year.
// The table repeats every 400 years.
var centuryDrifts = map[int]int{18: 5, 19: 3, 20: 2, 21: 0}

// CenturyDrift returns the weekday offset contributed by the century of year,
// one of 0, 2, 3 or 5.
//
// The century is moved into 18..21 in whole 400-year blocks before the lookup.
// Every shift and every range check is recorded.
func CenturyDrift(year int) (int, Path, error) {
	century := floorDiv(year, 100)
	path := Path{Int("Take the century of the years date", century)}

	before18 := func(c int) bool { return c < 18 }
	path = append(path, Bool("Check if the century is before 18", before18(century)))
	century, path, err := walk(path, century, 4, before18,
		"Add 400 years", "Check if the result is before 18")
	if err != nil {
		return 0, nil, fmt.Errorf("century drift for year %d: %w", year, err)
	}

	after21 := func(c int) bool { return c > 21 }
	path = append(path, Bool("Check if the century is after 21", after21(century)))
	century, path, err = walk(path, century, -4, after21,
		"Subtract 400 years", "Check if the result is after 21")
	if err != nil {
		return 0, nil, fmt.Errorf("century drift for year %d: %w", year, err)
	}

	drift, ok := centuryDrifts[century]
	if !ok {
		return 0, nil, fmt.Errorf("%w: century %d not in {18..21}", ErrDomainRange, century)
	}
	path = append(path, Int("Get the results drift, {18: 5, 19: 3, 20: 2, 21: 0}", drift))

	return drift, path, nil
}
