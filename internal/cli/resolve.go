package cli

import (
	"fmt"
	"strconv"
	"time"
)

// Resolve picks a date field: the positional value if given, else the flag
// value if given, else fallback. Zero is a legitimate value, so absence is
// expressed with nil rather than with zero.
func Resolve(positional, flag *int, fallback int) int {
	if positional != nil {
		return *positional
	}
	if flag != nil {
		return *flag
	}
	return fallback
}

// dateFields holds year, month and day in that order.
type dateFields [3]int

// resolveDate applies Resolve to each field against today's date.
func resolveDate(positional, flags [3]*int, today time.Time) dateFields {
	fallback := dateFields{today.Year(), int(today.Month()), today.Day()}

	var out dateFields
	for i := range out {
		out[i] = Resolve(positional[i], flags[i], fallback[i])
	}
	return out
}

// parsePositional converts up to three positional arguments to ints.
// Missing arguments stay nil.
func parsePositional(args []string) ([3]*int, error) {
	var out [3]*int
	names := [3]string{"year", "month", "day"}

	for i, arg := range args {
		if i >= len(out) {
			return out, fmt.Errorf("too many arguments: %d", len(args))
		}
		v, err := strconv.Atoi(arg)
		if err != nil {
			return out, fmt.Errorf("invalid %s %q: must be an integer", names[i], arg)
		}
		out[i] = &v
	}
	return out, nil
}
