// Package oracle provides independent day-of-week calculations used to
// cross-check the Doomsday result.
package oracle

import (
	"context"
	"time"
)

// Oracle returns the weekday of a date as 0 (Sunday) through 6 (Saturday).
type Oracle interface {
	Weekday(ctx context.Context, year, month, day int) (int, error)
}

// Func adapts a pure weekday function to the Oracle interface.
type Func func(year, month, day int) int

// Weekday calls f.
func (f Func) Weekday(_ context.Context, year, month, day int) (int, error) {
	return f(year, month, day), nil
}

// Zeller computes the weekday with Zeller's congruence for the Gregorian
// calendar. Valid for years >= 1.
func Zeller(year, month, day int) int {
	// January and February count as months 13 and 14 of the previous year.
	if month < 3 {
		month += 12
		year--
	}
	k := year % 100
	j := year / 100
	h := (day + (13*(month+1))/5 + k + k/4 + j/4 + 5*j) % 7

	// h is 0 for Saturday; shift so that Sunday is 0.
	return (h + 6) % 7
}

// StdTime uses time.Date, which follows the proleptic Gregorian calendar.
func StdTime(year, month, day int) int {
	return int(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday())
}
