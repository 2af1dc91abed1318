package doomsday

import (
	"fmt"

	"github.com/zapponejosh/whatday/internal/calendar"
)

const weekdayTable = "Get the weekday {0: Sunday, 1: Monday, 2: Tuesday, 3: Wednesday, 4: Thursday, 5: Friday, 6: Saturday}"

// Weekday names the weekday of day, given both drifts and the month's anchor.
//
// The anchor is first moved back in weeks until it is not after day, then
// forward until day lies within the six days after it. The gap to day plus
// the drift, mod 7, indexes the Sunday-first weekday table.
//
// day is not validated against the month: an impossible day such as 32
// still yields a weekday.
func Weekday(centuryDrift, decadeDrift int, anchor MonthDay, day int) (string, Path, error) {
	drift := floorMod(centuryDrift+decadeDrift, 7)
	path := Path{Int("Add the century and decade drifts, mod 7", drift)}

	weekday := anchor.Day
	path = append(path, Int("Take the doomsday", weekday))

	after := func(w int) bool { return w > day }
	path = append(path, Bool("Check if the months doomsday is after the day", after(weekday)))
	weekday, path, err := walk(path, weekday, -7, after,
		"Subtract 7", "Check if the result is after the day")
	if err != nil {
		return "", nil, fmt.Errorf("weekday for day %d: %w", day, err)
	}

	const weekBefore = "Check if the result is at least one week before the day"
	behind := func(w int) bool { return w+7 <= day }
	path = append(path, Bool(weekBefore, behind(weekday)))
	weekday, path, err = walk(path, weekday, 7, behind, "Add 7", weekBefore)
	if err != nil {
		return "", nil, fmt.Errorf("weekday for day %d: %w", day, err)
	}

	gap := day - weekday
	path = append(path, Int("Take the gap between the result and the day", gap))

	index := drift + gap
	path = append(path, Int("Add the drift to the gap", index))

	index = floorMod(index, 7)
	path = append(path, Int("Take the result mod 7", index))

	name := calendar.DayName(index)
	path = append(path, Text(weekdayTable, name))

	return name, path, nil
}
