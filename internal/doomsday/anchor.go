package doomsday

import (
	"fmt"

	"github.com/zapponejosh/whatday/internal/calendar"
)

// oddMonthAnchors holds the doomsday of March through November's odd months.
// March 0 is the last day of February.
var oddMonthAnchors = map[int]int{3: 0, 5: 9, 7: 11, 9: 5, 11: 7}

var oddMonthMnemonics = map[int]string{
	3:  "last day of February",
	5:  "9-5 at 7-11",
	7:  "9-5 at 7-11",
	9:  "9-5 at 7-11",
	11: "9-5 at 7-11",
}

// Anchor returns the date in month that always falls on the year's doomsday.
//
// January and February depend on whether year is a leap year; the leap year
// check is only recorded for those two months. day is recorded but not used.
func Anchor(year, month, day int) (MonthDay, Path, error) {
	if month < 1 || month > 12 {
		return MonthDay{}, nil, fmt.Errorf("%w: %d not in {1..12}", ErrUnsupportedMonth, month)
	}

	path := Path{Pair("Take the month and day of the date", MonthDay{Month: month, Day: day})}

	leap := calendar.IsLeapYear(year)
	if month <= 2 {
		path = append(path, Bool("Check if the year is a leap year, if the month is January or February", leap))
	}

	var (
		anchor      MonthDay
		explanation string
	)
	switch {
	case month == 1 && !leap:
		anchor = MonthDay{Month: 1, Day: 3}
		explanation = "This months doomsday is January 3rd. Mnemonic: 3 years out of 4 it is January 3rd"
	case month == 1:
		anchor = MonthDay{Month: 1, Day: 4}
		explanation = "This months doomsday is January 4th. Mnemonic: in the 4th year it is January 4th"
	case month == 2:
		anchor = MonthDay{Month: 2, Day: calendar.DaysInMonth(year, 2)}
		explanation = fmt.Sprintf("This months doomsday is February %s. Mnemonic: the last day of February",
			calendar.Ordinal(anchor.Day))
	case month%2 == 0:
		anchor = MonthDay{Month: month, Day: month}
		explanation = fmt.Sprintf("This months doomsday is the %s of the month. Mnemonic: %d/%d",
			calendar.Ordinal(month), month, month)
	default:
		anchor = MonthDay{Month: month, Day: oddMonthAnchors[month]}
		explanation = fmt.Sprintf("This months doomsday is the %s of %s. Mnemonic: %s",
			calendar.Ordinal(anchor.Day), calendar.MonthName(month), oddMonthMnemonics[month])
	}
	path = append(path, Pair(explanation, anchor))

	return anchor, path, nil
}
