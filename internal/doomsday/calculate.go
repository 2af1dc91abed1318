package doomsday

// CalculateWeekday returns the weekday name of year-month-day and the full
// calculation path: century drift, decade drift, anchor, then weekday.
func CalculateWeekday(year, month, day int) (string, Path, error) {
	centuryDrift, centuryPath, err := CenturyDrift(year)
	if err != nil {
		return "", nil, err
	}

	decadeDrift, decadePath := DecadeDrift(year)

	anchor, anchorPath, err := Anchor(year, month, day)
	if err != nil {
		return "", nil, err
	}

	weekday, weekdayPath, err := Weekday(centuryDrift, decadeDrift, anchor, day)
	if err != nil {
		return "", nil, err
	}

	return weekday, Concat(centuryPath, decadePath, anchorPath, weekdayPath), nil
}
