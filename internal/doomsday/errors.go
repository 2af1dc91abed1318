package doomsday

import "errors"

// ErrDomainRange is returned when a normalised value falls outside a lookup
// table, or when normalising it would need more than MaxNormalizationSteps
// shifts.
var ErrDomainRange = errors.New("value outside the doomsday lookup range")

// ErrUnsupportedMonth is returned for months outside 1..12.
var ErrUnsupportedMonth = errors.New("unsupported month")

// IsDomainRange checks if an error is a domain range error.
func IsDomainRange(err error) bool {
	return errors.Is(err, ErrDomainRange)
}

// IsUnsupportedMonth checks if an error is an unsupported month error.
func IsUnsupportedMonth(err error) bool {
	return errors.Is(err, ErrUnsupportedMonth)
}
