// Package doomsday computes the day of the week with the Doomsday method and
// records every intermediate step of the calculation.
//
// The calculation runs in four stages, each returning its own Path:
//
//  1. CenturyDrift: the doomsday of the century, from a 400-year table
//  2. DecadeDrift: the offset of the two-digit year (the odd+11 rule)
//  3. Anchor: the memorable date in the target month that falls on doomsday
//  4. Weekday: walks from the anchor to the target day and names the weekday
//
// CalculateWeekday runs all four and concatenates their paths. Every
// function is pure; the lookup tables are never written after init.
package doomsday

import (
	"fmt"
	"strconv"
)

// Kind identifies which case of Value a step carries.
type Kind string

// Value kinds.
const (
	KindInt  Kind = "int"
	KindBool Kind = "bool"
	KindPair Kind = "pair"
	KindText Kind = "text"
)

// Value is the result recorded by a Step. It is a closed set:
// IntValue, BoolValue, PairValue and TextValue.
type Value interface {
	Kind() Kind
	String() string
	value()
}

// IntValue is an integer intermediate result.
type IntValue int

// BoolValue is the outcome of a check.
type BoolValue bool

// PairValue is a month/day pair.
type PairValue MonthDay

// TextValue is a textual result such as a weekday name.
type TextValue string

func (IntValue) Kind() Kind  { return KindInt }
func (BoolValue) Kind() Kind { return KindBool }
func (PairValue) Kind() Kind { return KindPair }
func (TextValue) Kind() Kind { return KindText }

func (v IntValue) String() string  { return strconv.Itoa(int(v)) }
func (v BoolValue) String() string { return strconv.FormatBool(bool(v)) }
func (v PairValue) String() string { return MonthDay(v).String() }
func (v TextValue) String() string { return string(v) }

func (IntValue) value()  {}
func (BoolValue) value() {}
func (PairValue) value() {}
func (TextValue) value() {}

// MonthDay is a month (1..12) and a day of that month.
type MonthDay struct {
	Month int
	Day   int
}

// String formats the pair as "(month, day)".
func (md MonthDay) String() string {
	return fmt.Sprintf("(%d, %d)", md.Month, md.Day)
}

// Step is one explained unit of the calculation.
type Step struct {
	Explanation string
	Value       Value
}

// String formats the step as "explanation: value".
func (s Step) String() string {
	return s.Explanation + ": " + s.Value.String()
}

// Path is the ordered list of steps of a calculation.
type Path []Step

// Concat joins paths in order into a new Path.
func Concat(paths ...Path) Path {
	n := 0
	for _, p := range paths {
		n += len(p)
	}
	out := make(Path, 0, n)
	for _, p := range paths {
		out = append(out, p...)
	}
	return out
}

// Int returns a step recording an integer.
func Int(explanation string, v int) Step {
	return Step{Explanation: explanation, Value: IntValue(v)}
}

// Bool returns a step recording a check.
func Bool(explanation string, v bool) Step {
	return Step{Explanation: explanation, Value: BoolValue(v)}
}

// Pair returns a step recording a month/day pair.
func Pair(explanation string, v MonthDay) Step {
	return Step{Explanation: explanation, Value: PairValue(v)}
}

// Text returns a step recording text.
func Text(explanation, v string) Step {
	return Step{Explanation: explanation, Value: TextValue(v)}
}
