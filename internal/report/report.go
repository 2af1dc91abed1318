// Package report renders a weekday calculation for people and programs.
//
// The text format prints one "explanation: value" line per step followed by
// the summary line "year-month-day is a Weekday". JSON and YAML carry the
// same data as a Document.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/whatday/internal/config"
	"github.com/zapponejosh/whatday/internal/doomsday"
)

// Document is the serialisable form of one calculation.
type Document struct {
	Date    string `json:"date" yaml:"date"`
	Year    int    `json:"year" yaml:"year"`
	Month   int    `json:"month" yaml:"month"`
	Day     int    `json:"day" yaml:"day"`
	Weekday string `json:"weekday" yaml:"weekday"`
	Path    []Step `json:"path" yaml:"path"`
}

// Step is the serialisable form of doomsday.Step.
type Step struct {
	Explanation string        `json:"explanation" yaml:"explanation"`
	Kind        doomsday.Kind `json:"kind" yaml:"kind"`
	Value       any           `json:"value" yaml:"value"`
}

// MonthDay is the serialisable form of a pair value.
type MonthDay struct {
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

// NewDocument builds a Document from a calculation result.
func NewDocument(year, month, day int, weekday string, path doomsday.Path) Document {
	steps := make([]Step, len(path))
	for i, s := range path {
		steps[i] = Step{
			Explanation: s.Explanation,
			Kind:        s.Value.Kind(),
			Value:       plain(s.Value),
		}
	}

	return Document{
		Date:    DateLabel(year, month, day),
		Year:    year,
		Month:   month,
		Day:     day,
		Weekday: weekday,
		Path:    steps,
	}
}

// plain unwraps a step value into a type encoders understand.
func plain(v doomsday.Value) any {
	switch v := v.(type) {
	case doomsday.IntValue:
		return int(v)
	case doomsday.BoolValue:
		return bool(v)
	case doomsday.PairValue:
		return MonthDay{Month: v.Month, Day: v.Day}
	case doomsday.TextValue:
		return string(v)
	}
	return nil
}

// DateLabel formats a date the way the summary line does: no zero padding,
// so that impossible dates such as 2023-1-32 read back as entered.
func DateLabel(year, month, day int) string {
	return fmt.Sprintf("%d-%d-%d", year, month, day)
}

// Summary returns the closing line of the text report.
func Summary(year, month, day int, weekday string) string {
	return fmt.Sprintf("%s is a %s", DateLabel(year, month, day), weekday)
}

// WriteText prints each step and the summary line. The summary is bold when
// w is a terminal; otherwise the output is plain text.
func WriteText(w io.Writer, year, month, day int, weekday string, path doomsday.Path) error {
	for _, s := range path {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}

	summary := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	_, err := fmt.Fprintln(w, summary.Render(Summary(year, month, day, weekday)))
	return err
}

// WriteJSON writes the Document as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteYAML writes the Document as YAML.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// Write renders a calculation in the given format: text, json or yaml.
func Write(w io.Writer, format string, year, month, day int, weekday string, path doomsday.Path) error {
	switch format {
	case config.FormatText:
		return WriteText(w, year, month, day, weekday, path)
	case config.FormatJSON:
		return WriteJSON(w, NewDocument(year, month, day, weekday, path))
	case config.FormatYAML:
		return WriteYAML(w, NewDocument(year, month, day, weekday, path))
	}
	return config.ValidateFormat(format)
}
