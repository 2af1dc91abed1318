package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/whatday/internal/doomsday"
)

func calculate(t *testing.T, year, month, day int) (string, doomsday.Path) {
	t.Helper()
	weekday, path, err := doomsday.CalculateWeekday(year, month, day)
	if err != nil {
		t.Fatalf("CalculateWeekday(%d, %d, %d) error = %v", year, month, day, err)
	}
	return weekday, path
}

func TestWriteText(t *testing.T) {
	weekday, path := calculate(t, 2023, 12, 25)

	var buf bytes.Buffer
	if err := WriteText(&buf, 2023, 12, 25, weekday, path); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(path)+1 {
		t.Fatalf("got %d lines, want %d", len(lines), len(path)+1)
	}
	if lines[0] != "Take the century of the years date: 20" {
		t.Errorf("first line = %q", lines[0])
	}
	if want := "Take the month and day of the date: (12, 25)"; !strings.Contains(buf.String(), want+"\n") {
		t.Errorf("output missing %q", want)
	}
	if want := "Check if the decade is odd: true"; !strings.Contains(buf.String(), want+"\n") {
		t.Errorf("output missing %q", want)
	}
	if got, want := lines[len(lines)-1], "2023-12-25 is a Monday"; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestWriteText_UnpaddedDate(t *testing.T) {
	weekday, path := calculate(t, 2000, 1, 1)

	var buf bytes.Buffer
	if err := WriteText(&buf, 2000, 1, 1, weekday, path); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "2000-1-1 is a Saturday\n") {
		t.Errorf("output does not end with summary: %q", buf.String())
	}
}

func TestNewDocument(t *testing.T) {
	weekday, path := calculate(t, 2000, 1, 1)
	doc := NewDocument(2000, 1, 1, weekday, path)

	if doc.Date != "2000-1-1" || doc.Weekday != "Saturday" {
		t.Errorf("doc = %s %s, want 2000-1-1 Saturday", doc.Date, doc.Weekday)
	}
	if len(doc.Path) != len(path) {
		t.Fatalf("len(Path) = %d, want %d", len(doc.Path), len(path))
	}

	kinds := map[doomsday.Kind]bool{}
	for i, s := range doc.Path {
		kinds[s.Kind] = true
		switch s.Kind {
		case doomsday.KindInt:
			if _, ok := s.Value.(int); !ok {
				t.Errorf("Path[%d] kind int carries %T", i, s.Value)
			}
		case doomsday.KindBool:
			if _, ok := s.Value.(bool); !ok {
				t.Errorf("Path[%d] kind bool carries %T", i, s.Value)
			}
		case doomsday.KindPair:
			if _, ok := s.Value.(MonthDay); !ok {
				t.Errorf("Path[%d] kind pair carries %T", i, s.Value)
			}
		case doomsday.KindText:
			if _, ok := s.Value.(string); !ok {
				t.Errorf("Path[%d] kind text carries %T", i, s.Value)
			}
		}
	}
	if len(kinds) != 4 {
		t.Errorf("path used kinds %v, want all four", kinds)
	}
}

func TestWrite_JSON(t *testing.T) {
	weekday, path := calculate(t, 2024, 1, 15)

	var buf bytes.Buffer
	if err := Write(&buf, "json", 2024, 1, 15, weekday, path); err != nil {
		t.Fatalf("Write(json) error = %v", err)
	}

	var doc struct {
		Weekday string `json:"weekday"`
		Path    []struct {
			Explanation string          `json:"explanation"`
			Kind        string          `json:"kind"`
			Value       json.RawMessage `json:"value"`
		} `json:"path"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.Weekday != "Monday" {
		t.Errorf("weekday = %q, want Monday", doc.Weekday)
	}

	var anchor *MonthDay
	for _, s := range doc.Path {
		if s.Kind == "pair" && strings.HasPrefix(s.Explanation, "This months doomsday") {
			anchor = &MonthDay{}
			if err := json.Unmarshal(s.Value, anchor); err != nil {
				t.Fatalf("pair value: %v", err)
			}
		}
	}
	if anchor == nil || *anchor != (MonthDay{Month: 1, Day: 4}) {
		t.Errorf("anchor = %v, want January 4th for leap year 2024", anchor)
	}
}

func TestWrite_YAML(t *testing.T) {
	weekday, path := calculate(t, 1900, 3, 1)

	var buf bytes.Buffer
	if err := Write(&buf, "yaml", 1900, 3, 1, weekday, path); err != nil {
		t.Fatalf("Write(yaml) error = %v", err)
	}

	var doc Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if doc.Weekday != "Thursday" || doc.Year != 1900 || doc.Month != 3 || doc.Day != 1 {
		t.Errorf("doc = %+v", doc)
	}
	if len(doc.Path) != len(path) {
		t.Errorf("len(Path) = %d, want %d", len(doc.Path), len(path))
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	weekday, path := calculate(t, 2000, 1, 1)
	if err := Write(&bytes.Buffer{}, "xml", 2000, 1, 1, weekday, path); err == nil {
		t.Error("Write(xml) expected error")
	}
}
