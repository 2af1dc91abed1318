package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/zapponejosh/whatday/internal/doomsday"
)

// leapDay is the fixed "today" used by these tests.
var leapDay = time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	cmd := NewRootCmd(func() time.Time { return leapDay })
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return lines[len(lines)-1]
}

func TestRoot_Dates(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"positional", []string{"2023", "12", "25"}, "2023-12-25 is a Monday"},
		{"long flags", []string{"--year", "1900", "--month", "3", "--day", "1"}, "1900-3-1 is a Thursday"},
		{"short flags", []string{"-y", "2000", "-m", "1", "-d", "1"}, "2000-1-1 is a Saturday"},
		{"positional wins over flag", []string{"2000", "-y", "1999", "-m", "1", "-d", "1"}, "2000-1-1 is a Saturday"},
		{"mixed positional and flags", []string{"1969", "-d", "20", "7"}, "1969-7-20 is a Sunday"},
		{"defaults to today", nil, "2024-2-29 is a Thursday"},
		{"partial date uses today", []string{"2023"}, "2023-2-29 is a Wednesday"},
		{"negative year after separator", []string{"--", "-1", "1", "1"}, "-1-1-1 is a Friday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute(%v) error = %v", tt.args, err)
			}
			if got := lastLine(out); got != tt.want {
				t.Errorf("summary = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoot_PrintsEveryStep(t *testing.T) {
	out, err := run(t, "2023", "12", "25")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	_, path, _ := doomsday.CalculateWeekday(2023, 12, 25)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(path)+1 {
		t.Fatalf("got %d lines, want %d", len(lines), len(path)+1)
	}
	for i, s := range path {
		if lines[i] != s.Explanation+": "+s.Value.String() {
			t.Errorf("line %d = %q, want %q", i, lines[i], s.String())
		}
	}
}

func TestRoot_JSONFormat(t *testing.T) {
	out, err := run(t, "2000", "1", "1", "--format", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var doc struct {
		Date    string `json:"date"`
		Weekday string `json:"weekday"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if doc.Date != "2000-1-1" || doc.Weekday != "Saturday" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestRoot_FormatFromEnv(t *testing.T) {
	t.Setenv("WHATDAY_FORMAT", "yaml")

	out, err := run(t, "2000", "1", "1")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "weekday: Saturday") {
		t.Errorf("output is not YAML: %s", out)
	}
}

func TestRoot_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unsupported month", []string{"2023", "13", "1"}, "unsupported month"},
		{"not an integer", []string{"twenty"}, `invalid year "twenty"`},
		{"too many arguments", []string{"2023", "1", "1", "1"}, "accepts at most 3 arg"},
		{"strict rejects impossible day", []string{"2023", "2", "29", "--strict"}, "2023-2-29 is not a calendar date"},
		{"strict rejects month", []string{"2023", "0", "1", "--strict"}, "not a calendar date"},
		{"unknown format", []string{"2023", "1", "1", "-f", "xml"}, "format must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatalf("Execute(%v) expected error", tt.args)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestVerifyCmd(t *testing.T) {
	for _, name := range []string{"zeller", "time", "sqlite"} {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, "verify", "--oracle", name, "--samples", "300", "--seed", "9")
			if err != nil {
				t.Fatalf("verify error = %v\n%s", err, out)
			}
			want := "Checked 300 dates between 1 and 9999 against " + name + ": 0 mismatches"
			if got := lastLine(out); got != want {
				t.Errorf("summary = %q, want %q", got, want)
			}
		})
	}
}

func TestVerifyCmd_UnknownOracle(t *testing.T) {
	if _, err := run(t, "verify", "--oracle", "abacus"); err == nil {
		t.Error("verify --oracle abacus expected error")
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "whatday v"+Version) {
		t.Errorf("version output = %q", out)
	}
}
