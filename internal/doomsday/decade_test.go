package doomsday

import (
	"slices"
	"testing"
)

func TestDecadeDrift(t *testing.T) {
	tests := []struct {
		year      int
		wantDrift int
		wantPath  []string
	}{
		{2023, 7, []string{"23", "true", "34", "17", "true", "28", "0", "7"}},
		{1999, 4, []string{"99", "true", "110", "55", "true", "66", "3", "4"}},
		{2024, 2, []string{"24", "false", "24", "12", "false", "12", "5", "2"}},
		{1966, 5, []string{"66", "false", "66", "33", "true", "44", "2", "5"}},
		{-1, 4, []string{"99", "true", "110", "55", "true", "66", "3", "4"}},
	}

	for _, tt := range tests {
		drift, path := DecadeDrift(tt.year)
		if got := values(path); !slices.Equal(got, tt.wantPath) {
			t.Errorf("DecadeDrift(%d) path = %v, want %v", tt.year, got, tt.wantPath)
			continue
		}
		if drift != tt.wantDrift {
			t.Errorf("DecadeDrift(%d) = %d, want %d", tt.year, drift, tt.wantDrift)
		}
	}
}

// The final step is 7 - (x mod 7), so a remainder of 0 reports 7, not 0.
// Weekday reduces the sum of drifts mod 7 afterwards.
func TestDecadeDrift_ZeroRemainderIsSeven(t *testing.T) {
	for _, year := range []int{2000, 1900, 2023, 2028} {
		drift, path := DecadeDrift(year)
		if drift != 7 {
			t.Errorf("DecadeDrift(%d) = %d, want 7", year, drift)
		}
		if len(path) != 8 {
			t.Errorf("DecadeDrift(%d) recorded %d steps, want 8", year, len(path))
		}
	}
}

func TestDecadeDrift_Range(t *testing.T) {
	for year := -400; year <= 2400; year++ {
		drift, _ := DecadeDrift(year)
		if drift < 1 || drift > 7 {
			t.Fatalf("DecadeDrift(%d) = %d, want 1..7", year, drift)
		}
	}
}
