package date

import (
	"testing"
	"time"
)

func fixNow(t *testing.T, on time.Time) {
	t.Helper()
	old := now
	now = func() time.Time { return on }
	t.Cleanup(func() { now = old })
}

func TestResolve(t *testing.T) {
	fixNow(t, time.Date(2025, time.March, 7, 15, 4, 0, 0, time.UTC))

	tests := []struct {
		input string
		want  string
	}{
		{"0", "07-03-2025"},
		{"", "07-03-2025"},
		{"01-01-2024", "01-01-2024"},
		{"yesterday", "yesterday"}, // kept as entered
	}
	for _, tt := range tests {
		if got := Resolve(tt.input); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input     string
		want      time.Time
		canonical bool
		wantErr   bool
	}{
		{"07-03-2025", time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC), true, false},
		{"7-3-2025", time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC), false, false},
		{"2025-03-07", time.Time{}, false, true},
		{"31-02-2025", time.Time{}, false, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if c := Canonical(tt.input); c != tt.canonical {
			t.Errorf("Canonical(%q) = %v, want %v", tt.input, c, tt.canonical)
		}
	}
}
