package format

import (
	"testing"
	"time"
)

func TestPeriod(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		current bool
		want    string
	}{
		{"current role", start, time.Time{}, true, "Jan 2022 - Present"},
		{"finished role", start, end, false, "Jan 2022 - Jun 2023"},
		{"missing start", time.Time{}, end, false, "Jun 2023"},
		{"missing end", start, time.Time{}, false, "Jan 2022"},
		{"nothing known", time.Time{}, time.Time{}, false, ""},
	}
	for _, tc := range tests {
		if got := Period(tc.start, tc.end, tc.current); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestLabel(t *testing.T) {
	cases := map[string]string{
		"full_time":    "Full Time",
		"programming":  "Programming",
		"data-science": "Data Science",
		"  ":           "",
		"part__time":   "Part Time",
	}
	for in, want := range cases {
		if got := Label(in); got != want {
			t.Fatalf("Label(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestYear(t *testing.T) {
	if got := Year(2023); got != "2023" {
		t.Fatalf("expected 2023, got %q", got)
	}
	if got := Year(0); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
