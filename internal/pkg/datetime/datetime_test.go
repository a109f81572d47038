package datetime

import (
	"testing"
	"time"
)

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{2000, true},
		{2024, true},
		{1900, false},
		{2023, false},
		{2400, true},
		{2100, false},
	}
	for _, c := range cases {
		if got := IsLeapYear(c.year); got != c.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2023, time.January, 31},
		{2023, time.April, 30},
		{2023, time.June, 30},
		{2023, time.September, 30},
		{2023, time.November, 30},
		{2023, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestDateRoundTrip(t *testing.T) {
	dates := []string{"2024-01-01", "2024-02-29", "2024-12-31", "1999-06-15"}
	for _, s := range dates {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q) returned error: %v", s, err)
		}
		if got := FormatDate(d); got != s {
			t.Errorf("FormatDate(ParseDate(%q)) = %q", s, got)
		}
	}
}

func TestParseDateRejectsMalformed(t *testing.T) {
	malformed := []string{"", "2024-13-01", "2024-02-30", "01-01-2024", "2024/01/01", "yesterday"}
	for _, s := range malformed {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", s)
		}
	}
}

func TestDayDifference(t *testing.T) {
	d := func(s string) time.Time {
		t.Helper()
		parsed, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		return parsed
	}

	cases := []struct {
		a, b      string
		inclusive bool
		want      int
	}{
		{"2024-03-01", "2024-03-05", false, 4},
		{"2024-03-01", "2024-03-05", true, 5},
		{"2024-03-05", "2024-03-01", false, -4},
		{"2024-03-05", "2024-03-01", true, -5},
		{"2024-03-01", "2024-03-01", false, 0},
		{"2024-03-01", "2024-03-01", true, 1},
		// Leap day crossing.
		{"2024-02-28", "2024-03-01", false, 2},
		{"2023-02-28", "2023-03-01", false, 1},
		// Year boundary.
		{"2023-12-22", "2024-01-21", true, 31},
	}
	for _, c := range cases {
		if got := DayDifference(d(c.a), d(c.b), c.inclusive); got != c.want {
			t.Errorf("DayDifference(%s, %s, %v) = %d, want %d", c.a, c.b, c.inclusive, got, c.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"17:30", 1050, true},
		{"23:59", 1439, true},
		{"", 0, false},
		{"24:00", 0, false},
		{"9am", 0, false},
		{"09:60", 0, false},
	}
	for _, c := range cases {
		minutes, ok := ParseClock(c.input)
		if ok != c.ok || minutes != c.minutes {
			t.Errorf("ParseClock(%q) = (%d, %v), want (%d, %v)", c.input, minutes, ok, c.minutes, c.ok)
		}
	}
}

func TestFormatClock12h(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"09:00", "9:00 AM"},
		{"17:30", "5:30 PM"},
		{"00:05", "12:05 AM"},
		{"12:00", "12:00 PM"},
		{"", ""},
		{"not-a-time", ""},
	}
	for _, c := range cases {
		if got := FormatClock12h(c.input); got != c.want {
			t.Errorf("FormatClock12h(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
