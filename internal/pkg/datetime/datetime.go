package datetime

import (
	"time"
)

// DateLayout is the wire format for calendar dates across the API.
// Dates are calendar dates, not instants: parsing and formatting never
// shift across timezones.
const DateLayout = "2006-01-02"

// ClockLayout is the wire format for time-of-day values ("HH:MM").
const ClockLayout = "15:04"

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// FormatDate formats a date as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a "YYYY-MM-DD" string into a calendar date in UTC.
// Round-trips exactly with FormatDate for any valid date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DayDifference returns the signed whole-day count from a to b.
// With inclusive set, both endpoints count, so the magnitude grows by one;
// used for "days remaining" displays where the start day itself counts.
func DayDifference(a, b time.Time, inclusive bool) int {
	aDay := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDay := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	days := int(bDay.Sub(aDay).Hours() / 24)
	if inclusive {
		switch {
		case days >= 0:
			days++
		default:
			days--
		}
	}
	return days
}

// ParseClock parses an "HH:MM" time-of-day string into minutes since
// midnight. ok is false for empty or malformed input.
func ParseClock(s string) (minutes int, ok bool) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// FormatClock12h renders an "HH:MM" time-of-day in the 12-hour convention,
// e.g. "17:30" -> "5:30 PM". Empty or malformed input yields "".
func FormatClock12h(s string) string {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return ""
	}
	return t.Format("3:04 PM")
}
