package attendance

import (
	"time"

	"github.com/hrmflow/hrm-backend-go/internal/pkg/datetime"
)

// payCycleStartDay is the day-of-month the employer's salary cycle begins
// on. The "month" everywhere in attendance reporting is this cycle, not
// the calendar month; changing the convention here is enough, the
// classifier and delta calculator never reference it.
const payCycleStartDay = 22

// CalendarCell is one labeled day position in the monthly grid.
type CalendarCell struct {
	Day     string // two-digit day-of-month, e.g. "05"
	Month   string // two-digit month, e.g. "03"
	Weekday string // three-letter weekday name, e.g. "Tue"
}

// PayCycleRange returns the salary-cycle window containing ref: the 22nd
// of the month before ref through the 21st of ref's month, both inclusive.
// time.Date normalizes month zero to the previous December, so a January
// ref resolves to the prior year's December 22nd.
func PayCycleRange(ref time.Time) (from, to time.Time) {
	from = time.Date(ref.Year(), ref.Month()-1, payCycleStartDay, 0, 0, 0, 0, time.UTC)
	to = time.Date(ref.Year(), ref.Month(), payCycleStartDay-1, 0, 0, 0, 0, time.UTC)
	return from, to
}

// BuildCalendar produces one cell per date in the pay cycle containing
// ref, in order. The length always equals the inclusive day count of the
// window (29-31 depending on the months crossed).
func BuildCalendar(ref time.Time) []CalendarCell {
	from, to := PayCycleRange(ref)

	cells := make([]CalendarCell, 0, datetime.DayDifference(from, to, true))
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		cells = append(cells, CalendarCell{
			Day:     d.Format("02"),
			Month:   d.Format("01"),
			Weekday: d.Format("Mon"),
		})
	}
	return cells
}
