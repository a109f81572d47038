package attendance

import (
	"time"

	"github.com/hrmflow/hrm-backend-go/internal/domain/attendance"
	"github.com/hrmflow/hrm-backend-go/internal/domain/holiday"
	"github.com/hrmflow/hrm-backend-go/internal/domain/leave"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/datetime"
)

// DayStatus classifies one (employee, day) cell of the monthly matrix.
type DayStatus string

const (
	StatusPresent          DayStatus = "present"
	StatusAbsent           DayStatus = "absent"
	StatusOffday           DayStatus = "offday"
	StatusPaidLeave        DayStatus = "paid_leave"
	StatusOffdayAttendance DayStatus = "offday_attendance"
)

// Code returns the short matrix label: P, A, O, L or OA.
func (s DayStatus) Code() string {
	switch s {
	case StatusPresent:
		return "P"
	case StatusOffday:
		return "O"
	case StatusPaidLeave:
		return "L"
	case StatusOffdayAttendance:
		return "OA"
	default:
		return "A"
	}
}

// BoundaryKind says which schedule boundary a time delta is measured
// against: the scheduled arrival or the scheduled departure.
type BoundaryKind string

const (
	BoundaryArrival   BoundaryKind = "arrival"
	BoundaryDeparture BoundaryKind = "departure"
)

// ComputeDelta returns the signed minute difference between an actual
// punch time and a scheduled boundary time. applicable is false when the
// punch is absent or either time is unparseable; a zero delta means
// exactly on time and is distinct from not-applicable.
//
// For arrivals a positive delta is lateness, negative is an early
// arrival. For departures a positive delta is overtime, negative an
// early departure. The arithmetic is the same for both kinds; the kind
// records which boundary the scheduled time is.
func ComputeDelta(actual *string, scheduled string, kind BoundaryKind) (minutes int, applicable bool) {
	if actual == nil || *actual == "" {
		return 0, false
	}

	actualMinutes, ok := datetime.ParseClock(*actual)
	if !ok {
		return 0, false
	}

	scheduledMinutes, ok := datetime.ParseClock(scheduled)
	if !ok {
		return 0, false
	}

	return actualMinutes - scheduledMinutes, true
}

// ClassifyDay decides the status of one employee on one calendar date.
// The checks form an ordered chain and the first match wins:
//
//  1. an attendance record exists: OffdayAttendance when the date is also
//     a holiday (worked on a day off), Present otherwise;
//  2. the date is a holiday: Offday;
//  3. an approved paid leave interval covers the date: PaidLeave;
//  4. otherwise: Absent.
//
// An actual punch always dominates, and holidays are checked before leave
// so a holiday inside a leave window is not billed against leave balance.
// Unpaid or unapproved leave falls through to Absent. Records with
// malformed dates are excluded from matching; the function never fails.
func ClassifyDay(
	employeeID string,
	date string,
	attendances []attendance.Attendance,
	holidays []holiday.Holiday,
	leaves []leave.Leave,
) DayStatus {
	day, err := datetime.ParseDate(date)
	if err != nil {
		return StatusAbsent
	}

	attended := hasAttendance(employeeID, date, attendances)
	offday := isHoliday(date, holidays)

	switch {
	case attended && offday:
		return StatusOffdayAttendance
	case attended:
		return StatusPresent
	case offday:
		return StatusOffday
	case onPaidLeave(employeeID, day, leaves):
		return StatusPaidLeave
	default:
		return StatusAbsent
	}
}

func hasAttendance(employeeID, date string, attendances []attendance.Attendance) bool {
	for _, att := range attendances {
		if att.EmployeeID != employeeID {
			continue
		}
		if _, err := datetime.ParseDate(att.Date); err != nil {
			continue
		}
		if att.Date == date {
			return true
		}
	}
	return false
}

func isHoliday(date string, holidays []holiday.Holiday) bool {
	for _, h := range holidays {
		if _, err := datetime.ParseDate(h.Date); err != nil {
			continue
		}
		if h.Date == date {
			return true
		}
	}
	return false
}

func onPaidLeave(employeeID string, day time.Time, leaves []leave.Leave) bool {
	for _, l := range leaves {
		if l.EmployeeID != employeeID || l.Type != leave.TypePaid || l.Status != leave.StatusApproved {
			continue
		}
		from, err := datetime.ParseDate(l.FromDate)
		if err != nil {
			continue
		}
		to, err := datetime.ParseDate(l.ToDate)
		if err != nil {
			continue
		}
		if !day.Before(from) && !day.After(to) {
			return true
		}
	}
	return false
}
