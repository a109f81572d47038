package attendance

import (
	"time"
)

// Attendance is one clock-in/clock-out record for an employee on one
// calendar date. Date is a "YYYY-MM-DD" calendar date string, arrival and
// leave times are "HH:MM" time-of-day strings; an empty LeaveTime means
// the departure punch was never recorded.
type Attendance struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	Date            string
	ArrivalTime     string
	LeaveTime       string
	LateMinutes     *int
	OvertimeMinutes *int
	TotalMinutes    int
	Tasks           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for display
	EmployeeName        *string
	EmployeeDesignation *string
}
