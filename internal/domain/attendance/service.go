package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// AddAttendance records a manual attendance entry (HR/SuperAdmin),
	// computing lateness and overtime against the employee's schedule
	AddAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// UpdateAttendance edits an attendance record and recomputes its deltas
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance removes an attendance record
	DeleteAttendance(ctx context.Context, id string) error

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// GetDetails retrieves one employee's records over a range together
	// with the schedule boundaries used for the delta columns
	GetDetails(ctx context.Context, filter DetailsFilter) (DetailsResponse, error)

	// GetMonthlyStatus builds the calendar axis for the pay cycle containing
	// the anchor month and classifies every (employee, day) cell
	GetMonthlyStatus(ctx context.Context, filter MonthlyStatusFilter) (MonthlyStatusResponse, error)
}
