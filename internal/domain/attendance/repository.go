package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
// Date parameters are "YYYY-MM-DD" strings; ranges are inclusive.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on a
	// specific date; nil when no record exists. Used to enforce the one
	// record per (employee, date) invariant.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// Delete removes an attendance record
	Delete(ctx context.Context, id string) error

	// ListByEmployee retrieves one employee's records within a date range
	ListByEmployee(ctx context.Context, employeeID string, from, to string) ([]Attendance, error)

	// ListByRange retrieves all records within a date range, optionally
	// narrowed to one company (empty companyID means all)
	ListByRange(ctx context.Context, from, to string, companyID string) ([]Attendance, error)
}
