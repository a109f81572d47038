package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("attendance already recorded for this employee on this date")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
