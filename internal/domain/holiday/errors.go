package holiday

import "errors"

// Holiday domain errors
var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("date is already marked as a holiday")
)
