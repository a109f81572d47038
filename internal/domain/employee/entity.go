package employee

import (
	"time"
)

// Employee statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee master record. OfficeStartTime and OfficeEndTime are the
// per-employee schedule boundaries ("HH:MM") that lateness and overtime
// are measured against; the reconciliation engine reads them, never
// mutates them.
type Employee struct {
	ID              string
	CompanyID       string
	Name            string
	Email           string
	PhoneNumber     string
	Designation     string
	DateOfJoining   string
	OfficeStartTime string
	OfficeEndTime   string
	Status          string

	// Resignation notice. NoticePeriod is the last working date
	// ("YYYY-MM-DD"), empty when no notice has been served.
	NoticePeriod       string
	NoticePeriodRemark string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for display
	CompanyName *string
}
