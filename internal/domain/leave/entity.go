package leave

import (
	"time"
)

// Leave duration kinds
const (
	DurationFullDay = "fullday"
	DurationHalfDay = "halfday"
)

// Leave categories. Only paid leave participates in day-status
// classification; unpaid days surface as absences.
const (
	TypePaid   = "paid"
	TypeUnpaid = "unpaid"
)

// Leave approval statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Leave is one leave request covering an inclusive date range.
// FromDate and ToDate are "YYYY-MM-DD" calendar date strings.
type Leave struct {
	ID         string
	EmployeeID string
	CompanyID  string
	FromDate   string
	ToDate     string
	Duration   string
	Type       string
	Status     string
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for display
	EmployeeName *string
}
