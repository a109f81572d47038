package holiday

import (
	"time"
)

// Holiday marks one calendar date as a non-working day for a company.
// At most one holiday per (date, company).
type Holiday struct {
	ID        string
	CompanyID string
	Date      string
	Name      *string
	CreatedAt time.Time
}
