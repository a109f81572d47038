package company

import (
	"time"
)

// Company is the organizational scope for employees and holidays.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
