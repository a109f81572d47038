package leave

import (
	"context"
)

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	// Create creates a new leave request
	Create(ctx context.Context, leave Leave) (Leave, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (Leave, error)

	// Update updates status and mutable fields of a leave request
	Update(ctx context.Context, leave Leave) error

	// Delete removes a leave request
	Delete(ctx context.Context, id string) error

	// ListByEmployee retrieves one employee's leave requests
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)

	// ListByRange retrieves leave requests intersecting an inclusive date
	// range, optionally narrowed to one company (empty companyID means all)
	ListByRange(ctx context.Context, from, to string, companyID string) ([]Leave, error)
}
