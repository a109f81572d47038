package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee master data.
type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, employee Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// Update updates an existing employee
	Update(ctx context.Context, employee Employee) error

	// List retrieves employees, optionally narrowed to one company
	// (empty companyID means all)
	List(ctx context.Context, companyID string) ([]Employee, error)
}
