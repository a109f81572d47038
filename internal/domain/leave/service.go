package leave

import (
	"context"
)

// LeaveService defines business logic for leave operations
type LeaveService interface {
	// CreateLeave submits a leave request in pending status
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// ApproveLeave marks a pending leave request approved
	ApproveLeave(ctx context.Context, id string) (LeaveResponse, error)

	// RejectLeave marks a pending leave request rejected
	RejectLeave(ctx context.Context, id string) (LeaveResponse, error)

	// DeleteLeave removes a leave request
	DeleteLeave(ctx context.Context, id string) error

	// GetEmployeeLeaves lists one employee's leave requests
	GetEmployeeLeaves(ctx context.Context, employeeID string) (EmployeeLeavesResponse, error)

	// ListByRange lists leave requests intersecting a date range, grouped
	// per employee
	ListByRange(ctx context.Context, filter RangeFilter, companyID string) ([]EmployeeLeavesResponse, error)
}
