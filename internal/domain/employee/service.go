package employee

import (
	"context"
)

// EmployeeService defines business logic for employee master data
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	ListNotices(ctx context.Context, companyID string) ([]NoticeResponse, error)
}
