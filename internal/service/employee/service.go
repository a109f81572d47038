package employee

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/hrmflow/hrm-backend-go/internal/domain/company"
	"github.com/hrmflow/hrm-backend-go/internal/domain/employee"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/database"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/datetime"
	"github.com/hrmflow/hrm-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	company.CompanyRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		CompanyRepository:  companyRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, e.db, func(txCtx context.Context) error {
		if _, err := e.CompanyRepository.GetByID(txCtx, req.CompanyID); err != nil {
			if errors.Is(err, company.ErrCompanyNotFound) {
				return company.ErrCompanyNotFound
			}
			return fmt.Errorf("failed to get company: %w", err)
		}

		data := employee.Employee{
			CompanyID:       req.CompanyID,
			Name:            req.Name,
			Email:           req.Email,
			PhoneNumber:     req.PhoneNumber,
			Designation:     req.Designation,
			DateOfJoining:   req.DateOfJoining,
			OfficeStartTime: req.OfficeStartTime,
			OfficeEndTime:   req.OfficeEndTime,
			Status:          employee.StatusActive,
		}

		var err error
		created, err = e.EmployeeRepository.Create(txCtx, data)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = *req.PhoneNumber
	}
	if req.Designation != nil {
		emp.Designation = *req.Designation
	}
	if req.OfficeStartTime != nil {
		emp.OfficeStartTime = *req.OfficeStartTime
	}
	if req.OfficeEndTime != nil {
		emp.OfficeEndTime = *req.OfficeEndTime
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}
	if req.NoticePeriod != nil {
		emp.NoticePeriod = *req.NoticePeriod
	}
	if req.NoticePeriodRemark != nil {
		emp.NoticePeriodRemark = *req.NoticePeriodRemark
	}

	if err := e.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// GetEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// ListNotices implements employee.EmployeeService. Rows cover employees
// whose notice date is today or later; already-expired notices drop out
// of the listing, newest notice date first.
func (e *EmployeeServiceImpl) ListNotices(ctx context.Context, companyID string) ([]employee.NoticeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	today := time.Now()
	notices := make([]employee.NoticeResponse, 0)
	for _, emp := range employees {
		if emp.NoticePeriod == "" {
			continue
		}
		noticeDate, err := datetime.ParseDate(emp.NoticePeriod)
		if err != nil {
			continue
		}
		remaining := datetime.DayDifference(today, noticeDate, false)
		if remaining < 0 {
			continue
		}
		notices = append(notices, employee.NoticeResponse{
			EmployeeID:    emp.ID,
			Name:          emp.Name,
			Email:         emp.Email,
			Designation:   emp.Designation,
			CompanyID:     emp.CompanyID,
			CompanyName:   emp.CompanyName,
			NoticeDate:    emp.NoticePeriod,
			DaysRemaining: remaining,
			Remark:        emp.NoticePeriodRemark,
		})
	}

	sort.Slice(notices, func(i, j int) bool {
		return notices[i].NoticeDate > notices[j].NoticeDate
	})
	return notices, nil
}

// mapEmployeeToResponse converts an Employee entity to EmployeeResponse
func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                 emp.ID,
		CompanyID:          emp.CompanyID,
		CompanyName:        emp.CompanyName,
		Name:               emp.Name,
		Email:              emp.Email,
		PhoneNumber:        emp.PhoneNumber,
		Designation:        emp.Designation,
		DateOfJoining:      emp.DateOfJoining,
		OfficeStartTime:    emp.OfficeStartTime,
		OfficeEndTime:      emp.OfficeEndTime,
		Status:             emp.Status,
		NoticePeriod:       emp.NoticePeriod,
		NoticePeriodRemark: emp.NoticePeriodRemark,
	}
}
