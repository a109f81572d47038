package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrmflow/hrm-backend-go/internal/domain/employee"
	"github.com/hrmflow/hrm-backend-go/internal/domain/leave"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/database"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/datetime"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                 db,
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
	}
}

// CreateLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := l.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	// Reject a request whose window intersects an existing pending or
	// approved request for the same employee.
	existing, err := l.LeaveRepository.ListByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to list leaves: %w", err)
	}
	for _, other := range existing {
		if other.Status == leave.StatusRejected {
			continue
		}
		if req.FromDate <= other.ToDate && req.ToDate >= other.FromDate {
			return leave.LeaveResponse{}, leave.ErrLeaveOverlaps
		}
	}

	data := leave.Leave{
		EmployeeID: req.EmployeeID,
		CompanyID:  emp.CompanyID,
		FromDate:   req.FromDate,
		ToDate:     req.ToDate,
		Duration:   req.Duration,
		Type:       req.Type,
		Status:     leave.StatusPending,
		Reason:     req.Reason,
	}

	created, err := l.LeaveRepository.Create(ctx, data)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapLeaveToResponse(created), nil
}

// ApproveLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) ApproveLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return l.setStatus(ctx, id, leave.StatusApproved)
}

// RejectLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) RejectLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return l.setStatus(ctx, id, leave.StatusRejected)
}

// setStatus transitions a pending request to its final status. Approved
// and rejected requests are immutable.
func (l *LeaveServiceImpl) setStatus(ctx context.Context, id, status string) (leave.LeaveResponse, error) {
	lv, err := l.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveNotFound) {
			return leave.LeaveResponse{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave: %w", err)
	}

	if lv.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	lv.Status = status
	if err := l.LeaveRepository.Update(ctx, lv); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	return mapLeaveToResponse(lv), nil
}

// DeleteLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) DeleteLeave(ctx context.Context, id string) error {
	if err := l.LeaveRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, leave.ErrLeaveNotFound) {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	return nil
}

// GetEmployeeLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) GetEmployeeLeaves(ctx context.Context, employeeID string) (leave.EmployeeLeavesResponse, error) {
	emp, err := l.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.EmployeeLeavesResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.EmployeeLeavesResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	leaves, err := l.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return leave.EmployeeLeavesResponse{}, fmt.Errorf("failed to list leaves: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		responses = append(responses, mapLeaveToResponse(lv))
	}

	return leave.EmployeeLeavesResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Leaves:       responses,
	}, nil
}

// ListByRange implements leave.LeaveService.
func (l *LeaveServiceImpl) ListByRange(ctx context.Context, filter leave.RangeFilter, companyID string) ([]leave.EmployeeLeavesResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	leaves, err := l.LeaveRepository.ListByRange(ctx, filter.From, filter.To, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}

	// Group per employee, preserving first-seen employee order.
	order := make([]string, 0)
	grouped := make(map[string]*leave.EmployeeLeavesResponse)
	for _, lv := range leaves {
		group, ok := grouped[lv.EmployeeID]
		if !ok {
			var name string
			if lv.EmployeeName != nil {
				name = *lv.EmployeeName
			}
			group = &leave.EmployeeLeavesResponse{
				EmployeeID:   lv.EmployeeID,
				EmployeeName: name,
			}
			grouped[lv.EmployeeID] = group
			order = append(order, lv.EmployeeID)
		}
		group.Leaves = append(group.Leaves, mapLeaveToResponse(lv))
	}

	out := make([]leave.EmployeeLeavesResponse, 0, len(order))
	for _, id := range order {
		out = append(out, *grouped[id])
	}
	return out, nil
}

// mapLeaveToResponse converts a Leave entity to LeaveResponse
func mapLeaveToResponse(lv leave.Leave) leave.LeaveResponse {
	var employeeName string
	if lv.EmployeeName != nil {
		employeeName = *lv.EmployeeName
	}

	totalDays := 0
	from, fromErr := datetime.ParseDate(lv.FromDate)
	to, toErr := datetime.ParseDate(lv.ToDate)
	if fromErr == nil && toErr == nil {
		totalDays = datetime.DayDifference(from, to, true)
	}

	return leave.LeaveResponse{
		ID:           lv.ID,
		EmployeeID:   lv.EmployeeID,
		EmployeeName: employeeName,
		FromDate:     lv.FromDate,
		ToDate:       lv.ToDate,
		Duration:     lv.Duration,
		Type:         lv.Type,
		Status:       lv.Status,
		Reason:       lv.Reason,
		TotalDays:    totalDays,
	}
}
