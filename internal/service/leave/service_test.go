package leave

import (
	"context"
	"fmt"
	"testing"

	"github.com/hrmflow/hrm-backend-go/internal/domain/employee"
	"github.com/hrmflow/hrm-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	leaves []leave.Leave
	nextID int
}

func (f *fakeLeaveRepo) Create(_ context.Context, data leave.Leave) (leave.Leave, error) {
	f.nextID++
	data.ID = fmt.Sprintf("lv-%d", f.nextID)
	f.leaves = append(f.leaves, data)
	return data, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.Leave, error) {
	for _, lv := range f.leaves {
		if lv.ID == id {
			return lv, nil
		}
	}
	return leave.Leave{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) Update(_ context.Context, data leave.Leave) error {
	for i, lv := range f.leaves {
		if lv.ID == data.ID {
			f.leaves[i] = data
			return nil
		}
	}
	return leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) Delete(_ context.Context, id string) error {
	for i, lv := range f.leaves {
		if lv.ID == id {
			f.leaves = append(f.leaves[:i], f.leaves[i+1:]...)
			return nil
		}
	}
	return leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, lv := range f.leaves {
		if lv.EmployeeID == employeeID {
			out = append(out, lv)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByRange(_ context.Context, from, to, companyID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, lv := range f.leaves {
		if lv.ToDate < from || lv.FromDate > to {
			continue
		}
		if companyID != "" && lv.CompanyID != companyID {
			continue
		}
		out = append(out, lv)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, data employee.Employee) (employee.Employee, error) {
	f.employees[data.ID] = data
	return data, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, data employee.Employee) error {
	f.employees[data.ID] = data
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func newTestService() (leave.LeaveService, *fakeLeaveRepo) {
	leaveRepo := &fakeLeaveRepo{}
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", CompanyID: "co-1", Name: "Jordan Smith"},
	}}
	return NewLeaveService(nil, leaveRepo, empRepo), leaveRepo
}

func TestLeaveService_CreateLeave(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		FromDate:   "2024-03-11",
		ToDate:     "2024-03-13",
		Duration:   leave.DurationFullDay,
		Type:       leave.TypePaid,
	})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, 3, created.TotalDays)
}

func TestLeaveService_CreateLeave_SingleDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		FromDate:   "2024-03-11",
		ToDate:     "2024-03-11",
		Duration:   leave.DurationHalfDay,
		Type:       leave.TypeUnpaid,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created.TotalDays)
}

func TestLeaveService_CreateLeave_Overlap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	first := leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		FromDate:   "2024-03-11",
		ToDate:     "2024-03-13",
		Duration:   leave.DurationFullDay,
		Type:       leave.TypePaid,
	}
	_, err := svc.CreateLeave(ctx, first)
	require.NoError(t, err)

	second := first
	second.FromDate = "2024-03-13"
	second.ToDate = "2024-03-15"
	_, err = svc.CreateLeave(ctx, second)
	assert.ErrorIs(t, err, leave.ErrLeaveOverlaps)
}

func TestLeaveService_CreateLeave_AfterRejectionAllowed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	req := leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		FromDate:   "2024-03-11",
		ToDate:     "2024-03-13",
		Duration:   leave.DurationFullDay,
		Type:       leave.TypePaid,
	}

	created, err := svc.CreateLeave(ctx, req)
	require.NoError(t, err)

	_, err = svc.RejectLeave(ctx, created.ID)
	require.NoError(t, err)

	// A rejected request no longer blocks the window.
	_, err = svc.CreateLeave(ctx, req)
	assert.NoError(t, err)
}

func TestLeaveService_ApproveLeave(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		FromDate:   "2024-03-11",
		ToDate:     "2024-03-13",
		Duration:   leave.DurationFullDay,
		Type:       leave.TypePaid,
	})
	require.NoError(t, err)

	approved, err := svc.ApproveLeave(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)

	// Approval is final.
	_, err = svc.RejectLeave(ctx, created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestLeaveService_ApproveLeave_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.ApproveLeave(ctx, "missing")
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestLeaveService_GetEmployeeLeaves(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		FromDate:   "2024-03-11",
		ToDate:     "2024-03-13",
		Duration:   leave.DurationFullDay,
		Type:       leave.TypePaid,
	})
	require.NoError(t, err)

	resp, err := svc.GetEmployeeLeaves(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "Jordan Smith", resp.EmployeeName)
	require.Len(t, resp.Leaves, 1)
}

func TestLeaveService_ListByRange_GroupsByEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, leaveRepo := newTestService()

	nameA, nameB := "Jordan Smith", "Riley Chen"
	leaveRepo.leaves = []leave.Leave{
		{ID: "lv-a", EmployeeID: "emp-1", CompanyID: "co-1", FromDate: "2024-03-01", ToDate: "2024-03-02", Status: leave.StatusApproved, Type: leave.TypePaid, EmployeeName: &nameA},
		{ID: "lv-b", EmployeeID: "emp-2", CompanyID: "co-1", FromDate: "2024-03-05", ToDate: "2024-03-05", Status: leave.StatusPending, Type: leave.TypeUnpaid, EmployeeName: &nameB},
		{ID: "lv-c", EmployeeID: "emp-1", CompanyID: "co-1", FromDate: "2024-03-10", ToDate: "2024-03-12", Status: leave.StatusPending, Type: leave.TypePaid, EmployeeName: &nameA},
	}

	groups, err := svc.ListByRange(ctx, leave.RangeFilter{From: "2024-02-22", To: "2024-03-21"}, "co-1")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "emp-1", groups[0].EmployeeID)
	assert.Len(t, groups[0].Leaves, 2)
	assert.Equal(t, "emp-2", groups[1].EmployeeID)
	assert.Len(t, groups[1].Leaves, 1)
}
