package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrmflow/hrm-backend-go/internal/domain/attendance"
	"github.com/hrmflow/hrm-backend-go/internal/domain/employee"
	"github.com/hrmflow/hrm-backend-go/internal/domain/holiday"
	"github.com/hrmflow/hrm-backend-go/internal/domain/leave"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/database"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/datetime"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
	leave.LeaveRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.LeaveRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		HolidayRepository:    holidayRepo,
		LeaveRepository:      leaveRepo,
	}
}

// optClock converts an "HH:MM" string into the optional-punch form the
// delta calculator takes; "" means no punch was recorded.
func optClock(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// deltaOrNil runs ComputeDelta and maps the not-applicable case to nil
// for storage. NULL in the database means "no punch", never zero.
func deltaOrNil(actual *string, scheduled string, kind BoundaryKind) *int {
	minutes, applicable := ComputeDelta(actual, scheduled, kind)
	if !applicable {
		return nil
	}
	return &minutes
}

// recalculate fills the derived fields of an attendance record from its
// punches and the employee's schedule boundaries.
func recalculate(att *attendance.Attendance, emp employee.Employee) {
	att.LateMinutes = deltaOrNil(optClock(att.ArrivalTime), emp.OfficeStartTime, BoundaryArrival)
	att.OvertimeMinutes = deltaOrNil(optClock(att.LeaveTime), emp.OfficeEndTime, BoundaryDeparture)

	att.TotalMinutes = 0
	arrival, arrivalOK := datetime.ParseClock(att.ArrivalTime)
	departure, departureOK := datetime.ParseClock(att.LeaveTime)
	if arrivalOK && departureOK {
		att.TotalMinutes = departure - arrival
	}
}

// AddAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) AddAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceExists
	}

	data := attendance.Attendance{
		EmployeeID:  req.EmployeeID,
		CompanyID:   emp.CompanyID,
		Date:        req.Date,
		ArrivalTime: req.ArrivalTime,
		LeaveTime:   req.LeaveTime,
		Tasks:       req.Tasks,
	}
	recalculate(&data, emp)

	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// UpdateAttendance implements attendance.AttendanceService.
// This allows HR/SuperAdmin to fix attendance data like wrong punch times;
// lateness, overtime and total minutes are recomputed from the result.
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if req.Date != nil {
		att.Date = *req.Date
	}
	if req.ArrivalTime != nil {
		att.ArrivalTime = *req.ArrivalTime
	}
	if req.LeaveTime != nil {
		att.LeaveTime = *req.LeaveTime
	}
	if req.Tasks != nil {
		att.Tasks = req.Tasks
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, att.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	recalculate(&att, emp)

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get updated attendance: %w", err)
	}

	return mapAttendanceToResponse(updated), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if err := a.AttendanceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return mapAttendanceToResponse(att), nil
}

// GetDetails implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetDetails(ctx context.Context, filter attendance.DetailsFilter) (attendance.DetailsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.DetailsResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, filter.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.DetailsResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.DetailsResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	records, err := a.AttendanceRepository.ListByEmployee(ctx, filter.EmployeeID, filter.From, filter.To)
	if err != nil {
		return attendance.DetailsResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return attendance.DetailsResponse{
		EmployeeID:             emp.ID,
		Name:                   emp.Name,
		Designation:            emp.Designation,
		DateOfJoining:          emp.DateOfJoining,
		OfficeStartTime:        emp.OfficeStartTime,
		OfficeStartTimeDisplay: datetime.FormatClock12h(emp.OfficeStartTime),
		OfficeEndTime:          emp.OfficeEndTime,
		OfficeEndTimeDisplay:   datetime.FormatClock12h(emp.OfficeEndTime),
		Attendances:            responses,
	}, nil
}

// GetMonthlyStatus implements attendance.AttendanceService.
// One reconciliation pass: the calendar axis for the pay cycle is built
// once, then every (employee, day) cell is classified against the same
// immutable snapshot of attendance, holiday and leave records.
func (a *AttendanceServiceImpl) GetMonthlyStatus(ctx context.Context, filter attendance.MonthlyStatusFilter) (attendance.MonthlyStatusResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.MonthlyStatusResponse{}, err
	}

	ref, err := datetime.ParseDate(filter.Month)
	if err != nil {
		return attendance.MonthlyStatusResponse{}, fmt.Errorf("failed to parse month: %w", err)
	}

	from, to := PayCycleRange(ref)
	fromStr, toStr := datetime.FormatDate(from), datetime.FormatDate(to)

	employees, err := a.EmployeeRepository.List(ctx, filter.CompanyID)
	if err != nil {
		return attendance.MonthlyStatusResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	attendances, err := a.AttendanceRepository.ListByRange(ctx, fromStr, toStr, filter.CompanyID)
	if err != nil {
		return attendance.MonthlyStatusResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	holidays, err := a.HolidayRepository.ListByRange(ctx, fromStr, toStr, filter.CompanyID)
	if err != nil {
		return attendance.MonthlyStatusResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	leaves, err := a.LeaveRepository.ListByRange(ctx, fromStr, toStr, filter.CompanyID)
	if err != nil {
		return attendance.MonthlyStatusResponse{}, fmt.Errorf("failed to list leaves: %w", err)
	}

	// Holidays are scoped per company; pre-group so each employee row only
	// sees its own company's calendar.
	holidaysByCompany := make(map[string][]holiday.Holiday)
	for _, h := range holidays {
		holidaysByCompany[h.CompanyID] = append(holidaysByCompany[h.CompanyID], h)
	}

	calendar := BuildCalendar(ref)
	cells := make([]attendance.CalendarCellResponse, 0, len(calendar))
	for _, cell := range calendar {
		cells = append(cells, attendance.CalendarCellResponse{
			Day:     cell.Day,
			Month:   cell.Month,
			Weekday: cell.Weekday,
		})
	}

	rows := make([]attendance.EmployeeMonthlyStatus, 0, len(employees))
	for _, emp := range employees {
		companyHolidays := holidaysByCompany[emp.CompanyID]

		statuses := make([]string, 0, len(calendar))
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			status := ClassifyDay(emp.ID, datetime.FormatDate(d), attendances, companyHolidays, leaves)
			statuses = append(statuses, status.Code())
		}

		rows = append(rows, attendance.EmployeeMonthlyStatus{
			EmployeeID:  emp.ID,
			Name:        emp.Name,
			Designation: emp.Designation,
			CompanyID:   emp.CompanyID,
			Statuses:    statuses,
		})
	}

	return attendance.MonthlyStatusResponse{
		From:      fromStr,
		To:        toStr,
		Calendar:  cells,
		Employees: rows,
	}, nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	return attendance.AttendanceResponse{
		ID:                  att.ID,
		EmployeeID:          att.EmployeeID,
		EmployeeName:        employeeName,
		EmployeeDesignation: att.EmployeeDesignation,
		Date:                att.Date,
		ArrivalTime:         att.ArrivalTime,
		ArrivalTimeDisplay:  datetime.FormatClock12h(att.ArrivalTime),
		LeaveTime:           att.LeaveTime,
		LeaveTimeDisplay:    datetime.FormatClock12h(att.LeaveTime),
		LateMinutes:         att.LateMinutes,
		OvertimeMinutes:     att.OvertimeMinutes,
		TotalMinutes:        att.TotalMinutes,
		Tasks:               att.Tasks,
	}
}
