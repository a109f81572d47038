package attendance

import (
	"github.com/hrmflow/hrm-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	ArrivalTime string  `json:"arrival_time"`
	LeaveTime   string  `json:"leave_time,omitempty"`
	Tasks       *string `json:"tasks,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	if !validator.IsValidClock(r.ArrivalTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "arrival_time",
			Message: "arrival_time must be a valid HH:MM time",
		})
	}

	// Leave time is optional: the departure punch may not exist yet.
	if r.LeaveTime != "" && !validator.IsValidClock(r.LeaveTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_time",
			Message: "leave_time must be a valid HH:MM time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	ID          string  `json:"id"`
	Date        *string `json:"date,omitempty"`
	ArrivalTime *string `json:"arrival_time,omitempty"`
	LeaveTime   *string `json:"leave_time,omitempty"`
	Tasks       *string `json:"tasks,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if r.ArrivalTime != nil && !validator.IsValidClock(*r.ArrivalTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "arrival_time",
			Message: "arrival_time must be a valid HH:MM time",
		})
	}

	if r.LeaveTime != nil && *r.LeaveTime != "" && !validator.IsValidClock(*r.LeaveTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_time",
			Message: "leave_time must be a valid HH:MM time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DetailsFilter selects one employee's records over an inclusive date range.
type DetailsFilter struct {
	EmployeeID string
	From       string
	To         string
}

func (f *DetailsFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	from, fromOK := validator.IsValidDate(f.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a valid YYYY-MM-DD date",
		})
	}

	to, toOK := validator.IsValidDate(f.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a valid YYYY-MM-DD date",
		})
	}

	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthlyStatusFilter selects the pay cycle containing the given month
// anchor date, optionally narrowed to one company.
type MonthlyStatusFilter struct {
	Month     string
	CompanyID string
}

func (f *MonthlyStatusFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(f.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        string  `json:"employee_name,omitempty"`
	EmployeeDesignation *string `json:"employee_designation,omitempty"`
	Date                string  `json:"date"`
	ArrivalTime         string  `json:"arrival_time"`
	ArrivalTimeDisplay  string  `json:"arrival_time_display"`
	LeaveTime           string  `json:"leave_time,omitempty"`
	LeaveTimeDisplay    string  `json:"leave_time_display,omitempty"`
	LateMinutes         *int    `json:"late_minutes"`
	OvertimeMinutes     *int    `json:"overtime_minutes"`
	TotalMinutes        int     `json:"total_minutes"`
	Tasks               *string `json:"tasks,omitempty"`
}

// DetailsResponse is one employee's attendance over a range, together with
// the schedule boundaries the deltas were measured against.
type DetailsResponse struct {
	EmployeeID             string               `json:"employee_id"`
	Name                   string               `json:"name"`
	Designation            string               `json:"designation"`
	DateOfJoining          string               `json:"date_of_joining"`
	OfficeStartTime        string               `json:"office_start_time"`
	OfficeStartTimeDisplay string               `json:"office_start_time_display"`
	OfficeEndTime          string               `json:"office_end_time"`
	OfficeEndTimeDisplay   string               `json:"office_end_time_display"`
	Attendances            []AttendanceResponse `json:"attendances"`
}

type CalendarCellResponse struct {
	Day     string `json:"day"`
	Month   string `json:"month"`
	Weekday string `json:"weekday"`
}

type EmployeeMonthlyStatus struct {
	EmployeeID  string   `json:"employee_id"`
	Name        string   `json:"name"`
	Designation string   `json:"designation"`
	CompanyID   string   `json:"company_id"`
	Statuses    []string `json:"statuses"`
}

// MonthlyStatusResponse is the company-wide day-by-day matrix for one pay
// cycle: a calendar axis plus one status row per employee.
type MonthlyStatusResponse struct {
	From      string                  `json:"from"`
	To        string                  `json:"to"`
	Calendar  []CalendarCellResponse  `json:"calendar"`
	Employees []EmployeeMonthlyStatus `json:"employees"`
}
