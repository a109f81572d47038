package leave

import (
	"github.com/hrmflow/hrm-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string  `json:"employee_id"`
	FromDate   string  `json:"from_date"`
	ToDate     string  `json:"to_date"`
	Duration   string  `json:"duration"`
	Type       string  `json:"type"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be a valid YYYY-MM-DD date",
		})
	}

	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be a valid YYYY-MM-DD date",
		})
	}

	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}

	if !validator.IsInSlice(r.Duration, []string{DurationFullDay, DurationHalfDay}) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration",
			Message: "duration must be one of: fullday, halfday",
		})
	}

	if !validator.IsInSlice(r.Type, []string{TypePaid, TypeUnpaid}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: paid, unpaid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RangeFilter struct {
	From string
	To   string
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

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

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	Duration     string  `json:"duration"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	Reason       *string `json:"reason,omitempty"`
	TotalDays    int     `json:"total_days"`
}

// EmployeeLeavesResponse groups one employee's leave requests, as consumed
// by the monthly status matrix.
type EmployeeLeavesResponse struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Leaves       []LeaveResponse `json:"leaves"`
}
