package employee

import (
	"github.com/hrmflow/hrm-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	CompanyID       string `json:"company_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	Designation     string `json:"designation"`
	DateOfJoining   string `json:"date_of_joining"`
	OfficeStartTime string `json:"office_start_time"`
	OfficeEndTime   string `json:"office_end_time"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be a valid YYYY-MM-DD date",
		})
	}

	if !validator.IsValidClock(r.OfficeStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_start_time",
			Message: "office_start_time must be a valid HH:MM time",
		})
	}

	if !validator.IsValidClock(r.OfficeEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_end_time",
			Message: "office_end_time must be a valid HH:MM time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID                 string  `json:"id"`
	Name               *string `json:"name,omitempty"`
	Email              *string `json:"email,omitempty"`
	PhoneNumber        *string `json:"phone_number,omitempty"`
	Designation        *string `json:"designation,omitempty"`
	OfficeStartTime    *string `json:"office_start_time,omitempty"`
	OfficeEndTime      *string `json:"office_end_time,omitempty"`
	Status             *string `json:"status,omitempty"`
	NoticePeriod       *string `json:"notice_period,omitempty"`
	NoticePeriodRemark *string `json:"notice_period_remark,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.OfficeStartTime != nil && !validator.IsValidClock(*r.OfficeStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_start_time",
			Message: "office_start_time must be a valid HH:MM time",
		})
	}

	if r.OfficeEndTime != nil && !validator.IsValidClock(*r.OfficeEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_end_time",
			Message: "office_end_time must be a valid HH:MM time",
		})
	}

	// An empty notice_period clears a served notice.
	if r.NoticePeriod != nil && *r.NoticePeriod != "" {
		if _, ok := validator.IsValidDate(*r.NoticePeriod); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "notice_period",
				Message: "notice_period must be a valid YYYY-MM-DD date",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{StatusActive, StatusInactive}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                 string  `json:"id"`
	CompanyID          string  `json:"company_id"`
	CompanyName        *string `json:"company_name,omitempty"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	PhoneNumber        string  `json:"phone_number"`
	Designation        string  `json:"designation"`
	DateOfJoining      string  `json:"date_of_joining"`
	OfficeStartTime    string  `json:"office_start_time"`
	OfficeEndTime      string  `json:"office_end_time"`
	Status             string  `json:"status"`
	NoticePeriod       string  `json:"notice_period,omitempty"`
	NoticePeriodRemark string  `json:"notice_period_remark,omitempty"`
}

// NoticeResponse is one row of the resignation notices listing:
// every employee whose notice date has not passed yet, with the days
// still remaining until it.
type NoticeResponse struct {
	EmployeeID    string  `json:"employee_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Designation   string  `json:"designation"`
	CompanyID     string  `json:"company_id"`
	CompanyName   *string `json:"company_name,omitempty"`
	NoticeDate    string  `json:"notice_date"`
	DaysRemaining int     `json:"days_remaining"`
	Remark        string  `json:"remark,omitempty"`
}
