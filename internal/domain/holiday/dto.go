package holiday

import (
	"github.com/hrmflow/hrm-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	CompanyID string  `json:"company_id"`
	Date      string  `json:"date"`
	Name      *string `json:"name,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	if r.Name != nil && len(*r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	Weekday string  `json:"weekday"`
	Name    *string `json:"name,omitempty"`
}
