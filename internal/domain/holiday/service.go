package holiday

import (
	"context"
)

// HolidayService defines business logic for the holiday calendar
type HolidayService interface {
	// AddHoliday marks a date as a non-working day for the caller's company
	AddHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	// RemoveHoliday unmarks a holiday
	RemoveHoliday(ctx context.Context, id string) error

	// ListByCycle lists holidays within the pay cycle containing ref, a
	// "YYYY-MM-DD" date anywhere in the cycle's anchor month. The cycle
	// runs from the 22nd of the prior month through the 21st, so the
	// cycle's own first day anchors the previous cycle.
	ListByCycle(ctx context.Context, ref string, companyID string) ([]HolidayResponse, error)
}
