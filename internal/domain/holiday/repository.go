package holiday

import (
	"context"
)

// HolidayRepository defines data access methods for the holiday calendar.
type HolidayRepository interface {
	// Create marks a date as a holiday for a company
	Create(ctx context.Context, holiday Holiday) (Holiday, error)

	// GetByDate retrieves the holiday on a date for a company; nil when the
	// date is a working day
	GetByDate(ctx context.Context, date string, companyID string) (*Holiday, error)

	// Delete unmarks a holiday
	Delete(ctx context.Context, id string) error

	// ListByRange retrieves holidays within an inclusive date range,
	// optionally narrowed to one company (empty companyID means all)
	ListByRange(ctx context.Context, from, to string, companyID string) ([]Holiday, error)
}
