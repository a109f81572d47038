package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrmflow/hrm-backend-go/internal/domain/holiday"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO holidays (id, company_id, date, name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, company_id, date, name, created_at
	`

	var created holiday.Holiday
	err := q.QueryRow(ctx, query,
		uuid.New().String(),
		newHoliday.CompanyID,
		newHoliday.Date,
		newHoliday.Name,
	).Scan(&created.ID, &created.CompanyID, &created.Date, &created.Name, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

// GetByDate implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) GetByDate(ctx context.Context, date string, companyID string) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, company_id, date, name, created_at
		FROM holidays
		WHERE date = $1 AND company_id = $2
	`

	var found holiday.Holiday
	err := q.QueryRow(ctx, query, date, companyID).
		Scan(&found.ID, &found.CompanyID, &found.Date, &found.Name, &found.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holiday on %s: %w", date, err)
	}
	return &found, nil
}

// Delete implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, h.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

// ListByRange implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) ListByRange(ctx context.Context, from, to string, companyID string) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, company_id, date, name, created_at
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		  AND ($3 = '' OR company_id = $3)
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var hol holiday.Holiday
		if err := rows.Scan(&hol.ID, &hol.CompanyID, &hol.Date, &hol.Name, &hol.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hol)
	}
	return holidays, rows.Err()
}
