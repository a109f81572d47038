package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrmflow/hrm-backend-go/internal/domain/leave"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.company_id, l.from_date, l.to_date, l.duration,
	l.type, l.status, l.reason, l.created_at, l.updated_at, e.name
`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var lv leave.Leave
	err := row.Scan(
		&lv.ID,
		&lv.EmployeeID,
		&lv.CompanyID,
		&lv.FromDate,
		&lv.ToDate,
		&lv.Duration,
		&lv.Type,
		&lv.Status,
		&lv.Reason,
		&lv.CreatedAt,
		&lv.UpdatedAt,
		&lv.EmployeeName,
	)
	return lv, err
}

// Create implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		WITH inserted AS (
			INSERT INTO leaves (
				id, employee_id, company_id, from_date, to_date, duration,
				type, status, reason
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		)
		SELECT ` + leaveColumns + `
		FROM inserted l
		JOIN employees e ON e.id = l.employee_id
	`

	created, err := scanLeave(q.QueryRow(ctx, query,
		uuid.New().String(),
		newLeave.EmployeeID,
		newLeave.CompanyID,
		newLeave.FromDate,
		newLeave.ToDate,
		newLeave.Duration,
		newLeave.Type,
		newLeave.Status,
		newLeave.Reason,
	))
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	found, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave with id %s: %w", id, err)
	}
	return found, nil
}

// Update implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) Update(ctx context.Context, lv leave.Leave) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leaves
		SET from_date = $1, to_date = $2, duration = $3, type = $4,
			status = $5, reason = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		lv.FromDate,
		lv.ToDate,
		lv.Duration,
		lv.Type,
		lv.Status,
		lv.Reason,
		lv.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to update leave with id %s: %w", lv.ID, err)
	}
	return nil
}

// Delete implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, l.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

// ListByEmployee implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.employee_id = $1
		ORDER BY l.from_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// ListByRange implements leave.LeaveRepository. A leave request belongs to
// the range when its interval intersects it, not only when fully inside.
func (l *leaveRepositoryImpl) ListByRange(ctx context.Context, from, to string, companyID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.from_date <= $2 AND l.to_date >= $1
		  AND ($3 = '' OR l.company_id = $3)
		ORDER BY e.name, l.from_date
	`

	rows, err := q.Query(ctx, query, from, to, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func collectLeaves(rows pgx.Rows) ([]leave.Leave, error) {
	var leaves []leave.Leave
	for rows.Next() {
		lv, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, lv)
	}
	return leaves, rows.Err()
}
