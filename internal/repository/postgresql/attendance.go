package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrmflow/hrm-backend-go/internal/domain/attendance"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.company_id, a.date, a.arrival_time, a.leave_time,
	a.late_minutes, a.overtime_minutes, a.total_minutes, a.tasks,
	a.created_at, a.updated_at, e.name, e.designation
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID,
		&att.EmployeeID,
		&att.CompanyID,
		&att.Date,
		&att.ArrivalTime,
		&att.LeaveTime,
		&att.LateMinutes,
		&att.OvertimeMinutes,
		&att.TotalMinutes,
		&att.Tasks,
		&att.CreatedAt,
		&att.UpdatedAt,
		&att.EmployeeName,
		&att.EmployeeDesignation,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository. The unique index on
// (employee_id, date) backs the one record per employee per day rule.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		WITH inserted AS (
			INSERT INTO attendances (
				id, employee_id, company_id, date, arrival_time, leave_time,
				late_minutes, overtime_minutes, total_minutes, tasks
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM inserted a
		JOIN employees e ON e.id = a.employee_id
	`

	created, err := scanAttendance(q.QueryRow(ctx, query,
		uuid.New().String(),
		newAttendance.EmployeeID,
		newAttendance.CompanyID,
		newAttendance.Date,
		newAttendance.ArrivalTime,
		newAttendance.LeaveTime,
		newAttendance.LateMinutes,
		newAttendance.OvertimeMinutes,
		newAttendance.TotalMinutes,
		newAttendance.Tasks,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	found, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance with id %s: %w", id, err)
	}
	return found, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
	`

	found, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for employee %s on %s: %w", employeeID, date, err)
	}
	return &found, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET date = $1, arrival_time = $2, leave_time = $3, late_minutes = $4,
			overtime_minutes = $5, total_minutes = $6, tasks = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		att.Date,
		att.ArrivalTime,
		att.LeaveTime,
		att.LateMinutes,
		att.OvertimeMinutes,
		att.TotalMinutes,
		att.Tasks,
		att.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance with id %s: %w", att.ID, err)
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListByRange implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByRange(ctx context.Context, from, to string, companyID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2
		  AND ($3 = '' OR a.company_id = $3)
		ORDER BY a.date, e.name
	`

	rows, err := q.Query(ctx, query, from, to, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	return attendances, rows.Err()
}
