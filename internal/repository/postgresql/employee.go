package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrmflow/hrm-backend-go/internal/domain/employee"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Calendar dates and clock times are stored as text in their canonical
// forms ("YYYY-MM-DD", "HH:MM"); range filters rely on their
// lexicographic order matching chronological order.

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, company_id, name, email, phone_number, designation,
			date_of_joining, office_start_time, office_end_time, status,
			notice_period, notice_period_remark
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, company_id, name, email, phone_number, designation,
				  date_of_joining, office_start_time, office_end_time, status,
				  notice_period, notice_period_remark, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		uuid.New().String(),
		newEmployee.CompanyID,
		newEmployee.Name,
		newEmployee.Email,
		newEmployee.PhoneNumber,
		newEmployee.Designation,
		newEmployee.DateOfJoining,
		newEmployee.OfficeStartTime,
		newEmployee.OfficeEndTime,
		newEmployee.Status,
		newEmployee.NoticePeriod,
		newEmployee.NoticePeriodRemark,
	).Scan(
		&created.ID,
		&created.CompanyID,
		&created.Name,
		&created.Email,
		&created.PhoneNumber,
		&created.Designation,
		&created.DateOfJoining,
		&created.OfficeStartTime,
		&created.OfficeEndTime,
		&created.Status,
		&created.NoticePeriod,
		&created.NoticePeriodRemark,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.company_id, e.name, e.email, e.phone_number, e.designation,
			   e.date_of_joining, e.office_start_time, e.office_end_time, e.status,
			   e.notice_period, e.notice_period_remark,
			   e.created_at, e.updated_at, c.name
		FROM employees e
		JOIN companies c ON c.id = e.company_id
		WHERE e.id = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.CompanyID,
		&found.Name,
		&found.Email,
		&found.PhoneNumber,
		&found.Designation,
		&found.DateOfJoining,
		&found.OfficeStartTime,
		&found.OfficeEndTime,
		&found.Status,
		&found.NoticePeriod,
		&found.NoticePeriodRemark,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.CompanyName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return found, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, email = $2, phone_number = $3, designation = $4,
			office_start_time = $5, office_end_time = $6, status = $7,
			notice_period = $8, notice_period_remark = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.Name,
		emp.Email,
		emp.PhoneNumber,
		emp.Designation,
		emp.OfficeStartTime,
		emp.OfficeEndTime,
		emp.Status,
		emp.NoticePeriod,
		emp.NoticePeriodRemark,
		emp.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee with id %s: %w", emp.ID, err)
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.company_id, e.name, e.email, e.phone_number, e.designation,
			   e.date_of_joining, e.office_start_time, e.office_end_time, e.status,
			   e.notice_period, e.notice_period_remark,
			   e.created_at, e.updated_at, c.name
		FROM employees e
		JOIN companies c ON c.id = e.company_id
		WHERE ($1 = '' OR e.company_id = $1)
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.CompanyID,
			&emp.Name,
			&emp.Email,
			&emp.PhoneNumber,
			&emp.Designation,
			&emp.DateOfJoining,
			&emp.OfficeStartTime,
			&emp.OfficeEndTime,
			&emp.Status,
			&emp.NoticePeriod,
			&emp.NoticePeriodRemark,
			&emp.CreatedAt,
			&emp.UpdatedAt,
			&emp.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}
