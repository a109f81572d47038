package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrmflow/hrm-backend-go/internal/domain/user"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, role, employee_id, company_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, password_hash, role, employee_id, company_id, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		uuid.New().String(),
		newUser.Email,
		newUser.PasswordHash,
		string(newUser.Role),
		newUser.EmployeeID,
		newUser.CompanyID,
	).Scan(
		&created.ID,
		&created.Email,
		&created.PasswordHash,
		&created.Role,
		&created.EmployeeID,
		&created.CompanyID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getBy(ctx, "id", id)
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *userRepositoryImpl) getBy(ctx context.Context, column, value string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, email, password_hash, role, employee_id, company_id, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, column)

	var found user.User
	err := q.QueryRow(ctx, query, value).Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.EmployeeID,
		&found.CompanyID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by %s: %w", column, err)
	}
	return found, nil
}
