package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "superadmin" // Full access across companies
	RoleHR         Role = "hr"         // Manages attendance, leave, holidays
	RoleEmployee   Role = "employee"   // Sees only own records
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CompanyID    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSuperAdmin checks if user has full access
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsHR checks if user is HR or super admin
func (u *User) IsHR() bool {
	return u.Role == RoleHR || u.Role == RoleSuperAdmin
}
