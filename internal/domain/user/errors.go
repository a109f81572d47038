package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserEmailExists     = errors.New("email already registered")
	ErrHRAccessRequired    = errors.New("hr access required")
	ErrAdminAccessRequired = errors.New("superadmin access required")
)
