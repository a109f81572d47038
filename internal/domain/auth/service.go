package auth

import (
	"context"
)

// AuthService defines authentication business logic
type AuthService interface {
	// Register creates an employee account and issues tokens
	Register(ctx context.Context, req RegisterRequest) (LoginResponse, error)

	// Login verifies credentials and issues access and refresh tokens
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the given refresh token
	Logout(ctx context.Context, refreshToken string) error
}
