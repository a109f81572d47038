package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrmflow/hrm-backend-go/internal/domain/auth"
	"github.com/hrmflow/hrm-backend-go/internal/domain/user"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/database"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepo,
		jwtService:     jwtService,
	}
}

// Register implements auth.AuthService. Self-registration always yields
// an employee account; HR and superadmin accounts are provisioned
// directly, never through this endpoint.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         user.RoleEmployee,
		EmployeeID:   req.EmployeeID,
		CompanyID:    req.CompanyID,
	})
	if err != nil {
		if errors.Is(err, user.ErrUserEmailExists) {
			return auth.LoginResponse{}, user.ErrUserEmailExists
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return a.issueTokens(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	usr, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error as a wrong password so login probing cannot tell
			// registered emails apart.
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(usr)
}

func (a *AuthServiceImpl) issueTokens(usr user.User) (auth.LoginResponse, error) {
	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken(usr.ID, usr.Email, usr.EmployeeID, usr.CompanyID, usr.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(usr.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshTokenExpiresIn: refreshExpiresAt,
		Role:                  string(usr.Role),
	}, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	userID, err := a.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	usr, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.RefreshResponse{}, auth.ErrUserNotFound
		}
		return auth.RefreshResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(usr.ID, usr.Email, usr.EmployeeID, usr.CompanyID, usr.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(_ context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}
