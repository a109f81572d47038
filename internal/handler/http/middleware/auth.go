package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrmflow/hrm-backend-go/internal/domain/auth"
	"github.com/hrmflow/hrm-backend-go/internal/handler/http/response"
)

// accessClaims returns the verified claims from the request context.
// Refresh tokens are rejected here so they can never reach a protected
// handler, only the refresh endpoint accepts them.
func accessClaims(r *http.Request) (map[string]interface{}, error) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, auth.ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
		return nil, auth.ErrInvalidToken
	}
	return claims, nil
}

// AuthRequired rejects requests that carry no valid access token. Runs
// after jwtauth.Verifier, which parses the token into the context.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := accessClaims(r); err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				response.HandleError(w, err)
				return
			}
			response.Unauthorized(w, err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
