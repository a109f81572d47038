package middleware

import (
	"net/http"

	"github.com/hrmflow/hrm-backend-go/internal/domain/auth"
	"github.com/hrmflow/hrm-backend-go/internal/domain/user"
	"github.com/hrmflow/hrm-backend-go/internal/handler/http/response"
)

// RequireHR allows HR and superadmin users through.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromContext(r)
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if role != user.RoleHR && role != user.RoleSuperAdmin {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireSuperAdmin allows only superadmin users through.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromContext(r)
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if role != user.RoleSuperAdmin {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func roleFromContext(r *http.Request) (user.Role, error) {
	claims, err := accessClaims(r)
	if err != nil {
		return "", err
	}

	role, ok := claims["role"].(string)
	if !ok {
		return "", auth.ErrInvalidToken
	}
	return user.Role(role), nil
}
