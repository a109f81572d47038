package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth() *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte("test-secret"), nil)
}

func signedRequest(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) *http.Request {
	t.Helper()

	_, tokenString, err := ja.Encode(claims)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	return req
}

func serve(ja *jwtauth.JWTAuth, guard func(http.Handler) http.Handler, req *http.Request) *httptest.ResponseRecorder {
	handler := jwtauth.Verifier(ja)(guard(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_AccessToken(t *testing.T) {
	t.Parallel()
	ja := newTestAuth()

	req := signedRequest(t, ja, map[string]interface{}{"sub": "usr-1", "type": "access", "role": "employee"})
	rec := serve(ja, AuthRequired, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	t.Parallel()
	ja := newTestAuth()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := serve(ja, AuthRequired, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RefreshTokenRejected(t *testing.T) {
	t.Parallel()
	ja := newTestAuth()

	req := signedRequest(t, ja, map[string]interface{}{"sub": "usr-1", "type": "refresh", "role": "hr"})
	rec := serve(ja, AuthRequired, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireHR(t *testing.T) {
	t.Parallel()
	ja := newTestAuth()

	tests := []struct {
		name string
		role string
		want int
	}{
		{name: "hr allowed", role: "hr", want: http.StatusOK},
		{name: "superadmin allowed", role: "superadmin", want: http.StatusOK},
		{name: "employee forbidden", role: "employee", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := signedRequest(t, ja, map[string]interface{}{"sub": "usr-1", "type": "access", "role": tt.role})
			rec := serve(ja, RequireHR, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireSuperAdmin_RefreshTokenRejected(t *testing.T) {
	t.Parallel()
	ja := newTestAuth()

	req := signedRequest(t, ja, map[string]interface{}{"sub": "usr-1", "type": "refresh", "role": "superadmin"})
	rec := serve(ja, RequireSuperAdmin, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
