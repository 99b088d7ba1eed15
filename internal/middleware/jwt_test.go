package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaughan-dsouza/expert/internal/models"
	"github.com/vaughan-dsouza/expert/internal/utils"
)

const testSecret = "test-secret"

func signed(t *testing.T, id int64, role models.Role) string {
	t.Helper()
	token, _, err := utils.GenerateToken(id, "a@x.com", role, testSecret, time.Minute)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	var gotID int64
	var gotRole models.Role
	h := AuthMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.UserIDFromContext(r.Context())
		gotRole, _ = utils.RoleFromContext(r.Context())
	}))

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"empty token", "Bearer  ", http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"valid", "Bearer " + signed(t, 5, models.RoleAdmin), http.StatusOK},
		{"lowercase scheme", "bearer " + signed(t, 5, models.RoleAdmin), http.StatusOK},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, c.status, w.Code)
		})
	}

	assert.Equal(t, int64(5), gotID)
	assert.Equal(t, models.RoleAdmin, gotRole)
}

func TestRequireRole(t *testing.T) {
	h := AuthMiddleware(testSecret)(RequireRole(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodDelete, "/admin/comments/1", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t, 1, models.RoleUser))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/admin/comments/1", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t, 1, models.RoleAdmin))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.RequestIDFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "abc", seen)
}
