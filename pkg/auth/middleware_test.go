package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/librisapp/libris/pkg/errcodes"
	"github.com/librisapp/libris/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(m *Middleware) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	e.GET("/open", ok)
	e.GET("/authed", ok, m.Authenticate)
	e.GET("/admin", ok, m.Authenticate, m.RequireRole(models.RoleAdmin))

	return e
}

func tokenFor(t *testing.T, svc *Service, role string) string {
	t.Helper()

	token, err := svc.GenerateToken(&models.User{
		ID:    uuid.New().String(),
		Email: role + "@example.com",
		Role:  role,
	})
	require.NoError(t, err)

	return token
}

func TestMiddlewareAuthenticate(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, testSecret)
	m := NewMiddleware(svc)
	e := newTestEcho(m)

	tests := []struct {
		name   string
		path   string
		header string
		code   int
	}{
		{"no header", "/authed", "", http.StatusUnauthorized},
		{"wrong scheme", "/authed", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "/authed", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid user token", "/authed", "Bearer " + tokenFor(t, svc, models.RoleUser), http.StatusOK},
		{"user token on admin route", "/admin", "Bearer " + tokenFor(t, svc, models.RoleUser), http.StatusForbidden},
		{"admin token on admin route", "/admin", "Bearer " + tokenFor(t, svc, models.RoleAdmin), http.StatusOK},
		{"open route without token", "/open", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestMiddlewareRejectsForeignToken(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, testSecret)
	m := NewMiddleware(svc)
	e := newTestEcho(m)

	foreign := NewService(nil, "a-different-secret")
	token := tokenFor(t, foreign, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token.")
}

func TestClaimsFromContext(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, testSecret)
	m := NewMiddleware(svc)

	e := echo.New()
	e.HTTPErrorHandler = errcodes.NewHandler().Handle
	e.GET("/whoami", func(c echo.Context) error {
		claims := ClaimsFromContext(c)
		require.NotNil(t, claims)
		return c.String(http.StatusOK, claims.Email)
	}, m.Authenticate)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenFor(t, svc, models.RoleUser))
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@example.com", rec.Body.String())
}
