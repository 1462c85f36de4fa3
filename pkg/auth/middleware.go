package auth

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/librisapp/libris/pkg/errcodes"
)

// Context keys for storing claim data.
const (
	ContextKeyClaims = "claims"
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"
)

// Middleware provides authentication middleware.
type Middleware struct {
	authService *Service
}

// NewMiddleware creates a new auth middleware.
func NewMiddleware(authService *Service) *Middleware {
	return &Middleware{
		authService: authService,
	}
}

// Authenticate requires a bearer-scheme Authorization header and validates
// the token. Verification is stateless: the decoded claims are attached to
// the context and trusted downstream without a user lookup.
func (m *Middleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return errcodes.Unauthorized("No token provided. Please login first.")
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := m.authService.ValidateToken(token)
		if err != nil {
			return errcodes.Unauthorized("Invalid or expired token.")
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole returns middleware that checks the authenticated claim's role
// against the required role. The match is exact: there is no role
// hierarchy. Must be used after Authenticate.
func (m *Middleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextKeyClaims).(*Claims)
			if !ok {
				return errcodes.Unauthorized("No token provided. Please login first.")
			}

			if claims.Role != role {
				return errcodes.Forbidden("You do not have permission to access this resource.")
			}

			return next(c)
		}
	}
}

// ClaimsFromContext returns the verified claims set by Authenticate, or nil.
func ClaimsFromContext(c echo.Context) *Claims {
	claims, _ := c.Get(ContextKeyClaims).(*Claims)
	return claims
}
