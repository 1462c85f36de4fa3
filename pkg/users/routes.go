package users

import (
	"github.com/labstack/echo/v4"
	"github.com/librisapp/libris/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers user registration and login routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authService *auth.Service) {
	h := &handler{
		userService: NewService(db),
		authService: authService,
	}

	g := e.Group("/api/users")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
}
