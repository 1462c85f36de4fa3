package journals

import (
	"github.com/labstack/echo/v4"
	"github.com/librisapp/libris/pkg/auth"
	"github.com/librisapp/libris/pkg/models"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers journal routes. Reads are unauthenticated;
// writes require an authenticated admin.
func RegisterRoutes(e *echo.Echo, db *bun.DB, m *auth.Middleware) {
	h := &handler{
		journalService: NewService(db),
	}

	g := e.Group("/api/journals")
	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create, m.Authenticate, m.RequireRole(models.RoleAdmin))
	g.PUT("/:id", h.update, m.Authenticate, m.RequireRole(models.RoleAdmin))
	g.DELETE("/:id", h.remove, m.Authenticate, m.RequireRole(models.RoleAdmin))
}
