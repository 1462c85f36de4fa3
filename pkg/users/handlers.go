package users

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/librisapp/libris/pkg/auth"
	"github.com/librisapp/libris/pkg/models"
	"github.com/librisapp/libris/pkg/respond"
	"github.com/pkg/errors"
)

type handler struct {
	userService *Service
	authService *auth.Service
}

// register creates a new user account.
func (h *handler) register(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := RegisterPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userService.Create(ctx, CreateUserOptions{
		Email:    params.Email,
		Password: params.Password,
		Role:     models.RoleUser,
	})
	if err != nil {
		return err
	}

	return respond.DataMessage(c, http.StatusCreated, user, "User registered successfully")
}

// login verifies credentials and issues a signed token.
func (h *handler) login(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := LoginPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authService.Authenticate(ctx, params.Email, params.Password)
	if err != nil {
		return err
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}{token, user}

	return respond.Data(c, http.StatusOK, resp)
}
