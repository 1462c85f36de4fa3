// Package respond shapes successful API responses into the
// {success, count?, message?, data} envelope.
package respond

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type envelope struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Data writes a success envelope wrapping the given payload.
func Data(c echo.Context, status int, data interface{}) error {
	return errors.WithStack(c.JSON(status, envelope{Success: true, Data: data}))
}

// DataMessage writes a success envelope with a human-readable message.
func DataMessage(c echo.Context, status int, data interface{}, msg string) error {
	return errors.WithStack(c.JSON(status, envelope{Success: true, Message: msg, Data: data}))
}

// List writes a success envelope for collection responses, including the
// item count.
func List(c echo.Context, status int, data interface{}, count int) error {
	return errors.WithStack(c.JSON(status, envelope{Success: true, Count: &count, Data: data}))
}
