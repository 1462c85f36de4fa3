package errcodes

import (
	"fmt"
	"net/http"
)

type Error struct {
	HTTPCode int
	Message  string
	Code     string
	Errors   []string
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Code = err.Code
	te.Errors = err.Errors
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Code == err.Code
}

// NotFound returns a 404 error with a message indicating the given resource.
func NotFound(resource string) error {
	return &Error{
		HTTPCode: http.StatusNotFound,
		Message:  resource + " not found.",
		Code:     "not_found",
	}
}

// InvalidIdentifier returns a 400 error for ids that are not well-formed
// identity tokens.
func InvalidIdentifier(resource string) error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  fmt.Sprintf("Invalid %s id.", resource),
		Code:     "invalid_identifier",
	}
}

// Unauthorized returns a 401 error for missing or invalid credentials.
func Unauthorized(msg string) error {
	return &Error{
		HTTPCode: http.StatusUnauthorized,
		Message:  msg,
		Code:     "unauthorized",
	}
}

// Forbidden returns a 403 error for an authenticated user whose role does
// not permit the operation.
func Forbidden(msg string) error {
	return &Error{
		HTTPCode: http.StatusForbidden,
		Message:  msg,
		Code:     "forbidden",
	}
}

// InvalidCredentials returns the single generic 401 used for login failures.
// The message is identical for unknown emails and wrong passwords so the
// response carries no user-enumeration signal.
func InvalidCredentials() error {
	return &Error{
		HTTPCode: http.StatusUnauthorized,
		Message:  "Invalid email or password.",
		Code:     "invalid_credentials",
	}
}

// ValidationFailed returns a 400 error carrying one message per violated
// field.
func ValidationFailed(msgs ...string) error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  "Validation Error",
		Code:     "validation_failed",
		Errors:   msgs,
	}
}

func ValidationTypeError(msg string) error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  "Validation Error",
		Code:     "validation_type_error",
		Errors:   []string{msg},
	}
}

func UnknownParameter(param string) error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  "Validation Error",
		Code:     "unknown_parameter",
		Errors:   []string{fmt.Sprintf("Unknown Parameter %q", param)},
	}
}

func UnsupportedMediaType() error {
	return &Error{
		HTTPCode: http.StatusUnsupportedMediaType,
		Message:  "Unsupported Media Type",
		Code:     "unsupported_media_type",
	}
}

func MalformedPayload() error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  "Malformed Payload",
		Code:     "malformed_payload",
	}
}

func EmptyRequestBody() error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  "Request body can't be empty.",
		Code:     "empty_request_body",
	}
}
