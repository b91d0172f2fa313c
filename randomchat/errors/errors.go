// randomchat/errors/errors.go
package errors

import (
	"errors"
	"net/http"
)

// Sentinel errors for every failure class the API can surface. Handlers
// wrap these with context; routes map them to status codes via HTTPStatus.
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrExternalService    = errors.New("external service failure")
	ErrPersistence        = errors.New("persistence failure")
)

// HTTPStatus maps an error to the response status code. Unknown errors
// are treated as internal.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
