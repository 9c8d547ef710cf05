package controllers

import (
	"errors"
	"net/http"

	"github.com/Poopyy17/Wings/services"
)

var ErrNoPermission = errors.New("you don't have permission to access this resource")

// statusFor maps service-layer errors onto HTTP status codes. Unknown
// errors are persistence failures: the transaction already rolled back.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrTableOccupied),
		errors.Is(err, services.ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrSessionNotActive):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
