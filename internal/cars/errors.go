package cars

import (
	"errors"
	"net/http"
)

// Domain errors for car operations.
var (
	ErrNotFound             = errors.New("car not found")
	ErrDuplicate            = errors.New("car already exists")
	ErrInvalid              = errors.New("invalid car")
	ErrManufacturerNotFound = errors.New("manufacturer not found")
	ErrDriverNotFound       = errors.New("driver not found")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalid) ||
		errors.Is(err, ErrManufacturerNotFound) ||
		errors.Is(err, ErrDriverNotFound) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
