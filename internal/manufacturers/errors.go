package manufacturers

import (
	"errors"
	"net/http"
)

// Domain errors for manufacturer operations.
var (
	ErrNotFound  = errors.New("manufacturer not found")
	ErrDuplicate = errors.New("manufacturer name already exists")
	ErrInvalid   = errors.New("invalid manufacturer")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
