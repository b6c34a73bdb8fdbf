package drivers

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors for driver operations.
var (
	ErrNotFound           = errors.New("driver not found")
	ErrDuplicate          = errors.New("driver already exists")
	ErrInvalid            = errors.New("invalid driver")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrDuplicateUsername = fmt.Errorf("%w: username taken", ErrDuplicate)
	ErrDuplicateLicense  = fmt.Errorf("%w: license number taken", ErrDuplicate)
	ErrInvalidLicense    = fmt.Errorf("%w: license number", ErrInvalid)
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
	if errors.Is(err, ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
