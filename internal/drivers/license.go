package drivers

import (
	"fmt"
	"regexp"
)

// LicenseLength is the exact length of a license number.
const LicenseLength = 8

var (
	licensePattern  = regexp.MustCompile(`^[A-Z]{3}[0-9]{5}$`)
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

// ValidateLicense reports whether license is three uppercase letters
// followed by five digits. The returned error wraps ErrInvalidLicense.
func ValidateLicense(license string) error {
	if msg := checkLicense(license); msg != "" {
		return fmt.Errorf("%w: %s", ErrInvalidLicense, msg)
	}
	return nil
}

func checkLicense(license string) string {
	if licensePattern.MatchString(license) {
		return ""
	}
	if len(license) != LicenseLength {
		return fmt.Sprintf("License number should consist of %d characters.", LicenseLength)
	}
	for i := 0; i < 3; i++ {
		if license[i] < 'A' || license[i] > 'Z' {
			return "First 3 characters should be uppercase letters."
		}
	}
	return "Last 5 characters should be digits."
}
