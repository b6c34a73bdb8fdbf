package drivers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("compare password: %w", err)
	}
	return true, nil
}

// dummyHash is compared against when a username is unknown so that failed
// logins cost one bcrypt comparison whether or not the driver exists.
var dummyHash = sync.OnceValue(func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("unknown-driver-placeholder"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("generate dummy hash: %v", err))
	}
	return string(hash)
})

// rejectPassword performs a comparison that always fails.
func rejectPassword(password string) {
	_, _ = CheckPassword(dummyHash(), password)
}

func checkPassword(password string) string {
	if len(password) < MinPasswordLength {
		return fmt.Sprintf("This password is too short. It must contain at least %d characters.", MinPasswordLength)
	}
	if len(password) > 72 {
		return "This password is too long. It must contain at most 72 bytes."
	}
	if strings.Trim(password, "0123456789") == "" {
		return "This password is entirely numeric."
	}
	return ""
}
