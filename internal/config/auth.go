package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// EnvAuthSecret overrides the session signing secret.
	EnvAuthSecret = "AUTH_SECRET"

	// EnvAuthCookieName overrides the session cookie name.
	EnvAuthCookieName = "AUTH_COOKIE_NAME"

	// EnvAuthSessionTTL overrides the session lifetime.
	EnvAuthSessionTTL = "AUTH_SESSION_TTL"

	// EnvAuthSecureCookie overrides the Secure attribute on the session cookie.
	EnvAuthSecureCookie = "AUTH_SECURE_COOKIE"

	// EnvAuthLoginURL overrides the login redirect target.
	EnvAuthLoginURL = "AUTH_LOGIN_URL"
)

const minSecretLength = 32

// AuthConfig contains session authentication configuration.
type AuthConfig struct {
	Secret       string `toml:"secret"`
	CookieName   string `toml:"cookie_name"`
	SessionTTL   string `toml:"session_ttl"`
	SecureCookie bool   `toml:"secure_cookie"`
	LoginURL     string `toml:"login_url"`
}

// SessionTTLDuration parses and returns the session lifetime as a time.Duration.
func (c *AuthConfig) SessionTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.SessionTTL)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the auth configuration.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.Secret != "" {
		c.Secret = overlay.Secret
	}
	if overlay.CookieName != "" {
		c.CookieName = overlay.CookieName
	}
	if overlay.SessionTTL != "" {
		c.SessionTTL = overlay.SessionTTL
	}
	if overlay.SecureCookie {
		c.SecureCookie = true
	}
	if overlay.LoginURL != "" {
		c.LoginURL = overlay.LoginURL
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.CookieName == "" {
		c.CookieName = "taxi_session"
	}
	if c.SessionTTL == "" {
		c.SessionTTL = "336h"
	}
	if c.LoginURL == "" {
		c.LoginURL = "/accounts/login/"
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthSecret); v != "" {
		c.Secret = v
	}
	if v := os.Getenv(EnvAuthCookieName); v != "" {
		c.CookieName = v
	}
	if v := os.Getenv(EnvAuthSessionTTL); v != "" {
		c.SessionTTL = v
	}
	if v := os.Getenv(EnvAuthSecureCookie); v != "" {
		if secure, err := strconv.ParseBool(v); err == nil {
			c.SecureCookie = secure
		}
	}
	if v := os.Getenv(EnvAuthLoginURL); v != "" {
		c.LoginURL = v
	}
}

func (c *AuthConfig) validate() error {
	if len(c.Secret) < minSecretLength {
		return fmt.Errorf("secret must be at least %d bytes", minSecretLength)
	}
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return fmt.Errorf("invalid session_ttl: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}
	return nil
}
