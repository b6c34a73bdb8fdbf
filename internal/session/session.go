// Package session issues and verifies signed session cookies and gates
// handlers behind an authenticated driver.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrNoSession indicates the request carries no session cookie.
	ErrNoSession = errors.New("no session")

	// ErrInvalidSession indicates the session token failed verification.
	ErrInvalidSession = errors.New("invalid session")

	// ErrExpiredSession indicates the session token is past its expiry.
	ErrExpiredSession = errors.New("session expired")

	// ErrUnknownUser indicates a valid token for a driver that no longer exists.
	ErrUnknownUser = errors.New("unknown session user")
)

// Lookup confirms that the driver behind a verified token still exists,
// returning ErrUnknownUser when it does not.
type Lookup func(ctx context.Context, id uuid.UUID) error

// User identifies the authenticated driver of a request.
type User struct {
	ID       uuid.UUID
	Username string
}

// Config controls token signing and cookie attributes.
type Config struct {
	Secret     []byte
	CookieName string
	TTL        time.Duration
	Secure     bool
	LoginURL   string
}

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs session tokens into cookies and reads them back.
type Manager struct {
	cfg    Config
	now    func() time.Time
	lookup Lookup
}

// NewManager creates a Manager from cfg.
func NewManager(cfg Config) *Manager {
	return &Manager{cfg: cfg, now: time.Now}
}

// SetLookup installs the existence check run by Authenticate. It must be
// called before the manager serves requests.
func (m *Manager) SetLookup(fn Lookup) {
	m.lookup = fn
}

// LoginURL is where unauthenticated page requests are redirected.
func (m *Manager) LoginURL() string {
	return m.cfg.LoginURL
}

// Issue returns a signed token for u.
func (m *Manager) Issue(u User) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.cfg.TTL)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	signed, err := tok.SignedString(m.cfg.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify parses token and returns its user.
func (m *Manager) Verify(token string) (*User, error) {
	var c claims
	_, err := jwt.ParseWithClaims(
		token,
		&c,
		func(t *jwt.Token) (any, error) { return m.cfg.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredSession
		}
		return nil, ErrInvalidSession
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, ErrInvalidSession
	}
	return &User{ID: id, Username: c.Username}, nil
}

// Login sets the session cookie for u.
func (m *Manager) Login(w http.ResponseWriter, u User) error {
	token, exp, err := m.Issue(u)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		MaxAge:   int(m.cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Logout expires the session cookie.
func (m *Manager) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Authenticate reads and verifies the session cookie of r, then confirms
// the driver still exists when a Lookup is installed. Any lookup failure
// leaves the request unauthenticated.
func (m *Manager) Authenticate(r *http.Request) (*User, error) {
	c, err := r.Cookie(m.cfg.CookieName)
	if err != nil || c.Value == "" {
		return nil, ErrNoSession
	}

	u, err := m.Verify(c.Value)
	if err != nil {
		return nil, err
	}

	if m.lookup != nil {
		if err := m.lookup(r.Context(), u.ID); err != nil {
			if errors.Is(err, ErrUnknownUser) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
		}
	}
	return u, nil
}

type contextKey struct{}

// WithUser returns a copy of ctx carrying u.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext returns the user stored in ctx, if any.
func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(contextKey{}).(*User)
	return u, ok && u != nil
}

// Current returns the user of r or nil.
func Current(r *http.Request) *User {
	u, _ := FromContext(r.Context())
	return u
}
