package session

import (
	"net/url"
	"strings"
)

// SafeNext returns next when it is a local absolute path, otherwise fallback.
// Scheme-relative ("//host") and backslash-prefixed targets are rejected.
func SafeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") {
		return fallback
	}
	if strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return fallback
	}
	return next
}
