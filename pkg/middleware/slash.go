package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// AddSlash redirects GET and HEAD requests without a trailing slash to the
// slashed form, unless the path has a file extension. The redirect target is
// built from the original request URI so it survives prefix stripping.
func AddSlash() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := requestPath(r)
			if (r.Method == http.MethodGet || r.Method == http.MethodHead) &&
				!strings.HasSuffix(path, "/") && !hasFileExtension(path) {
				target := path + "/"
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TrimSlash redirects requests with trailing slashes to their canonical form
// without the slash. The root path "/" is preserved.
func TrimSlash() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := requestPath(r)
			if len(path) > 1 && strings.HasSuffix(path, "/") {
				target := strings.TrimSuffix(path, "/")
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestPath returns the path the client asked for, before any prefix was
// stripped by a parent router.
func requestPath(r *http.Request) string {
	if r.RequestURI != "" {
		if u, err := url.ParseRequestURI(r.RequestURI); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return r.URL.Path
}

func hasFileExtension(path string) bool {
	lastSlash := strings.LastIndex(path, "/")
	lastDot := strings.LastIndex(path, ".")
	return lastDot > lastSlash
}
