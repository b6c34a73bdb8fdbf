// Package middleware provides composable net/http middleware: request
// logging, CORS, and trailing slash canonicalization.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// System collects middleware and applies it in registration order: the first
// registered middleware is the outermost.
type System interface {
	Use(mw Middleware)
	Apply(handler http.Handler) http.Handler
}

type system struct {
	stack []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &system{stack: make([]Middleware, 0)}
}

func (s *system) Use(mw Middleware) {
	s.stack = append(s.stack, mw)
}

func (s *system) Apply(handler http.Handler) http.Handler {
	for i := len(s.stack) - 1; i >= 0; i-- {
		handler = s.stack[i](handler)
	}
	return handler
}
