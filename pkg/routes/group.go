// Package routes declares HTTP routes as data and registers them on a
// ServeMux using Go 1.22 method patterns.
package routes

import "net/http"

// Route is a single method and pattern bound to a handler. Pattern is
// relative to the enclosing group prefix.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group is a collection of routes under a common URL prefix. Groups can
// contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
	Children    []Group
}

// Register adds every route in the groups, including children, to mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, g := range groups {
		g.register(mux, "")
	}
}

func (g Group) register(mux *http.ServeMux, parent string) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		mux.HandleFunc(r.Method+" "+prefix+r.Pattern, r.Handler)
	}
	for _, child := range g.Children {
		child.register(mux, prefix)
	}
}

// Patterns returns the full registration patterns of the group, in order.
func (g Group) Patterns() []string {
	return g.patterns("")
}

func (g Group) patterns(parent string) []string {
	prefix := parent + g.Prefix
	out := make([]string, 0, len(g.Routes))
	for _, r := range g.Routes {
		out = append(out, r.Method+" "+prefix+r.Pattern)
	}
	for _, child := range g.Children {
		out = append(out, child.patterns(prefix)...)
	}
	return out
}
