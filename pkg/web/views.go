// Package web provides infrastructure for serving server-rendered pages with
// Go templates. Templates are parsed once at startup so rendering has no
// per-request parsing overhead and a broken template fails the process early.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef names a view template and its page title.
type ViewDef struct {
	Template string
	Title    string
}

// Context carries the named values a view reads, such as "car_list".
type Context map[string]any

// ViewData is passed to every template. BasePath enables portable URL
// generation via {{ .BasePath }}; User is the authenticated principal, if any.
type ViewData struct {
	Title    string
	BasePath string
	User     any
	Data     Context
}

// Renderer renders a view with a status code.
type Renderer interface {
	Render(w http.ResponseWriter, status int, view string, data ViewData) error
}

// TemplateSet holds pre-parsed templates keyed by view file name.
type TemplateSet struct {
	views    map[string]*template.Template
	titles   map[string]string
	basePath string
}

// NewTemplateSet parses the layouts matched by layoutGlob in layoutFS and
// clones them once per view, parsing each view from viewSubdir of viewFS.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(Funcs()).ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	ts := &TemplateSet{
		views:    make(map[string]*template.Template, len(views)),
		titles:   make(map[string]string, len(views)),
		basePath: basePath,
	}

	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		ts.views[v.Template] = t
		ts.titles[v.Template] = v.Title
	}

	return ts, nil
}

func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Has reports whether view was parsed into the set.
func (ts *TemplateSet) Has(view string) bool {
	_, ok := ts.views[view]
	return ok
}

// Render executes layout for view with status. Output is buffered so a
// template error never produces a partial page.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layout, view string, data ViewData) error {
	t, ok := ts.views[view]
	if !ok {
		return fmt.Errorf("template not found: %s", view)
	}

	if data.Title == "" {
		data.Title = ts.titles[view]
	}
	if data.BasePath == "" {
		data.BasePath = ts.basePath
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("execute %s: %w", view, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Layout binds the set to a layout, yielding a Renderer.
func (ts *TemplateSet) Layout(layout string) Renderer {
	return &layoutRenderer{ts: ts, layout: layout}
}

// PageHandler returns a handler that renders view with no data.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ViewData{Title: view.Title}
		if err := ts.Render(w, http.StatusOK, layout, view.Template, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// ErrorHandler returns a handler that renders view with the given status.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ViewData{Title: view.Title}
		if err := ts.Render(w, status, layout, view.Template, data); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

type layoutRenderer struct {
	ts     *TemplateSet
	layout string
}

func (r *layoutRenderer) Render(w http.ResponseWriter, status int, view string, data ViewData) error {
	return r.ts.Render(w, status, r.layout, view, data)
}
