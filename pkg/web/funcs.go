package web

import (
	"html/template"
	"strings"
	"time"
)

// Funcs returns the template functions available to every view.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"upper": strings.ToUpper,
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan 2, 2006")
		},
		"fieldError": func(errs map[string]string, field string) string {
			if errs == nil {
				return ""
			}
			return errs[field]
		},
	}
}
