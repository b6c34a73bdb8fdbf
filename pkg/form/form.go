// Package form validates submitted HTML form values and collects per-field
// error messages for re-rendering.
package form

import (
	"errors"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Errors maps a field name to its first validation message. The key "__all__"
// holds errors that do not belong to a single field.
type Errors map[string]string

// NonField is the key for errors not tied to one field.
const NonField = "__all__"

// Add records msg for field unless the field already has an error.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Any reports whether any error was recorded.
func (e Errors) Any() bool {
	return len(e) > 0
}

// Get returns the message for field, or "".
func (e Errors) Get(field string) string {
	return e[field]
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e[f]
	}
	return strings.Join(parts, "; ")
}

// Required adds an error when value is blank.
func (e Errors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "This field is required.")
	}
}

// MaxLength adds an error when value exceeds n characters.
func (e Errors) MaxLength(field, value string, n int) {
	if utf8.RuneCountInString(value) > n {
		e.Add(field, "Ensure this value has at most "+strconv.Itoa(n)+" characters.")
	}
}

// Matches adds msg when a non-empty value does not match re.
func (e Errors) Matches(field, value string, re *regexp.Regexp, msg string) {
	if value != "" && !re.MatchString(value) {
		e.Add(field, msg)
	}
}

// As extracts Errors wrapped in err.
func As(err error) (Errors, bool) {
	var fe Errors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// Values returns trimmed form values by name. Multi-valued fields keep only
// the first value; use All for the rest.
type Values url.Values

// Get returns the trimmed first value of key.
func (v Values) Get(key string) string {
	return strings.TrimSpace(url.Values(v).Get(key))
}

// Raw returns the untrimmed first value of key, used for passwords.
func (v Values) Raw(key string) string {
	return url.Values(v).Get(key)
}

// All returns every non-empty trimmed value of key.
func (v Values) All(key string) []string {
	out := make([]string, 0, len(v[key]))
	for _, s := range v[key] {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
