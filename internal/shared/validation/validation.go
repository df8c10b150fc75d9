package validation

import (
	"sort"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

// Errors collects field-level validation failures, keyed by field name.
// It implements error so services can return it directly, while handlers
// keep the field structure for the response body.
type Errors map[string][]string

func New() Errors {
	return Errors{}
}

func (e Errors) Add(field, message string) Errors {
	e[field] = append(e[field], message)
	return e
}

func (e Errors) Any() bool {
	return len(e) > 0
}

// On returns the messages recorded for a field.
func (e Errors) On(field string) []string {
	return e[field]
}

// Merge copies all messages from other into e.
func (e Errors) Merge(other Errors) {
	for field, messages := range other {
		e[field] = append(e[field], messages...)
	}
}

// Error renders "field message" pairs in field order.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var parts []string
	for _, field := range fields {
		for _, msg := range e[field] {
			parts = append(parts, field+" "+msg)
		}
	}
	return strings.Join(parts, "; ")
}

// FromOzzo converts an ozzo-validation error into Errors. A nil or
// non-ozzo error yields nil.
func FromOzzo(err error) Errors {
	if err == nil {
		return nil
	}

	ozzoErrs, ok := err.(ozzo.Errors)
	if !ok {
		return New().Add("base", err.Error())
	}

	errs := New()
	for field, fieldErr := range ozzoErrs {
		if fieldErr != nil {
			errs.Add(field, fieldErr.Error())
		}
	}
	return errs
}

// IsValidation reports whether err carries field-level validation failures.
func IsValidation(err error) bool {
	_, ok := err.(Errors)
	return ok
}
