package validators

import (
	"errors"
	"sort"
	"strings"
)

var ErrUnsupportedType = errors.New("unsupported type for validation")

// FieldErrors maps a form field name to its user-facing error message.
// It implements error so services can return it through their normal
// error path; the UI detects it with [AsFieldErrors] and renders each
// message inline next to its field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// AsFieldErrors unwraps err into FieldErrors, reporting whether err is a
// validation failure.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fieldErrs FieldErrors
	ok := errors.As(err, &fieldErrs)
	return fieldErrs, ok
}
