// Package validators enforces the client-side form rules shared by every
// create/edit screen. Validation always runs fully — every failing field
// is reported in one pass — and never triggers a network call: a form
// with field errors is rejected before the adapter is touched.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input. Field-level failures are
	// returned as [FieldErrors]; any other error means the input type is
	// not supported.
	Validate(context.Context, any) error
}
