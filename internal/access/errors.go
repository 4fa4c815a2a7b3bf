package access

import "errors"

// Parse errors for the access package.
//
// The Registry itself never returns errors; these are only produced when
// converting configuration text into Role or Feature values.
var (
	// ErrUnknownRole is returned when a role name is not in the enumeration.
	ErrUnknownRole = errors.New("access: unknown role")

	// ErrUnknownFeature is returned when a feature name is not in the enumeration.
	ErrUnknownFeature = errors.New("access: unknown feature")
)
