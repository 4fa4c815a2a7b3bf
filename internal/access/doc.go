// Package access resolves roles to the features they are permitted to use.
//
// It implements a closed two-sided model:
//   - Role: a fixed set of actor classes (owner, admin, member, platformAdmin)
//   - Feature: a fixed set of gated capability areas (SETTINGS, BILLING, ...)
//   - Registry: an immutable role -> feature table built once at startup
//
// The registry is a pure read-only query surface. It never returns errors:
// an unknown role is reported as "not found" (ok == false, false, or 0),
// which callers treat as an expected outcome rather than a failure.
//
// Construction is forgiving. NewRegistry accepts whatever the loader hands
// it and drops what it cannot represent:
//   - entries for roles outside the enumeration are ignored
//   - a role supplied more than once keeps its first entry
//   - unknown or repeated features inside an entry are discarded
//
// Reporting those defects is the loader's job (see package source).
//
// Thread Safety:
//   - A Registry is never mutated after NewRegistry returns, so any number
//     of goroutines may query it concurrently without locking.
//
// Usage:
//
//	reg := access.Default()
//	if reg.HasFeature(access.RoleAdmin, access.FeatureSettings) {
//	    // show the settings area
//	}
package access
