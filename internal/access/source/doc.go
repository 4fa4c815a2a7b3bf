// Package source loads the static role -> feature table and reports
// fixture defects before the registry is built.
//
// Three sources are provided:
//   - Builtin: the table compiled into the binary (access.DefaultEntries)
//   - File: a YAML or JSON fixture on disk
//   - SQLite: the role_features table of a fixture database
//
// Sources return entries exactly as written, without dropping anything.
// Validate lists what access.NewRegistry would silently discard (unknown
// roles and features, duplicates), and Build logs those issues or, in
// strict mode, refuses to build.
//
// Fixture format:
//
//	roles:
//	  - role: owner
//	    features: [SETTINGS, BILLING]
//	  - role: admin
//	    features: [SETTINGS]
//
// A bare top-level list of entries and the equivalent JSON are accepted too.
package source
