// Package database provides SQLite connectivity for the role fixture database.
//
// This package manages:
//   - Opening the database read-write (create + migrate) or read-only
//   - Schema migrations embedded in the binary
//   - Health checks and lifecycle
//
// The fixture database is static data: it is created and seeded by
// migrations and only read afterwards. Nothing in featuregate writes
// role data at runtime.
//
// Usage:
//
//	db, err := database.Open(ctx, database.Config{Path: cfg.Database.Path})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
//
// Migration files are named YYYYMMDD_HHMMSS_description.up.sql with an
// optional matching .down.sql.
package database
