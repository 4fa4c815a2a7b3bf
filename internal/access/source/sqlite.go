package source

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nerrad567/featuregate/internal/access"
)

// SQLite reads entries from the role_features table of a fixture database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed source.
// The db parameter should be an open connection to a migrated database.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Name implements Source.
func (s *SQLite) Name() string {
	return "database"
}

// Load implements Source.
//
// Rows are grouped into one entry per run of consecutive rows with the
// same role and role_position, so a role seeded at two positions comes
// back as two entries and is reported as a duplicate.
func (s *SQLite) Load(ctx context.Context) ([]access.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT role, role_position, feature
		FROM role_features
		ORDER BY role_position, role, position`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying role_features: %w", ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var entries []access.Entry
	lastRole, lastPos := "", -1

	for rows.Next() {
		var role, feature string
		var pos int
		if err := rows.Scan(&role, &pos, &feature); err != nil {
			return nil, fmt.Errorf("scanning role_features row: %w", err)
		}

		if len(entries) == 0 || role != lastRole || pos != lastPos {
			entries = append(entries, access.Entry{Role: access.Role(role)})
			lastRole, lastPos = role, pos
		}
		last := &entries[len(entries)-1]
		last.Features = append(last.Features, access.Feature(feature))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating role_features: %w", err)
	}

	return entries, nil
}
