package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search on generated test code when
// listing and exporting test cases.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_test_cases_code_gin
		ON test_cases USING gin(to_tsvector('english', code))`)
	if err != nil {
		return fmt.Errorf("failed to create test code GIN index: %w", err)
	}

	return nil
}
