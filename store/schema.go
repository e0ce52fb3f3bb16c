package store

import (
	"context"
	"database/sql"
)

const vectorsSchema = `
CREATE TABLE IF NOT EXISTS vectors (
    name TEXT PRIMARY KEY,
    dim  INTEGER NOT NULL,
    data BLOB
);
`

// EnsureSchema creates the vectors table in the provided database if it does
// not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, vectorsSchema)
	return err
}
