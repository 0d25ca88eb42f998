package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/001_initial.up.sql
var initialSchemaSQL string

// EnsureSchema applies the initial schema. The SQL is idempotent
// (IF NOT EXISTS / ON CONFLICT DO NOTHING) so re-running on a populated
// database is safe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, initialSchemaSQL); err != nil {
		return fmt.Errorf("apply initial schema: %w", err)
	}
	return nil
}
