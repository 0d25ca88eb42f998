package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dscatalog/catalog-system/internal/core/domain"
)

// Postgres error codes this layer translates into the domain taxonomy.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translateError maps constraint violations to domain errors and leaves
// everything else untouched.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgForeignKeyViolation:
		return domain.ErrIntegrityViolation
	case pgUniqueViolation:
		return domain.ErrEmailTaken
	default:
		return err
	}
}
