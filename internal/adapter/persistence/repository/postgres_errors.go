package repository

import (
	"errors"

	"romaneio_api/internal/domain/domainerr"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyPgError turns constraint violations into domain errors and passes
// everything else through untouched.
func classifyPgError(err error, conflictMsg, missingRefMsg string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if conflictMsg != "" {
			return domainerr.NewConflictError("%s", conflictMsg)
		}
	case pgerrcode.ForeignKeyViolation:
		if missingRefMsg != "" {
			return domainerr.NewNotFoundError("%s", missingRefMsg)
		}
	}
	return err
}
