package sqlutil

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mcdev12/castaway/go/internal/apperrors"
)

// Postgres SQLSTATE codes the repositories care about.
const (
	CodeUniqueViolation     = "23505"
	CodeCheckViolation      = "23514"
	CodeForeignKeyViolation = "23503"
)

// Classify turns a store error into the application error taxonomy.
// entity and id describe what was being looked up, for NotFound messages.
// Errors that are already classified pass through unchanged.
func Classify(op, entity string, id any, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.KindOf(err) != "" {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFound(entity, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeUniqueViolation:
			return apperrors.Conflict("%s: %s already exists (%s)", op, entity, pgErr.ConstraintName)
		case CodeCheckViolation:
			return apperrors.Conflict("%s: %s violates %s", op, entity, pgErr.ConstraintName)
		case CodeForeignKeyViolation:
			return apperrors.NotFound(entity+" reference", pgErr.ConstraintName)
		}
	}
	return apperrors.Transaction(op, err)
}

// IsConstraint reports whether err is a Postgres violation of the named constraint.
func IsConstraint(err error, name string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == name
}
