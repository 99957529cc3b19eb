package sqlutil

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/mcdev12/castaway/go/internal/apperrors"
)

// TxBeginner is satisfied by *pgxpool.Pool and pgx.Tx (savepoints).
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Run executes fn inside a transaction.
// If fn returns an error the tx rolls back and that error is returned as is, else it commits.
func Run[T any](
	ctx context.Context,
	db TxBeginner,
	newQueries func(pgx.Tx) *T,
	fn func(q *T) error,
) error {
	tx, err := db.Begin(ctx) // BEGIN
	if err != nil {
		return apperrors.Transaction("begin", err)
	}
	q := newQueries(tx) // bind sqlc Queries to this tx
	if err := fn(q); err != nil {
		_ = tx.Rollback(ctx) // ROLLBACK
		return err
	}
	if err := tx.Commit(ctx); err != nil { // COMMIT
		return apperrors.Transaction("commit", err)
	}
	return nil
}

// SnapshotBeginner is satisfied by *pgxpool.Pool.
type SnapshotBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// Snapshot runs fn in a read-only REPEATABLE READ transaction, so every query inside it
// sees the same committed state. The transaction always rolls back.
func Snapshot[T any](
	ctx context.Context,
	db SnapshotBeginner,
	newQueries func(pgx.Tx) *T,
	fn func(q *T) error,
) error {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return apperrors.Transaction("begin snapshot", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	return fn(newQueries(tx))
}
