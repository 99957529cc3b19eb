package sqlutil

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverters_RoundTrip(t *testing.T) {
	s := "Tuku"
	assert.Equal(t, &s, FromPgText(ToPgText(&s)))
	assert.Nil(t, FromPgText(ToPgText(nil)))

	w := 3
	assert.Equal(t, &w, FromPgInt4(ToPgInt4(&w)))
	assert.Nil(t, FromPgInt4(ToPgInt4(nil)))

	seed := int64(42)
	assert.Equal(t, &seed, FromPgInt8(ToPgInt8(&seed)))
	assert.Nil(t, FromPgInt8(ToPgInt8(nil)))

	now := time.Date(2026, 3, 4, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, &now, FromPgTimestamptz(ToPgTimestamptz(&now)))
	assert.Nil(t, FromPgTimestamptz(ToPgTimestamptz(nil)))
}

func TestClassify(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, Classify("get", "league", 1, nil))
	})

	t.Run("no rows", func(t *testing.T) {
		err := Classify("get", "league", "abc", fmt.Errorf("scan: %w", pgx.ErrNoRows))
		assert.True(t, apperrors.IsNotFound(err))
		assert.Contains(t, err.Error(), "league abc not found")
	})

	t.Run("unique violation", func(t *testing.T) {
		err := Classify("assign", "draft pick", nil, &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "draft_picks_castaway_once"})
		assert.True(t, apperrors.IsConflict(err))
	})

	t.Run("check violation", func(t *testing.T) {
		err := Classify("join", "league", nil, &pgconn.PgError{Code: CodeCheckViolation, ConstraintName: "leagues_capacity"})
		assert.True(t, apperrors.IsConflict(err))
	})

	t.Run("already classified", func(t *testing.T) {
		in := apperrors.Validation("quantity", "must not be negative")
		assert.Same(t, in, Classify("record", "score", nil, in))
	})

	t.Run("anything else is a transaction failure", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := Classify("record", "score", nil, cause)
		assert.True(t, apperrors.IsTransaction(err))
		assert.ErrorIs(t, err, cause)
	})
}

func TestIsConstraint(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "draft_picks_user_round"})
	assert.True(t, IsConstraint(err, "draft_picks_user_round"))
	assert.False(t, IsConstraint(err, "draft_picks_castaway_once"))
	assert.False(t, IsConstraint(errors.New("x"), "draft_picks_user_round"))
}

type fakeTx struct {
	pgx.Tx
	committed, rolledBack bool
	commitErr             error
}

func (f *fakeTx) Commit(context.Context) error   { f.committed = true; return f.commitErr }
func (f *fakeTx) Rollback(context.Context) error { f.rolledBack = true; return nil }

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (f *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tx, nil
}

type queries struct{ tx pgx.Tx }

func newQueries(tx pgx.Tx) *queries { return &queries{tx: tx} }

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		b := &fakeBeginner{tx: &fakeTx{}}
		var bound pgx.Tx
		err := Run(ctx, b, newQueries, func(q *queries) error {
			bound = q.tx
			return nil
		})
		require.NoError(t, err)
		assert.True(t, b.tx.committed)
		assert.False(t, b.tx.rolledBack)
		assert.Same(t, b.tx, bound)
	})

	t.Run("rolls back and returns fn error unchanged", func(t *testing.T) {
		b := &fakeBeginner{tx: &fakeTx{}}
		want := apperrors.Conflict("league full")
		err := Run(ctx, b, newQueries, func(*queries) error { return want })
		assert.Same(t, want, err)
		assert.True(t, b.tx.rolledBack)
		assert.False(t, b.tx.committed)
	})

	t.Run("begin failure is a transaction error", func(t *testing.T) {
		err := Run(ctx, &fakeBeginner{err: errors.New("pool closed")}, newQueries, func(*queries) error { return nil })
		assert.True(t, apperrors.IsTransaction(err))
	})

	t.Run("commit failure is a transaction error", func(t *testing.T) {
		b := &fakeBeginner{tx: &fakeTx{commitErr: errors.New("serialization failure")}}
		err := Run(ctx, b, newQueries, func(*queries) error { return nil })
		assert.True(t, apperrors.IsTransaction(err))
	})
}
