package outbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/events"
	"github.com/sqlc-dev/pqtype"
)

const fetchUnsentByID = `
SELECT id, aggregate_id, event_type, payload, created_at
FROM outbox
WHERE id = $1
  AND sent_at IS NULL`

const fetchUnsent = `
SELECT id, aggregate_id, event_type, payload, created_at
FROM outbox
WHERE sent_at IS NULL
ORDER BY created_at
LIMIT $1`

const markSent = `
UPDATE outbox
SET sent_at = $2
WHERE id = $1`

// ErrAlreadySent is returned when a notified event was relayed by another instance.
var ErrAlreadySent = errors.New("outbox event not found or already sent")

// SQLStore reads the outbox through database/sql and lib/pq, the same driver the LISTEN
// connection uses.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

var _ Store = (*SQLStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (OutboxEvent, error) {
	var (
		ev        OutboxEvent
		eventType string
		payload   pqtype.NullRawMessage
	)
	if err := row.Scan(&ev.ID, &ev.AggregateID, &eventType, &payload, &ev.CreatedAt); err != nil {
		return OutboxEvent{}, err
	}
	ev.EventType = events.Type(eventType)
	if payload.Valid {
		ev.Payload = payload.RawMessage
	}
	return ev, nil
}

func (s *SQLStore) FetchUnsentByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error) {
	ev, err := scanEvent(s.db.QueryRowContext(ctx, fetchUnsentByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAlreadySent
		}
		return nil, fmt.Errorf("failed to fetch outbox event by ID: %w", err)
	}
	return &ev, nil
}

func (s *SQLStore) FetchUnsent(ctx context.Context, limit int) ([]OutboxEvent, error) {
	rows, err := s.db.QueryContext(ctx, fetchUnsent, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}
	defer rows.Close()

	var out []OutboxEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outbox event: %w", err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate outbox events: %w", err)
	}
	return out, nil
}

func (s *SQLStore) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, markSent, id, at); err != nil {
		return fmt.Errorf("failed to mark outbox event as sent: %w", err)
	}
	return nil
}
