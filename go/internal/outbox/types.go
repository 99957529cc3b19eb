package outbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/events"
)

// OutboxEvent is one row of the outbox table
type OutboxEvent struct {
	ID          uuid.UUID       `json:"id"`
	AggregateID uuid.UUID       `json:"aggregate_id"`
	EventType   events.Type     `json:"event_type"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"created_at"`
	SentAt      *time.Time      `json:"sent_at,omitempty"`
}

// Publisher delivers an outbox event to the event bus.
type Publisher interface {
	Publish(ctx context.Context, event OutboxEvent) error
}

// Store is what the relay needs from the outbox table.
type Store interface {
	FetchUnsentByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error)
	FetchUnsent(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
}
