package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/events"
	"github.com/rs/zerolog/log"
)

// Inserter is satisfied by *db.Queries bound to the caller's transaction.
type Inserter interface {
	InsertOutboxEvent(ctx context.Context, arg db.InsertOutboxEventParams) (uuid.UUID, error)
}

// Write records an event in the outbox. Call it with the Queries of the transaction that makes
// the change, so the event commits or rolls back with it.
func Write(ctx context.Context, q Inserter, aggregateID uuid.UUID, eventType events.Type, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", eventType, err)
	}

	id, err := q.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
		AggregateID: aggregateID,
		EventType:   string(eventType),
		Payload:     data,
	})
	if err != nil {
		return fmt.Errorf("insert %s outbox event: %w", eventType, err)
	}

	log.Debug().
		Str("event_id", id.String()).
		Str("aggregate_id", aggregateID.String()).
		Str("event_type", string(eventType)).
		Msg("outbox event inserted")
	return nil
}
