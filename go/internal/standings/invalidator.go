package standings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/events"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

const (
	invalidatorAckWait           = 10 * time.Second
	invalidatorMaxDeliver        = 5
	invalidatorMaxAckPending     = 256
	invalidatorInactiveThreshold = 5 * time.Minute
)

// CacheInvalidator drops cached standings
type CacheInvalidator interface {
	InvalidateLeague(leagueID uuid.UUID)
	InvalidateSeason(seasonID uuid.UUID)
}

// Invalidator consumes outbox events from JetStream and drops the standings they make stale.
// Every instance needs every event, so each one gets its own ephemeral consumer that
// starts at new messages and is removed by the server once the instance goes away.
type Invalidator struct {
	js            jetstream.JetStream
	streamName    string
	subjectPrefix string
	consumerName  string
	cache         CacheInvalidator
}

// NewInvalidator creates an Invalidator. consumerName must be unique per process.
func NewInvalidator(js jetstream.JetStream, streamName, subjectPrefix, consumerName string, cache CacheInvalidator) *Invalidator {
	return &Invalidator{
		js:            js,
		streamName:    streamName,
		subjectPrefix: subjectPrefix,
		consumerName:  consumerName,
		cache:         cache,
	}
}

// Run consumes until ctx is cancelled
func (i *Invalidator) Run(ctx context.Context) error {
	stream, err := i.js.Stream(ctx, i.streamName)
	if err != nil {
		return fmt.Errorf("get stream: %w", err)
	}

	consumer, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Name:              i.consumerName,
		Description:       "standings cache invalidation",
		FilterSubject:     i.subjectPrefix + ".>",
		DeliverPolicy:     jetstream.DeliverNewPolicy,
		AckPolicy:         jetstream.AckExplicitPolicy,
		MaxDeliver:        invalidatorMaxDeliver,
		AckWait:           invalidatorAckWait,
		MaxAckPending:     invalidatorMaxAckPending,
		InactiveThreshold: invalidatorInactiveThreshold,
	})
	if err != nil {
		return fmt.Errorf("create consumer: %w", err)
	}

	consumeCtx, err := consumer.Consume(i.handleMsg)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}
	defer consumeCtx.Stop()

	log.Info().
		Str("stream", i.streamName).
		Str("consumer", i.consumerName).
		Msg("standings invalidator started")

	<-ctx.Done()
	log.Info().Msg("standings invalidator stopped")
	return nil
}

func (i *Invalidator) handleMsg(msg jetstream.Msg) {
	if err := i.Apply(msg.Data()); err != nil {
		// A payload that cannot be decoded now never will be.
		log.Error().Err(err).Str("subject", msg.Subject()).Msg("dropping undecodable event")
		if termErr := msg.Term(); termErr != nil {
			log.Warn().Err(termErr).Msg("failed to terminate message")
		}
		return
	}
	if err := msg.Ack(); err != nil {
		log.Warn().Err(err).Str("subject", msg.Subject()).Msg("failed to ack message")
	}
}

// Apply decodes one event envelope and invalidates the league or season it names
func (i *Invalidator) Apply(data []byte) error {
	var env events.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.AggregateID == uuid.Nil {
		return fmt.Errorf("event %s has no aggregate id", env.EventID)
	}

	switch events.ScopeOf(env.EventType) {
	case events.ScopeSeason:
		i.cache.InvalidateSeason(env.AggregateID)
	default:
		i.cache.InvalidateLeague(env.AggregateID)
	}

	log.Debug().
		Str("event_type", string(env.EventType)).
		Str("aggregate_id", env.AggregateID.String()).
		Msg("standings invalidated by event")
	return nil
}
