package outbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type ListenerConfig struct {
	DatabaseURL      string        `yaml:"-"`                 // Postgres DSN for LISTEN/NOTIFY
	NotifyChannel    string        `yaml:"notify_channel"`    // Channel name to LISTEN on
	FallbackInterval time.Duration `yaml:"fallback_interval"` // How often to poll for missed events
	MaxRetries       int           `yaml:"max_retries"`
	RetryDelay       time.Duration `yaml:"retry_delay"`
	PingInterval     time.Duration `yaml:"ping_interval"`
	BatchSize        int           `yaml:"batch_size"` // Max events to fetch per poll
}

func DefaultListenerConfig() ListenerConfig {
	return ListenerConfig{
		NotifyChannel:    "outbox_events",
		FallbackInterval: 30 * time.Second,
		MaxRetries:       5,
		RetryDelay:       200 * time.Millisecond,
		PingInterval:     90 * time.Second,
		BatchSize:        100,
	}
}

// Notifier delivers NOTIFY payloads. *pq.Listener satisfies it.
type Notifier interface {
	NotificationChannel() <-chan *pq.Notification
	Ping() error
	Close() error
}

// NewPQNotifier opens a LISTEN connection on cfg.NotifyChannel.
func NewPQNotifier(cfg ListenerConfig) (*pq.Listener, error) {
	l := pq.NewListener(
		cfg.DatabaseURL,
		10*time.Second,
		time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Error().Err(err).Msg("listener event")
			}
		},
	)
	if err := l.Listen(cfg.NotifyChannel); err != nil {
		_ = l.Close()
		return nil, fmt.Errorf("failed to listen to channel: %w", err)
	}

	log.Info().
		Str("channel", cfg.NotifyChannel).
		Msg("listening for notifications")
	return l, nil
}

// Listener relays outbox rows to the publisher as soon as they are notified, and polls for
// anything a notification missed.
type Listener struct {
	store     Store
	notifier  Notifier
	publisher Publisher
	clock     clockwork.Clock
	cfg       ListenerConfig
}

func NewListener(store Store, notifier Notifier, publisher Publisher, clock clockwork.Clock, cfg ListenerConfig) *Listener {
	return &Listener{
		store:     store,
		notifier:  notifier,
		publisher: publisher,
		clock:     clock,
		cfg:       cfg,
	}
}

func (l *Listener) Start(ctx context.Context) error {
	log.Info().
		Str("channel", l.cfg.NotifyChannel).
		Dur("ping_interval", l.cfg.PingInterval).
		Dur("fallback_interval", l.cfg.FallbackInterval).
		Msg("listener started")

	// catch up on anything written while the relay was down
	if err := l.processUnsent(ctx); err != nil {
		log.Error().Err(err).Msg("failed to process unsent events")
	}

	pingTicker := l.clock.NewTicker(l.cfg.PingInterval)
	fallbackTicker := l.clock.NewTicker(l.cfg.FallbackInterval)
	defer pingTicker.Stop()
	defer fallbackTicker.Stop()

	notify := l.notifier.NotificationChannel()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("listener shutting down")
			return l.notifier.Close()
		case note := <-notify:
			if note == nil {
				// connection was lost and re-established; notifications may have been dropped
				if err := l.processUnsent(ctx); err != nil {
					log.Error().Err(err).Msg("failed to process unsent events")
				}
				continue
			}
			if err := l.handleNotification(ctx, note.Extra); err != nil {
				log.Error().Err(err).Msg("failed to handle notification")
			}
		case <-fallbackTicker.Chan():
			if err := l.processUnsent(ctx); err != nil {
				log.Error().Err(err).Msg("failed to process unsent events")
			}
		case <-pingTicker.Chan():
			if err := l.notifier.Ping(); err != nil {
				log.Error().Err(err).Msg("failed to ping listener")
			}
		}
	}
}

// handleNotification handles a pg listen notification. Extra is the outbox row id.
func (l *Listener) handleNotification(ctx context.Context, extra string) error {
	id, err := uuid.Parse(extra)
	if err != nil {
		return fmt.Errorf("invalid event ID in notification: %w", err)
	}

	event, err := l.store.FetchUnsentByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAlreadySent) {
			log.Debug().Str("event_id", id.String()).Msg("outbox event already relayed")
			return nil
		}
		return fmt.Errorf("failed to fetch outbox event: %w", err)
	}

	if err := l.publishWithRetry(ctx, *event); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	log.Info().Str("event_id", id.String()).Msg("published and marked event as sent")
	return nil
}

// processUnsent relays unsent events oldest first, batch after batch, until a short batch
// drains the backlog. A batch in which nothing could be published ends the pass; the next tick
// retries it.
func (l *Listener) processUnsent(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		unsent, err := l.store.FetchUnsent(ctx, l.cfg.BatchSize)
		if err != nil {
			return err
		}

		published := 0
		for _, event := range unsent {
			if err := l.publishWithRetry(ctx, event); err != nil {
				log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to publish event")
				continue
			}
			published++
		}

		if len(unsent) < l.cfg.BatchSize || published == 0 {
			return nil
		}
		log.Debug().Int("published", published).Msg("outbox backlog remains, fetching next batch")
	}
}

// publishWithRetry publishes with a linear backoff and marks the event sent once it is acked.
func (l *Listener) publishWithRetry(ctx context.Context, event OutboxEvent) error {
	var lastErr error

	for attempt := 0; attempt <= l.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := l.cfg.RetryDelay * time.Duration(attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-l.clock.After(delay):
			}
		}

		if err := l.publisher.Publish(ctx, event); err != nil {
			lastErr = err
			log.Error().
				Err(err).
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("failed to publish, retrying")
			continue
		}

		if err := l.store.MarkSent(ctx, event.ID, l.clock.Now()); err != nil {
			log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to mark outbox event as sent")
			return err
		}

		if attempt > 0 {
			log.Info().
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("publish succeeded after retry")
		}
		return nil
	}

	return fmt.Errorf("publish failed after %d attempts: %w", l.cfg.MaxRetries+1, lastErr)
}
