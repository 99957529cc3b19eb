package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/castaway/go/internal/config"
	"github.com/mcdev12/castaway/go/internal/outbox"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	config.SetupLogging(cfg.Env.LogLevel, cfg.Env.LogFormat)

	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	log.Info().
		Str("host", cfg.DB.Host).
		Int("port", cfg.DB.Port).
		Str("database", cfg.DB.Database).
		Msg("connected to database")

	// signal-aware context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()

	publisher, err := outbox.NewJetStreamPublisher(ctx, cfg.JetStream, clock)
	if err != nil {
		log.Fatal().Err(err).Msg("create JetStream publisher")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("close publisher")
		}
	}()

	notifier, err := outbox.NewPQNotifier(cfg.Outbox)
	if err != nil {
		log.Fatal().Err(err).Msg("create outbox notifier")
	}

	listener := outbox.NewListener(outbox.NewSQLStore(db), notifier, publisher, clock, cfg.Outbox)

	log.Info().Str("stream", cfg.JetStream.StreamName).Msg("starting outbox relay")
	if err := listener.Start(ctx); err != nil {
		log.Error().Err(err).Msg("relay exited with error")
		return
	}
	log.Info().Msg("outbox relay stopped")
}
