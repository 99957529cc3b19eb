package main

import (
	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/config"
	"github.com/rs/zerolog/log"
)

func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		// logging is not configured yet; the default global logger still writes to stderr
		log.Fatal().Err(err).Msg("failed to load config")
	}
	config.SetupLogging(cfg.Env.LogLevel, cfg.Env.LogFormat)

	log.Info().
		Str("config_path", cfg.Env.ConfigPath).
		Str("db_host", cfg.DB.Host).
		Str("nats_url", cfg.JetStream.URL).
		Dur("standings_cache_ttl", cfg.Standings.CacheTTL).
		Msg("configuration loaded")
	return cfg
}

// consumerName gives each server process its own invalidation consumer.
func consumerName(cfg config.Config) string {
	return cfg.Standings.ConsumerName + "-" + uuid.NewString()[:8]
}
