// Package config loads process configuration: .env, DB_* and friends from the environment, and
// the YAML application file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mcdev12/castaway/go/internal/dbconfig"
	"github.com/mcdev12/castaway/go/internal/outbox"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Env is read from the process environment.
type Env struct {
	Port       string `env:"PORT" envDefault:"8080"`
	NATSURL    string `env:"NATS_URL"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"console"`
	ConfigPath string `env:"CONFIG_PATH" envDefault:"config/castaway.yaml"`
}

type StandingsConfig struct {
	// CacheTTL bounds how stale a cached leaderboard may be. Zero disables the cache.
	CacheTTL time.Duration `yaml:"cache_ttl"`
	// ConsumerName is the durable JetStream consumer prefix for cache invalidation.
	ConsumerName string `yaml:"consumer_name"`
}

type ServerConfig struct {
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Config is the full process configuration.
type Config struct {
	Env       Env                    `yaml:"-"`
	DB        dbconfig.Config        `yaml:"-"`
	Server    ServerConfig           `yaml:"server"`
	Standings StandingsConfig        `yaml:"standings"`
	JetStream outbox.JetStreamConfig `yaml:"jetstream"`
	Outbox    outbox.ListenerConfig  `yaml:"outbox"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Standings: StandingsConfig{
			CacheTTL:     30 * time.Second,
			ConsumerName: "standings-invalidator",
		},
		JetStream: outbox.DefaultJetStreamConfig(),
		Outbox:    outbox.DefaultListenerConfig(),
	}
}

// Load reads .env (if present), the environment, and the YAML file named by CONFIG_PATH.
// A missing YAML file leaves the defaults in place.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := Default()
	if err := env.Parse(&cfg.Env); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	dbCfg, err := dbconfig.NewConfigFromEnv()
	if err != nil {
		return Config{}, err
	}
	cfg.DB = dbCfg

	if err := cfg.loadFile(cfg.Env.ConfigPath); err != nil {
		return Config{}, err
	}
	if cfg.Env.NATSURL != "" {
		cfg.JetStream.URL = cfg.Env.NATSURL
	}
	cfg.Outbox.DatabaseURL = cfg.DB.DSN()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("path", path).Msg("config file not found, using defaults")
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}
