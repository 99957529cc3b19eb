package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/castaway/go/internal/config"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/db/migrations"
	"github.com/rs/zerolog/log"
)

func setupDatabase(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DB.PoolDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	applied, err := db.ApplyMigrations(ctx, pool, migrations.FS, ".")
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info().
		Str("user", cfg.DB.User).
		Str("host", cfg.DB.Host).
		Int("port", cfg.DB.Port).
		Str("database", cfg.DB.Database).
		Strs("migrations_applied", applied).
		Msg("connected to database")
	return pool, nil
}
