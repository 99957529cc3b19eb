package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/castaway/go/internal/castaways"
	"github.com/mcdev12/castaway/go/internal/config"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/draft"
	"github.com/mcdev12/castaway/go/internal/scoring"
	"github.com/mcdev12/castaway/go/internal/standings"
)

// runtime is the app graph a command works against. The CLI keeps no cache: every
// standings read is computed from the ledger.
type runtime struct {
	pool      *pgxpool.Pool
	queries   *db.Queries
	castaways *castaways.App
	draft     *draft.App
	scoring   *scoring.App
	standings *standings.App
}

func openRuntime(ctx context.Context, cfg config.Config) (*runtime, error) {
	pool, err := pgxpool.New(ctx, cfg.DB.PoolDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	clock := clockwork.NewRealClock()
	queries := db.New(pool)
	standingsApp := standings.NewApp(standings.NewRepository(queries, pool), nil, nil)

	return &runtime{
		pool:      pool,
		queries:   queries,
		castaways: castaways.NewApp(castaways.NewRepository(queries, pool), standingsApp),
		draft:     draft.NewApp(draft.NewRepository(queries, pool), clock, nil, standingsApp),
		scoring:   scoring.NewApp(scoring.NewRepository(queries, pool), clock, standingsApp),
		standings: standingsApp,
	}, nil
}

func (r *runtime) Close() {
	r.pool.Close()
}
