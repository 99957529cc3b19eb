package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/castaway/go/internal/castaways"
	"github.com/mcdev12/castaway/go/internal/config"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/draft"
	"github.com/mcdev12/castaway/go/internal/leagues"
	"github.com/mcdev12/castaway/go/internal/membership"
	"github.com/mcdev12/castaway/go/internal/outbox"
	"github.com/mcdev12/castaway/go/internal/scoring"
	"github.com/mcdev12/castaway/go/internal/standings"
	"github.com/mcdev12/castaway/go/internal/users"
	"github.com/mcdev12/castaway/go/internal/weeklypick"
	"github.com/rs/zerolog/log"
)

type Services struct {
	Users       *users.Service
	Leagues     *leagues.Service
	Castaways   *castaways.Service
	Membership  *membership.Service
	Draft       *draft.Service
	WeeklyPicks *weeklypick.Service
	Scoring     *scoring.Service
	Standings   *standings.Service

	standingsApp *standings.App
}

func setupServices(pool *pgxpool.Pool, clock clockwork.Clock, cfg config.Config) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer
	queries := db.New(pool)

	// Standings first: every write path invalidates it
	cache := standings.NewCache(clock, cfg.Standings.CacheTTL)
	standingsApp := standings.NewApp(standings.NewRepository(queries, pool), standings.NewRanker(standings.DefaultTieBreak), cache)

	usersApp := users.NewApp(users.NewRepository(queries))
	leaguesApp := leagues.NewApp(leagues.NewRepository(queries))
	castawaysApp := castaways.NewApp(castaways.NewRepository(queries, pool), standingsApp)
	membershipApp := membership.NewApp(membership.NewRepository(queries, pool), clock, standingsApp)
	draftApp := draft.NewApp(draft.NewRepository(queries, pool), clock, nil, standingsApp)
	weeklyPickApp := weeklypick.NewApp(weeklypick.NewRepository(queries, pool), clock, standingsApp)
	scoringApp := scoring.NewApp(scoring.NewRepository(queries, pool), clock, standingsApp)

	return &Services{
		Users:        users.NewService(usersApp),
		Leagues:      leagues.NewService(leaguesApp),
		Castaways:    castaways.NewService(castawaysApp),
		Membership:   membership.NewService(membershipApp),
		Draft:        draft.NewService(draftApp),
		WeeklyPicks:  weeklypick.NewService(weeklyPickApp),
		Scoring:      scoring.NewService(scoringApp),
		Standings:    standings.NewService(standingsApp),
		standingsApp: standingsApp,
	}
}

// setupInvalidator connects to JetStream so writes made by other instances drop this
// instance's cached standings. Without a bus the cache TTL alone bounds staleness.
func setupInvalidator(ctx context.Context, cfg config.Config, cache standings.CacheInvalidator) (*standings.Invalidator, func()) {
	if cfg.Standings.CacheTTL <= 0 {
		return nil, nil
	}

	nc, js, err := outbox.Connect(cfg.JetStream)
	if err != nil {
		log.Warn().Err(err).Msg("NATS unavailable, standings cache relies on TTL only")
		return nil, nil
	}
	if err := outbox.EnsureStream(ctx, js, cfg.JetStream); err != nil {
		nc.Close()
		log.Warn().Err(err).Msg("JetStream stream unavailable, standings cache relies on TTL only")
		return nil, nil
	}

	inv := standings.NewInvalidator(js, cfg.JetStream.StreamName, cfg.JetStream.SubjectPrefix, consumerName(cfg), cache)
	return inv, nc.Close
}
