package standings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// refreshConcurrency bounds how many leagues RefreshSeason recomputes at once.
const refreshConcurrency = 4

// StandingsRepository defines what the app layer needs from the repository
type StandingsRepository interface {
	LoadInputs(ctx context.Context, leagueID uuid.UUID) (*Inputs, error)
	ListLeagueIDs(ctx context.Context, seasonID uuid.UUID) ([]uuid.UUID, error)
}

// App aggregates and ranks league standings
type App struct {
	repo   StandingsRepository
	ranker *Ranker
	cache  *Cache
}

// NewApp creates a new standings App. cache may be nil, in which case every read recomputes.
func NewApp(repo StandingsRepository, ranker *Ranker, cache *Cache) *App {
	if ranker == nil {
		ranker = NewRanker(nil)
	}
	return &App{
		repo:   repo,
		ranker: ranker,
		cache:  cache,
	}
}

// ComputeStandings sums each active member's owned castaway points, in join order
func (a *App) ComputeStandings(ctx context.Context, leagueID uuid.UUID) ([]models.StandingsEntry, error) {
	in, err := a.repo.LoadInputs(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to load standings inputs: %w", err)
	}
	return Compute(in.Members, in.Ownerships, in.WeekTotals, in.Cutoff), nil
}

// GetStandings returns the ranked leaderboard of a league
func (a *App) GetStandings(ctx context.Context, leagueID uuid.UUID) ([]models.RankedEntry, error) {
	if a.cache != nil {
		if ranked, ok := a.cache.Get(leagueID); ok {
			return ranked, nil
		}
	}
	return a.compute(ctx, leagueID)
}

func (a *App) compute(ctx context.Context, leagueID uuid.UUID) ([]models.RankedEntry, error) {
	var version uint64
	if a.cache != nil {
		version = a.cache.Version()
	}

	in, err := a.repo.LoadInputs(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to load standings inputs: %w", err)
	}
	ranked := a.ranker.Rank(Compute(in.Members, in.Ownerships, in.WeekTotals, in.Cutoff))

	if a.cache != nil {
		a.cache.Put(version, leagueID, in.League.SeasonID, ranked)
	}

	log.Debug().
		Str("league_id", leagueID.String()).
		Int("entries", len(ranked)).
		Msg("standings computed")
	return ranked, nil
}

// InvalidateLeague drops a league's cached standings
func (a *App) InvalidateLeague(leagueID uuid.UUID) {
	if a.cache != nil {
		a.cache.InvalidateLeague(leagueID)
	}
}

// InvalidateSeason drops the cached standings of every league in a season
func (a *App) InvalidateSeason(seasonID uuid.UUID) {
	if a.cache != nil {
		a.cache.InvalidateSeason(seasonID)
	}
}

// RefreshSeason recomputes the standings of every league in a season and warms the cache
func (a *App) RefreshSeason(ctx context.Context, seasonID uuid.UUID) error {
	ids, err := a.repo.ListLeagueIDs(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("failed to list season leagues: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshConcurrency)
	for _, id := range ids {
		g.Go(func() error {
			if _, err := a.compute(gctx, id); err != nil {
				return fmt.Errorf("league %s: %w", id, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to refresh season standings: %w", err)
	}

	log.Info().
		Str("season_id", seasonID.String()).
		Int("leagues", len(ids)).
		Msg("season standings refreshed")
	return nil
}
