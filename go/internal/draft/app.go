package draft

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/draft/engine"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/rs/zerolog/log"
)

// DraftRepository defines what the app layer needs from the repository
type DraftRepository interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	IsActiveMember(ctx context.Context, leagueID, userID uuid.UUID) (bool, error)
	ListSeasonCastaways(ctx context.Context, seasonID uuid.UUID) ([]models.Castaway, error)
	UpsertRanking(ctx context.Context, ranking models.Ranking) (*models.Ranking, error)
	ListDraftPicks(ctx context.Context, leagueID uuid.UUID) ([]models.DraftPick, error)
	RunDraft(ctx context.Context, leagueID uuid.UUID, seed int64, at time.Time, plan Planner) (*RunDraftResult, error)
	ResetDraft(ctx context.Context, leagueID uuid.UUID, at time.Time) (*ResetDraftResult, error)
	AssignPick(ctx context.Context, p assignParams) (*models.DraftPick, error)
}

// LeagueInvalidator drops derived state of a league
type LeagueInvalidator interface {
	InvalidateLeague(leagueID uuid.UUID)
}

// SeedFunc draws the seed of a new draft run
type SeedFunc func() int64

// App handles draft business logic
type App struct {
	repo        DraftRepository
	clock       clockwork.Clock
	seed        SeedFunc
	invalidator LeagueInvalidator
}

// NewApp creates a new draft App. A nil seed draws from math/rand. invalidator may be nil.
func NewApp(repo DraftRepository, clock clockwork.Clock, seed SeedFunc, invalidator LeagueInvalidator) *App {
	if seed == nil {
		seed = rand.Int63
	}
	return &App{
		repo:        repo,
		clock:       clock,
		seed:        seed,
		invalidator: invalidator,
	}
}

// RunDraft runs and persists a league's snake draft. A nil seed draws a new one; passing a
// recorded seed replays that draft for the same inputs.
func (a *App) RunDraft(ctx context.Context, leagueID uuid.UUID, seed *int64) (*RunDraftResult, error) {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		s = a.seed()
	}

	result, err := a.repo.RunDraft(ctx, leagueID, s, a.clock.Now().UTC(), func(league *models.League, in engine.Input) ([]engine.Assignment, error) {
		if league.ScoringMode != models.ScoringModeDraft {
			return nil, apperrors.Conflict("league %s scores weekly picks and has no draft", league.ID)
		}
		return engine.RunDraft(in, engine.NewSeededSource(s))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to run draft: %w", err)
	}

	a.invalidate(leagueID)
	log.Info().
		Str("league_id", leagueID.String()).
		Int64("seed", result.Seed).
		Int("total_picks", result.TotalPicks).
		Msg("draft completed")
	return result, nil
}

// ResetDraft deletes every pick of a league and returns the draft to pending
func (a *App) ResetDraft(ctx context.Context, leagueID uuid.UUID) (*ResetDraftResult, error) {
	result, err := a.repo.ResetDraft(ctx, leagueID, a.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to reset draft: %w", err)
	}

	a.invalidate(leagueID)
	log.Info().Str("league_id", leagueID.String()).Int64("deleted_picks", result.DeletedPicks).Msg("draft reset")
	return result, nil
}

// ManualAssign sets the castaway of one (league, user, round) pick, bypassing the engine
func (a *App) ManualAssign(ctx context.Context, leagueID, userID, castawayID uuid.UUID, round int) (*models.DraftPick, error) {
	if round < 1 {
		return nil, apperrors.Validation("round", "must be at least 1, got %d", round)
	}

	pick, err := a.repo.AssignPick(ctx, assignParams{
		LeagueID:   leagueID,
		UserID:     userID,
		CastawayID: castawayID,
		Round:      round,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assign pick: %w", err)
	}

	a.invalidate(leagueID)
	log.Info().
		Str("league_id", leagueID.String()).
		Str("user_id", userID.String()).
		Str("castaway_id", castawayID.String()).
		Int("round", round).
		Msg("pick assigned manually")
	return pick, nil
}

// SubmitRanking stores a member's draft preferences. Rankings lock once the draft completed.
func (a *App) SubmitRanking(ctx context.Context, leagueID, userID uuid.UUID, castawayIDs []uuid.UUID) (*models.Ranking, error) {
	if len(castawayIDs) == 0 {
		return nil, apperrors.Validation("castaway_ids", "must not be empty")
	}

	league, err := a.repo.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	if league.DraftStatus == models.DraftStatusCompleted {
		return nil, apperrors.Conflict("draft for league %s already completed", leagueID)
	}

	member, err := a.repo.IsActiveMember(ctx, leagueID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !member {
		return nil, apperrors.NotFound("active member", userID)
	}

	pool, err := a.repo.ListSeasonCastaways(ctx, league.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list castaways: %w", err)
	}
	if err := validateRanking(castawayIDs, pool); err != nil {
		return nil, err
	}

	ranking, err := a.repo.UpsertRanking(ctx, models.Ranking{
		LeagueID:    leagueID,
		UserID:      userID,
		CastawayIDs: castawayIDs,
		UpdatedAt:   a.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store ranking: %w", err)
	}

	log.Debug().
		Str("league_id", leagueID.String()).
		Str("user_id", userID.String()).
		Int("length", len(castawayIDs)).
		Msg("ranking submitted")
	return ranking, nil
}

// ListDraftPicks retrieves a league's picks in pick order
func (a *App) ListDraftPicks(ctx context.Context, leagueID uuid.UUID) ([]models.DraftPick, error) {
	if _, err := a.repo.GetLeague(ctx, leagueID); err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	picks, err := a.repo.ListDraftPicks(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list draft picks: %w", err)
	}
	return picks, nil
}

func (a *App) invalidate(leagueID uuid.UUID) {
	if a.invalidator != nil {
		a.invalidator.InvalidateLeague(leagueID)
	}
}

// validateRanking rejects duplicates and castaways outside the season's pool
func validateRanking(ids []uuid.UUID, pool []models.Castaway) error {
	known := make(map[uuid.UUID]struct{}, len(pool))
	for _, c := range pool {
		known[c.ID] = struct{}{}
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return apperrors.Validation("castaway_ids", "unknown castaway %s", id)
		}
		if _, dup := seen[id]; dup {
			return apperrors.Validation("castaway_ids", "castaway %s ranked twice", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
