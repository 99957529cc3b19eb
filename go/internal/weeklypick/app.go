package weeklypick

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/rs/zerolog/log"
)

// WeeklyPickRepository defines what the app layer needs from the repository
type WeeklyPickRepository interface {
	Submit(ctx context.Context, p submitParams) (*models.WeeklyPick, error)
	List(ctx context.Context, leagueID uuid.UUID) ([]models.WeeklyPick, error)
}

// LeagueInvalidator drops derived state of a league
type LeagueInvalidator interface {
	InvalidateLeague(leagueID uuid.UUID)
}

// App handles weekly picks for WEEKLY_PICK leagues
type App struct {
	repo        WeeklyPickRepository
	clock       clockwork.Clock
	invalidator LeagueInvalidator
}

// NewApp creates a new weekly pick App. invalidator may be nil.
func NewApp(repo WeeklyPickRepository, clock clockwork.Clock, invalidator LeagueInvalidator) *App {
	return &App{
		repo:        repo,
		clock:       clock,
		invalidator: invalidator,
	}
}

// SubmitWeeklyPick records userID's castaway for week
func (a *App) SubmitWeeklyPick(ctx context.Context, leagueID, userID uuid.UUID, week int, castawayID uuid.UUID) (*models.WeeklyPick, error) {
	if week < 1 {
		return nil, apperrors.Validation("week", "must be at least 1, got %d", week)
	}

	pick, err := a.repo.Submit(ctx, submitParams{
		LeagueID:   leagueID,
		UserID:     userID,
		Week:       week,
		CastawayID: castawayID,
		At:         a.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit weekly pick: %w", err)
	}

	if a.invalidator != nil {
		a.invalidator.InvalidateLeague(leagueID)
	}

	log.Info().
		Str("league_id", leagueID.String()).
		Str("user_id", userID.String()).
		Int("week", week).
		Str("castaway_id", castawayID.String()).
		Msg("weekly pick submitted")
	return pick, nil
}

// ListWeeklyPicks returns every pick made in a league
func (a *App) ListWeeklyPicks(ctx context.Context, leagueID uuid.UUID) ([]models.WeeklyPick, error) {
	picks, err := a.repo.List(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly picks: %w", err)
	}
	return picks, nil
}
