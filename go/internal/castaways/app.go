package castaways

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/rs/zerolog/log"
)

// CastawayRepository defines what the app layer needs from the repository
type CastawayRepository interface {
	GetCastaway(ctx context.Context, id uuid.UUID) (*models.Castaway, error)
	ListBySeason(ctx context.Context, seasonID uuid.UUID, draftableOnly bool) ([]models.Castaway, error)
	SetElimination(ctx context.Context, id uuid.UUID, week *int) (*models.Castaway, error)
}

// SeasonInvalidator drops derived state of every league playing a season
type SeasonInvalidator interface {
	InvalidateSeason(seasonID uuid.UUID)
}

// App is the castaway pool provider
type App struct {
	repo        CastawayRepository
	invalidator SeasonInvalidator
}

// NewApp creates a new castaways App. invalidator may be nil.
func NewApp(repo CastawayRepository, invalidator SeasonInvalidator) *App {
	return &App{
		repo:        repo,
		invalidator: invalidator,
	}
}

// GetCastaway retrieves a castaway by ID
func (a *App) GetCastaway(ctx context.Context, id uuid.UUID) (*models.Castaway, error) {
	c, err := a.repo.GetCastaway(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get castaway: %w", err)
	}
	return c, nil
}

// ListBySeason retrieves the castaway pool of a season
func (a *App) ListBySeason(ctx context.Context, seasonID uuid.UUID, draftableOnly bool) ([]models.Castaway, error) {
	list, err := a.repo.ListBySeason(ctx, seasonID, draftableOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list castaways: %w", err)
	}
	return list, nil
}

// RecordElimination marks a castaway eliminated in week, or reinstates it when week is nil.
// Standings of leagues that cut off at elimination change, so the season is invalidated.
func (a *App) RecordElimination(ctx context.Context, id uuid.UUID, week *int) (*models.Castaway, error) {
	if week != nil && *week < 1 {
		return nil, apperrors.Validation("week", "must be at least 1, got %d", *week)
	}

	c, err := a.repo.SetElimination(ctx, id, week)
	if err != nil {
		return nil, fmt.Errorf("failed to record elimination: %w", err)
	}

	if a.invalidator != nil {
		a.invalidator.InvalidateSeason(c.SeasonID)
	}

	event := log.Info().Str("castaway_id", c.ID.String()).Str("name", c.Name)
	if week != nil {
		event.Int("week", *week).Msg("castaway eliminated")
	} else {
		event.Msg("castaway reinstated")
	}
	return c, nil
}
