package leagues

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/rs/zerolog/log"
)

// LeaguesRepository defines what the app layer needs from the repository
type LeaguesRepository interface {
	CreateLeague(ctx context.Context, seasonID uuid.UUID, req CreateLeagueRequest) (*models.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListLeaguesBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.League, error)
	ListMembers(ctx context.Context, leagueID uuid.UUID) ([]models.Member, error)
}

// App handles leagues business logic
type App struct {
	repo LeaguesRepository
}

// NewApp creates a new leagues App
func NewApp(repo LeaguesRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreateLeague creates a new league with validation. Unset modes default to a draft league
// without an elimination cutoff.
func (a *App) CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.ScoringMode == "" {
		req.ScoringMode = models.ScoringModeDraft
	}
	if req.OwnershipCutoff == "" {
		req.OwnershipCutoff = models.OwnershipCutoffNone
	}

	seasonID, err := validateCreateLeagueRequest(req)
	if err != nil {
		return nil, err
	}

	league, err := a.repo.CreateLeague(ctx, seasonID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	log.Info().
		Str("league_id", league.ID.String()).
		Str("name", league.Name).
		Int("max_players", league.MaxPlayers).
		Str("scoring_mode", string(league.ScoringMode)).
		Msg("created league")
	return league, nil
}

// GetLeague retrieves a league by ID
func (a *App) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	return league, nil
}

// ListLeaguesBySeason retrieves the leagues playing a season
func (a *App) ListLeaguesBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.League, error) {
	leagues, err := a.repo.ListLeaguesBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	return leagues, nil
}

// ListMembers retrieves a league's active members in join order
func (a *App) ListMembers(ctx context.Context, leagueID uuid.UUID) ([]models.Member, error) {
	if _, err := a.repo.GetLeague(ctx, leagueID); err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	members, err := a.repo.ListMembers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func validateCreateLeagueRequest(req CreateLeagueRequest) (uuid.UUID, error) {
	if req.Name == "" {
		return uuid.Nil, apperrors.Validation("name", "is required")
	}
	seasonID, err := uuid.Parse(req.SeasonID)
	if err != nil {
		return uuid.Nil, apperrors.Validation("season_id", "must be a UUID")
	}
	if req.MaxPlayers < 1 {
		return uuid.Nil, apperrors.Validation("max_players", "must be at least 1, got %d", req.MaxPlayers)
	}
	if req.PicksPerUser < 0 {
		return uuid.Nil, apperrors.Validation("picks_per_user", "must not be negative, got %d", req.PicksPerUser)
	}
	switch req.ScoringMode {
	case models.ScoringModeDraft, models.ScoringModeWeeklyPick:
	default:
		return uuid.Nil, apperrors.Validation("scoring_mode", "invalid scoring mode: %s", req.ScoringMode)
	}
	switch req.OwnershipCutoff {
	case models.OwnershipCutoffNone, models.OwnershipCutoffEliminationWeek:
	default:
		return uuid.Nil, apperrors.Validation("ownership_cutoff", "invalid ownership cutoff: %s", req.OwnershipCutoff)
	}
	return seasonID, nil
}
