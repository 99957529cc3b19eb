package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/rs/zerolog/log"
)

// ScoringRepository defines what the app layer needs from the repository
type ScoringRepository interface {
	RecordScore(ctx context.Context, p recordParams) (*RecordResult, error)
	FinalizeEpisode(ctx context.Context, episodeID uuid.UUID, at time.Time) (*models.Episode, error)
	GetEpisode(ctx context.Context, id uuid.UUID) (*models.Episode, error)
	CastawayExists(ctx context.Context, id uuid.UUID) error
	GetEpisodeTotal(ctx context.Context, episodeID, castawayID uuid.UUID) (int, error)
	ListEpisodeScores(ctx context.Context, episodeID uuid.UUID) ([]models.EpisodeScore, error)
	ListRules(ctx context.Context) ([]models.ScoringRule, error)
	UpsertRule(ctx context.Context, rule models.ScoringRule) (*models.ScoringRule, error)
}

// StandingsRefresher keeps derived standings in step with the ledger
type StandingsRefresher interface {
	InvalidateSeason(seasonID uuid.UUID)
	RefreshSeason(ctx context.Context, seasonID uuid.UUID) error
}

// App is the scoring ledger
type App struct {
	repo      ScoringRepository
	clock     clockwork.Clock
	standings StandingsRefresher
}

// NewApp creates a new scoring App. standings may be nil.
func NewApp(repo ScoringRepository, clock clockwork.Clock, standings StandingsRefresher) *App {
	return &App{
		repo:      repo,
		clock:     clock,
		standings: standings,
	}
}

// RecordEpisodeScore sets the quantity of one rule for a castaway in an episode. Writing the
// same values again changes nothing; a new quantity replaces the old one; 0 removes the row.
func (a *App) RecordEpisodeScore(ctx context.Context, episodeID, castawayID, ruleID uuid.UUID, quantity int) (*RecordResult, error) {
	if quantity < 0 {
		return nil, apperrors.Validation("quantity", "must not be negative, got %d", quantity)
	}
	if quantity > math.MaxInt32 {
		return nil, apperrors.Validation("quantity", "must be at most %d, got %d", math.MaxInt32, quantity)
	}

	result, err := a.repo.RecordScore(ctx, recordParams{
		EpisodeID:  episodeID,
		CastawayID: castawayID,
		RuleID:     ruleID,
		Quantity:   quantity,
		At:         a.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record episode score: %w", err)
	}

	if a.standings != nil {
		a.standings.InvalidateSeason(result.SeasonID)
	}

	event := log.Info().
		Str("episode_id", episodeID.String()).
		Str("castaway_id", castawayID.String()).
		Str("rule_id", ruleID.String()).
		Int("quantity", quantity)
	if result.Score != nil {
		event = event.Int("points", result.Score.Points)
	}
	event.Bool("deleted", result.Deleted).Msg("episode score recorded")
	return result, nil
}

// FinalizeEpisode locks an episode's scores. Finalizing twice is a Conflict. Standings of the
// season are recomputed afterwards; a failed recompute only leaves the cache cold.
func (a *App) FinalizeEpisode(ctx context.Context, episodeID uuid.UUID) (*models.Episode, error) {
	ep, err := a.repo.FinalizeEpisode(ctx, episodeID, a.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to finalize episode: %w", err)
	}

	log.Info().Str("episode_id", ep.ID.String()).Int("week", ep.Week).Msg("episode finalized")

	if a.standings != nil {
		a.standings.InvalidateSeason(ep.SeasonID)
		if err := a.standings.RefreshSeason(ctx, ep.SeasonID); err != nil {
			log.Warn().Err(err).Str("season_id", ep.SeasonID.String()).Msg("failed to refresh standings after finalize")
		}
	}
	return ep, nil
}

// GetEpisodeTotal returns a castaway's summed points for one episode
func (a *App) GetEpisodeTotal(ctx context.Context, episodeID, castawayID uuid.UUID) (int, error) {
	if _, err := a.repo.GetEpisode(ctx, episodeID); err != nil {
		return 0, fmt.Errorf("failed to get episode: %w", err)
	}
	if err := a.repo.CastawayExists(ctx, castawayID); err != nil {
		return 0, fmt.Errorf("failed to get castaway: %w", err)
	}

	total, err := a.repo.GetEpisodeTotal(ctx, episodeID, castawayID)
	if err != nil {
		return 0, fmt.Errorf("failed to get episode total: %w", err)
	}
	return total, nil
}

// ListEpisodeScores returns an episode's ledger rows
func (a *App) ListEpisodeScores(ctx context.Context, episodeID uuid.UUID) ([]models.EpisodeScore, error) {
	if _, err := a.repo.GetEpisode(ctx, episodeID); err != nil {
		return nil, fmt.Errorf("failed to get episode: %w", err)
	}

	scores, err := a.repo.ListEpisodeScores(ctx, episodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list episode scores: %w", err)
	}
	return scores, nil
}

// ListRules returns the scoring rule catalog
func (a *App) ListRules(ctx context.Context) ([]models.ScoringRule, error) {
	rules, err := a.repo.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scoring rules: %w", err)
	}
	return rules, nil
}

// ImportRules creates or updates rules by code
func (a *App) ImportRules(ctx context.Context, rules []models.ScoringRule) ([]models.ScoringRule, error) {
	out := make([]models.ScoringRule, 0, len(rules))
	for _, rule := range rules {
		rule.Code = strings.ToUpper(strings.TrimSpace(rule.Code))
		rule.IsNegative = rule.Points < 0
		if err := validateRule(rule); err != nil {
			return nil, err
		}

		saved, err := a.repo.UpsertRule(ctx, rule)
		if err != nil {
			return nil, fmt.Errorf("failed to import rule %s: %w", rule.Code, err)
		}
		out = append(out, *saved)
	}

	log.Info().Int("rules", len(out)).Msg("scoring rules imported")
	return out, nil
}

func validateRule(rule models.ScoringRule) error {
	if rule.Code == "" {
		return apperrors.Validation("code", "is required")
	}
	if rule.Points == 0 {
		return apperrors.Validation("points", "rule %s must be worth a non-zero number of points", rule.Code)
	}
	if rule.Points < math.MinInt32 || rule.Points > math.MaxInt32 {
		return apperrors.Validation("points", "rule %s points %d out of range", rule.Code, rule.Points)
	}
	switch rule.Category {
	case models.RuleCategoryChallenge, models.RuleCategoryTribal, models.RuleCategoryAdvantage,
		models.RuleCategorySocial, models.RuleCategoryPenalty:
		return nil
	default:
		return apperrors.Validation("category", "invalid category %q for rule %s", rule.Category, rule.Code)
	}
}
