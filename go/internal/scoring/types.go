package scoring

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/models"
)

// RecordEpisodeScoreRequest sets how many times a castaway triggered a rule in an episode
type RecordEpisodeScoreRequest struct {
	EpisodeID  string `json:"episode_id"`
	CastawayID string `json:"castaway_id"`
	RuleID     string `json:"rule_id"`
	Quantity   int    `json:"quantity"`
}

// RecordResult is the ledger row after a write. Score is nil when quantity 0 removed the row.
type RecordResult struct {
	SeasonID uuid.UUID            `json:"season_id"`
	Score    *models.EpisodeScore `json:"score,omitempty"`
	Deleted  bool                 `json:"deleted"`
}

type EpisodeRequest struct {
	EpisodeID string `json:"episode_id"`
}

type GetEpisodeTotalRequest struct {
	EpisodeID  string `json:"episode_id"`
	CastawayID string `json:"castaway_id"`
}

type EpisodeTotalResponse struct {
	EpisodeID  uuid.UUID `json:"episode_id"`
	CastawayID uuid.UUID `json:"castaway_id"`
	Total      int       `json:"total"`
}

type ListRulesRequest struct{}

type ListRulesResponse struct {
	Rules []models.ScoringRule `json:"rules"`
}

type ListEpisodeScoresResponse struct {
	Scores []models.EpisodeScore `json:"scores"`
}

// recordParams is the validated form of RecordEpisodeScoreRequest
type recordParams struct {
	EpisodeID  uuid.UUID
	CastawayID uuid.UUID
	RuleID     uuid.UUID
	Quantity   int
	At         time.Time
}
