package models

import (
	"time"

	"github.com/google/uuid"
)

type RuleCategory string

const (
	RuleCategoryChallenge RuleCategory = "CHALLENGE"
	RuleCategoryTribal    RuleCategory = "TRIBAL"
	RuleCategoryAdvantage RuleCategory = "ADVANTAGE"
	RuleCategorySocial    RuleCategory = "SOCIAL"
	RuleCategoryPenalty   RuleCategory = "PENALTY"
)

// ScoringRule is a scoreable event with its point value. Penalties carry negative points.
type ScoringRule struct {
	ID          uuid.UUID    `json:"id"`
	Code        string       `json:"code"`
	Description string       `json:"description"`
	Points      int          `json:"points"`
	Category    RuleCategory `json:"category"`
	IsNegative  bool         `json:"is_negative"`
}

// EpisodeScore is one row of the scoring ledger
type EpisodeScore struct {
	EpisodeID  uuid.UUID `json:"episode_id"`
	CastawayID uuid.UUID `json:"castaway_id"`
	RuleID     uuid.UUID `json:"rule_id"`
	Quantity   int       `json:"quantity"`
	Points     int       `json:"points"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CastawayWeekTotal is the summed points of one castaway for the episode of one week
type CastawayWeekTotal struct {
	CastawayID uuid.UUID `json:"castaway_id"`
	Week       int       `json:"week"`
	Points     int       `json:"points"`
}
