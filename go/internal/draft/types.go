package draft

import (
	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/models"
)

// RunDraftRequest starts a league's draft. Seed replays a recorded draft; when unset a fresh
// seed is drawn and recorded on the league.
type RunDraftRequest struct {
	LeagueID string `json:"league_id"`
	Seed     *int64 `json:"seed,omitempty"`
}

// RunDraftResult summarizes a completed draft run
type RunDraftResult struct {
	LeagueID     uuid.UUID   `json:"league_id"`
	Seed         int64       `json:"seed"`
	TotalPicks   int         `json:"total_picks"`
	PicksByRound map[int]int `json:"picks_by_round"`
}

type LeagueRequest struct {
	LeagueID string `json:"league_id"`
}

type ResetDraftResult struct {
	LeagueID     uuid.UUID `json:"league_id"`
	DeletedPicks int64     `json:"deleted_picks"`
}

// ManualAssignRequest is a commissioner override of a single pick
type ManualAssignRequest struct {
	LeagueID   string `json:"league_id"`
	UserID     string `json:"user_id"`
	CastawayID string `json:"castaway_id"`
	Round      int    `json:"round"`
}

// SubmitRankingRequest stores a user's draft preferences, best first
type SubmitRankingRequest struct {
	LeagueID    string   `json:"league_id"`
	UserID      string   `json:"user_id"`
	CastawayIDs []string `json:"castaway_ids"`
}

type ListDraftPicksResponse struct {
	Picks []models.DraftPick `json:"picks"`
}

// assignParams is the validated form of ManualAssignRequest
type assignParams struct {
	LeagueID   uuid.UUID
	UserID     uuid.UUID
	CastawayID uuid.UUID
	Round      int
}
