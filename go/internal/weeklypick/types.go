package weeklypick

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/models"
)

// SubmitWeeklyPickRequest chooses a castaway for one week. Submitting again for the same
// week replaces the earlier choice until that week's episode is finalized.
type SubmitWeeklyPickRequest struct {
	LeagueID   string `json:"league_id"`
	UserID     string `json:"user_id"`
	Week       int    `json:"week"`
	CastawayID string `json:"castaway_id"`
}

type ListWeeklyPicksRequest struct {
	LeagueID string `json:"league_id"`
}

type ListWeeklyPicksResponse struct {
	Picks []models.WeeklyPick `json:"picks"`
}

type submitParams struct {
	LeagueID   uuid.UUID
	UserID     uuid.UUID
	Week       int
	CastawayID uuid.UUID
	At         time.Time
}
