package models

import (
	"time"

	"github.com/google/uuid"
)

// DraftPick is a castaway assigned to a user in a league, by the draft run or by a commissioner
type DraftPick struct {
	LeagueID   uuid.UUID `json:"league_id"`
	UserID     uuid.UUID `json:"user_id"`
	CastawayID uuid.UUID `json:"castaway_id"`
	Round      int       `json:"round"`
	PickNumber int       `json:"pick_number"` // overall pick number within the league
	Manual     bool      `json:"manual"`      // set by a commissioner override
	CreatedAt  time.Time `json:"created_at"`
}

// Ranking is a user's preference list for a league's draft, best first
type Ranking struct {
	LeagueID    uuid.UUID   `json:"league_id"`
	UserID      uuid.UUID   `json:"user_id"`
	CastawayIDs []uuid.UUID `json:"castaway_ids"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// WeeklyPick is a castaway chosen by a user for a single week
type WeeklyPick struct {
	LeagueID   uuid.UUID `json:"league_id"`
	UserID     uuid.UUID `json:"user_id"`
	Week       int       `json:"week"`
	CastawayID uuid.UUID `json:"castaway_id"`
	CreatedAt  time.Time `json:"created_at"`
}
