package events

import (
	"time"

	"github.com/google/uuid"
)

// Event payload types shared by the writers and the consumers

// DraftCompletedPayload is the payload for a DraftCompleted event
type DraftCompletedPayload struct {
	LeagueID     uuid.UUID   `json:"league_id"`
	Seed         int64       `json:"seed"`
	TotalPicks   int         `json:"total_picks"`
	PicksByRound map[int]int `json:"picks_by_round"`
	CompletedAt  time.Time   `json:"completed_at"`
}

// DraftResetPayload is the payload for a DraftReset event
type DraftResetPayload struct {
	LeagueID     uuid.UUID `json:"league_id"`
	DeletedPicks int64     `json:"deleted_picks"`
	ResetAt      time.Time `json:"reset_at"`
}

// PickAssignedPayload is the payload for a PickAssigned event
type PickAssignedPayload struct {
	LeagueID   uuid.UUID `json:"league_id"`
	UserID     uuid.UUID `json:"user_id"`
	CastawayID uuid.UUID `json:"castaway_id"`
	Round      int       `json:"round"`
	PickNumber int       `json:"pick_number"`
}

// MembershipPayload is the payload for MemberJoined and MemberLeft events
type MembershipPayload struct {
	LeagueID       uuid.UUID `json:"league_id"`
	UserID         uuid.UUID `json:"user_id"`
	CurrentPlayers int       `json:"current_players"`
	At             time.Time `json:"at"`
}

// WeeklyPickPayload is the payload for a WeeklyPickSubmitted event
type WeeklyPickPayload struct {
	LeagueID   uuid.UUID `json:"league_id"`
	UserID     uuid.UUID `json:"user_id"`
	Week       int       `json:"week"`
	CastawayID uuid.UUID `json:"castaway_id"`
}

// ScoreRecordedPayload is the payload for a ScoreRecorded event
type ScoreRecordedPayload struct {
	SeasonID   uuid.UUID `json:"season_id"`
	EpisodeID  uuid.UUID `json:"episode_id"`
	CastawayID uuid.UUID `json:"castaway_id"`
	RuleID     uuid.UUID `json:"rule_id"`
	Quantity   int       `json:"quantity"`
	Points     int       `json:"points"`
}

// EpisodeFinalizedPayload is the payload for an EpisodeFinalized event
type EpisodeFinalizedPayload struct {
	SeasonID    uuid.UUID `json:"season_id"`
	EpisodeID   uuid.UUID `json:"episode_id"`
	Week        int       `json:"week"`
	FinalizedAt time.Time `json:"finalized_at"`
}

// CastawayEliminatedPayload is the payload for a CastawayEliminated event
type CastawayEliminatedPayload struct {
	SeasonID       uuid.UUID `json:"season_id"`
	CastawayID     uuid.UUID `json:"castaway_id"`
	EliminatedWeek *int      `json:"eliminated_week"`
}
