package models

import (
	"time"

	"github.com/google/uuid"
)

// ScoringMode decides where a league's castaway ownership comes from
type ScoringMode string

const (
	ScoringModeDraft      ScoringMode = "DRAFT"
	ScoringModeWeeklyPick ScoringMode = "WEEKLY_PICK"
)

// OwnershipCutoff decides whether points stop counting once a castaway is eliminated
type OwnershipCutoff string

const (
	OwnershipCutoffNone            OwnershipCutoff = "NONE"
	OwnershipCutoffEliminationWeek OwnershipCutoff = "ELIMINATION_WEEK"
)

type DraftStatus string

const (
	DraftStatusPending   DraftStatus = "PENDING"
	DraftStatusCompleted DraftStatus = "COMPLETED"
)

// League represents an isolated competition with its own members, draft and standings
type League struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	SeasonID        uuid.UUID       `json:"season_id"`
	MaxPlayers      int             `json:"max_players"`
	CurrentPlayers  int             `json:"current_players"`
	EntryFee        bool            `json:"entry_fee"`
	PicksPerUser    int             `json:"picks_per_user"`
	ScoringMode     ScoringMode     `json:"scoring_mode"`
	OwnershipCutoff OwnershipCutoff `json:"ownership_cutoff"`
	DraftStatus     DraftStatus     `json:"draft_status"`
	DraftSeed       *int64          `json:"draft_seed,omitempty"`
	DraftedAt       *time.Time      `json:"drafted_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IsFull reports whether no further members can be admitted
func (l *League) IsFull() bool {
	return l.CurrentPlayers >= l.MaxPlayers
}

// Membership is a user's seat in a league
type Membership struct {
	LeagueID   uuid.UUID `json:"league_id"`
	UserID     uuid.UUID `json:"user_id"`
	IsActive   bool      `json:"is_active"`
	PaymentRef *string   `json:"payment_ref,omitempty"`
	JoinedAt   time.Time `json:"joined_at"`
}

// Member is an active membership joined with the user's display name
type Member struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	JoinedAt    time.Time `json:"joined_at"`
}
