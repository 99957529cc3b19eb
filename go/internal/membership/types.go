package membership

import (
	"time"

	"github.com/google/uuid"
)

// JoinLeagueRequest asks for a seat in a league. PaymentRef is required for leagues with an
// entry fee and references a payment captured elsewhere.
type JoinLeagueRequest struct {
	LeagueID   string `json:"league_id"`
	UserID     string `json:"user_id"`
	PaymentRef string `json:"payment_ref,omitempty"`
}

type LeaveLeagueRequest struct {
	LeagueID string `json:"league_id"`
	UserID   string `json:"user_id"`
}

// Reason explains a join outcome
type Reason string

const (
	ReasonJoined        Reason = "JOINED"
	ReasonAlreadyMember Reason = "ALREADY_MEMBER"
)

// JoinResult is the outcome of a join. Joined is true whenever the user holds an active
// membership afterwards; AlreadyMember marks the idempotent case where no seat was taken.
// A full league is an error, not a result.
type JoinResult struct {
	Joined         bool      `json:"joined"`
	AlreadyMember  bool      `json:"already_member"`
	Reason         Reason    `json:"reason"`
	CurrentPlayers int       `json:"current_players"`
	JoinedAt       time.Time `json:"joined_at"`
}

type LeaveResult struct {
	Left           bool `json:"left"`
	CurrentPlayers int  `json:"current_players"`
}

// joinParams is the validated form of JoinLeagueRequest
type joinParams struct {
	LeagueID   uuid.UUID
	UserID     uuid.UUID
	PaymentRef *string
	JoinedAt   time.Time
}
