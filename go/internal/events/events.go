// Package events defines the domain events written to the outbox and relayed to JetStream.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type names a domain event. It is also the last token of the JetStream subject.
type Type string

const (
	DraftCompleted      Type = "DraftCompleted"
	DraftReset          Type = "DraftReset"
	PickAssigned        Type = "PickAssigned"
	MemberJoined        Type = "MemberJoined"
	MemberLeft          Type = "MemberLeft"
	WeeklyPickSubmitted Type = "WeeklyPickSubmitted"
	ScoreRecorded       Type = "ScoreRecorded"
	EpisodeFinalized    Type = "EpisodeFinalized"
	CastawayEliminated  Type = "CastawayEliminated"
)

// Scope says what the aggregate id of an event refers to.
type Scope int

const (
	ScopeLeague Scope = iota
	ScopeSeason
)

// ScopeOf returns whether t is keyed by a league or by a season.
func ScopeOf(t Type) Scope {
	switch t {
	case ScoreRecorded, EpisodeFinalized, CastawayEliminated:
		return ScopeSeason
	default:
		return ScopeLeague
	}
}

// Subject returns the JetStream subject for t under prefix.
func Subject(prefix string, t Type) string {
	return fmt.Sprintf("%s.%s", prefix, t)
}

// Envelope is the wire form published to JetStream.
type Envelope struct {
	EventID     uuid.UUID       `json:"eventId"`
	EventType   Type            `json:"eventType"`
	AggregateID uuid.UUID       `json:"aggregateId"`
	Timestamp   time.Time       `json:"timestamp"`
	Payload     json.RawMessage `json:"payload"`
}
