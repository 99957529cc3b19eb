package models

import (
	"time"

	"github.com/google/uuid"
)

// StandingsEntry is a user's aggregated points in a league. Derived, never a source of truth.
type StandingsEntry struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Total       int       `json:"total"`
	BestEpisode int       `json:"best_episode"`
	JoinedAt    time.Time `json:"joined_at"`
}

// RankedEntry is a standings entry with its leaderboard position
type RankedEntry struct {
	StandingsEntry
	Rank int `json:"rank"`
}
