package models

import (
	"time"

	"github.com/google/uuid"
)

// Season groups the castaways, episodes and leagues of one airing
type Season struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Castaway is a contestant that can be drafted, picked and scored
type Castaway struct {
	ID             uuid.UUID `json:"id"`
	SeasonID       uuid.UUID `json:"season_id"`
	Name           string    `json:"name"`
	Tribe          *string   `json:"tribe,omitempty"`
	Eliminated     bool      `json:"eliminated"`
	EliminatedWeek *int      `json:"eliminated_week,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Episode is the scoring unit that events and points are recorded against
type Episode struct {
	ID          uuid.UUID  `json:"id"`
	SeasonID    uuid.UUID  `json:"season_id"`
	Week        int        `json:"week"`
	Title       string     `json:"title"`
	AirDate     *time.Time `json:"air_date,omitempty"`
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
}

// IsFinalized reports whether scoring edits are locked
func (e *Episode) IsFinalized() bool {
	return e.FinalizedAt != nil
}
