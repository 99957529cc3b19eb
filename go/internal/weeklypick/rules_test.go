package weeklypick

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCheckPick(t *testing.T) {
	season := uuid.New()
	league := &models.League{ID: uuid.New(), SeasonID: season, ScoringMode: models.ScoringModeWeeklyPick}
	finalized := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	episodes := []models.Episode{
		{Week: 1, SeasonID: season, FinalizedAt: &finalized},
		{Week: 2, SeasonID: season},
	}
	week2 := 2

	tests := []struct {
		name     string
		league   *models.League
		castaway models.Castaway
		week     int
		check    func(error) bool
	}{
		{
			name:     "open week",
			league:   league,
			castaway: models.Castaway{ID: uuid.New(), SeasonID: season},
			week:     2,
		},
		{
			name:     "week without an episode yet",
			league:   league,
			castaway: models.Castaway{ID: uuid.New(), SeasonID: season},
			week:     5,
		},
		{
			name:     "finalized week",
			league:   league,
			castaway: models.Castaway{ID: uuid.New(), SeasonID: season},
			week:     1,
			check:    apperrors.IsConflict,
		},
		{
			name:     "draft league",
			league:   &models.League{ID: league.ID, SeasonID: season, ScoringMode: models.ScoringModeDraft},
			castaway: models.Castaway{ID: uuid.New(), SeasonID: season},
			week:     2,
			check:    apperrors.IsConflict,
		},
		{
			name:     "castaway from another season",
			league:   league,
			castaway: models.Castaway{ID: uuid.New(), SeasonID: uuid.New()},
			week:     2,
			check:    apperrors.IsValidation,
		},
		{
			name:     "eliminated before the week",
			league:   league,
			castaway: models.Castaway{ID: uuid.New(), SeasonID: season, Eliminated: true, EliminatedWeek: &week2},
			week:     3,
			check:    apperrors.IsValidation,
		},
		{
			name:     "eliminated in the week itself",
			league:   league,
			castaway: models.Castaway{ID: uuid.New(), SeasonID: season, Eliminated: true, EliminatedWeek: &week2},
			week:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkPick(tt.league, &tt.castaway, episodes, tt.week)
			if tt.check == nil {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
		})
	}
}
