package weeklypick

import (
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/models"
)

// checkPick applies the pick rules against the state read inside the submit transaction.
// episodes are the league's season episodes; a week without an episode yet is open.
func checkPick(league *models.League, castaway *models.Castaway, episodes []models.Episode, week int) error {
	if league.ScoringMode != models.ScoringModeWeeklyPick {
		return apperrors.Conflict("league %s scores by %s, not weekly picks", league.ID, league.ScoringMode)
	}
	if castaway.SeasonID != league.SeasonID {
		return apperrors.Validation("castaway_id", "castaway %s is not in the league's season", castaway.ID)
	}
	if castaway.Eliminated && (castaway.EliminatedWeek == nil || week > *castaway.EliminatedWeek) {
		return apperrors.Validation("castaway_id", "castaway %s is eliminated", castaway.ID)
	}
	for _, e := range episodes {
		if e.Week == week && e.IsFinalized() {
			return apperrors.Conflict("week %d is finalized", week)
		}
	}
	return nil
}
