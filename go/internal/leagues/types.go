package leagues

import (
	"github.com/mcdev12/castaway/go/internal/models"
)

// CreateLeagueRequest represents the data needed to create a new league
type CreateLeagueRequest struct {
	Name            string                 `json:"name"`
	SeasonID        string                 `json:"season_id"`
	MaxPlayers      int                    `json:"max_players"`
	EntryFee        bool                   `json:"entry_fee"`
	PicksPerUser    int                    `json:"picks_per_user"`
	ScoringMode     models.ScoringMode     `json:"scoring_mode"`
	OwnershipCutoff models.OwnershipCutoff `json:"ownership_cutoff"`
}

// GetLeagueRequest identifies a league
type GetLeagueRequest struct {
	LeagueID string `json:"league_id"`
}

// ListLeaguesRequest selects the leagues of a season
type ListLeaguesRequest struct {
	SeasonID string `json:"season_id"`
}

type ListLeaguesResponse struct {
	Leagues []models.League `json:"leagues"`
}

type ListMembersResponse struct {
	Members []models.Member `json:"members"`
}
