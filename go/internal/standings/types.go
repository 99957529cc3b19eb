package standings

import "github.com/mcdev12/castaway/go/internal/models"

type GetStandingsRequest struct {
	LeagueID string `json:"league_id"`
}

type GetStandingsResponse struct {
	LeagueID string               `json:"league_id"`
	Entries  []models.RankedEntry `json:"entries"`
}
