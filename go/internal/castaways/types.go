package castaways

import "github.com/mcdev12/castaway/go/internal/models"

// ListCastawaysRequest selects the castaway pool of a season
type ListCastawaysRequest struct {
	SeasonID string `json:"season_id"`
	// DraftableOnly drops eliminated castaways
	DraftableOnly bool `json:"draftable_only"`
}

type ListCastawaysResponse struct {
	Castaways []models.Castaway `json:"castaways"`
}

// GetCastawayRequest identifies a castaway
type GetCastawayRequest struct {
	CastawayID string `json:"castaway_id"`
}

// RecordEliminationRequest marks a castaway eliminated in a week. A nil week reinstates the
// castaway, for corrections.
type RecordEliminationRequest struct {
	CastawayID string `json:"castaway_id"`
	Week       *int   `json:"week"`
}
