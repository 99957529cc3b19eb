package leagues

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateLeague(ctx context.Context, arg db.CreateLeagueParams) (db.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (db.League, error)
	GetSeason(ctx context.Context, id uuid.UUID) (db.Season, error)
	ListLeaguesBySeason(ctx context.Context, seasonID uuid.UUID) ([]db.League, error)
	ListActiveMembers(ctx context.Context, leagueID uuid.UUID) ([]db.ListActiveMembersRow, error)
}

// Repository implements league data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new leagues repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateLeague creates a new league. The season must exist.
func (r *Repository) CreateLeague(ctx context.Context, seasonID uuid.UUID, req CreateLeagueRequest) (*models.League, error) {
	if _, err := r.queries.GetSeason(ctx, seasonID); err != nil {
		return nil, sqlutil.Classify("get season", "season", seasonID, err)
	}

	league, err := r.queries.CreateLeague(ctx, db.CreateLeagueParams{
		Name:            req.Name,
		SeasonID:        seasonID,
		MaxPlayers:      int32(req.MaxPlayers),
		EntryFee:        req.EntryFee,
		PicksPerUser:    int32(req.PicksPerUser),
		ScoringMode:     string(req.ScoringMode),
		OwnershipCutoff: string(req.OwnershipCutoff),
	})
	if err != nil {
		return nil, sqlutil.Classify("create league", "league", req.Name, err)
	}
	return FromDB(league), nil
}

// GetLeague retrieves a league by ID
func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	league, err := r.queries.GetLeague(ctx, id)
	if err != nil {
		return nil, sqlutil.Classify("get league", "league", id, err)
	}
	return FromDB(league), nil
}

// ListLeaguesBySeason retrieves every league playing a season
func (r *Repository) ListLeaguesBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.League, error) {
	rows, err := r.queries.ListLeaguesBySeason(ctx, seasonID)
	if err != nil {
		return nil, sqlutil.Classify("list leagues", "season", seasonID, err)
	}

	leagues := make([]models.League, len(rows))
	for i, row := range rows {
		leagues[i] = *FromDB(row)
	}
	return leagues, nil
}

// ListMembers retrieves the active members of a league in join order
func (r *Repository) ListMembers(ctx context.Context, leagueID uuid.UUID) ([]models.Member, error) {
	rows, err := r.queries.ListActiveMembers(ctx, leagueID)
	if err != nil {
		return nil, sqlutil.Classify("list members", "league", leagueID, err)
	}
	return MembersFromDB(rows), nil
}

// FromDB converts a database league to the domain model
func FromDB(l db.League) *models.League {
	return &models.League{
		ID:              l.ID,
		Name:            l.Name,
		SeasonID:        l.SeasonID,
		MaxPlayers:      int(l.MaxPlayers),
		CurrentPlayers:  int(l.CurrentPlayers),
		EntryFee:        l.EntryFee,
		PicksPerUser:    int(l.PicksPerUser),
		ScoringMode:     models.ScoringMode(l.ScoringMode),
		OwnershipCutoff: models.OwnershipCutoff(l.OwnershipCutoff),
		DraftStatus:     models.DraftStatus(l.DraftStatus),
		DraftSeed:       sqlutil.FromPgInt8(l.DraftSeed),
		DraftedAt:       sqlutil.FromPgTimestamptz(l.DraftedAt),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

// MembersFromDB converts active member rows to domain members, keeping their order
func MembersFromDB(rows []db.ListActiveMembersRow) []models.Member {
	members := make([]models.Member, len(rows))
	for i, row := range rows {
		members[i] = models.Member{
			UserID:      row.UserID,
			DisplayName: row.DisplayName,
			JoinedAt:    row.JoinedAt,
		}
	}
	return members
}
