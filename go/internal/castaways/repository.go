package castaways

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/events"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/outbox"
	"github.com/mcdev12/castaway/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetCastaway(ctx context.Context, id uuid.UUID) (db.Castaway, error)
	ListCastawaysBySeason(ctx context.Context, seasonID uuid.UUID) ([]db.Castaway, error)
	ListDraftableCastaways(ctx context.Context, seasonID uuid.UUID) ([]db.Castaway, error)
}

// Repository implements castaway pool data access operations
type Repository struct {
	queries Querier
	pool    sqlutil.TxBeginner
}

// NewRepository creates a new castaways repository. Writes run in transactions begun on pool.
func NewRepository(querier Querier, pool sqlutil.TxBeginner) *Repository {
	return &Repository{
		queries: querier,
		pool:    pool,
	}
}

// GetCastaway retrieves a castaway by ID
func (r *Repository) GetCastaway(ctx context.Context, id uuid.UUID) (*models.Castaway, error) {
	c, err := r.queries.GetCastaway(ctx, id)
	if err != nil {
		return nil, sqlutil.Classify("get castaway", "castaway", id, err)
	}
	return FromDB(c), nil
}

// ListBySeason retrieves a season's castaways ordered by name
func (r *Repository) ListBySeason(ctx context.Context, seasonID uuid.UUID, draftableOnly bool) ([]models.Castaway, error) {
	list := r.queries.ListCastawaysBySeason
	if draftableOnly {
		list = r.queries.ListDraftableCastaways
	}

	rows, err := list(ctx, seasonID)
	if err != nil {
		return nil, sqlutil.Classify("list castaways", "season", seasonID, err)
	}
	return ListFromDB(rows), nil
}

// SetElimination records (or clears) a castaway's elimination week together with its
// CastawayEliminated outbox event.
func (r *Repository) SetElimination(ctx context.Context, id uuid.UUID, week *int) (*models.Castaway, error) {
	var updated db.Castaway
	err := sqlutil.Run(ctx, r.pool, db.NewTx, func(q *db.Queries) error {
		c, err := q.SetCastawayElimination(ctx, db.SetCastawayEliminationParams{
			ID:             id,
			EliminatedWeek: sqlutil.ToPgInt4(week),
		})
		if err != nil {
			return sqlutil.Classify("set castaway elimination", "castaway", id, err)
		}
		updated = c

		return outbox.Write(ctx, q, c.SeasonID, events.CastawayEliminated, events.CastawayEliminatedPayload{
			SeasonID:       c.SeasonID,
			CastawayID:     c.ID,
			EliminatedWeek: week,
		})
	})
	if err != nil {
		return nil, err
	}
	return FromDB(updated), nil
}

// FromDB converts a database castaway to the domain model
func FromDB(c db.Castaway) *models.Castaway {
	return &models.Castaway{
		ID:             c.ID,
		SeasonID:       c.SeasonID,
		Name:           c.Name,
		Tribe:          sqlutil.FromPgText(c.Tribe),
		Eliminated:     c.Eliminated,
		EliminatedWeek: sqlutil.FromPgInt4(c.EliminatedWeek),
		CreatedAt:      c.CreatedAt,
	}
}

// ListFromDB converts database castaways to domain models, keeping their order
func ListFromDB(rows []db.Castaway) []models.Castaway {
	out := make([]models.Castaway, len(rows))
	for i, c := range rows {
		out[i] = *FromDB(c)
	}
	return out
}

