package weeklypick

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/castaways"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/events"
	"github.com/mcdev12/castaway/go/internal/leagues"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/outbox"
	"github.com/mcdev12/castaway/go/internal/scoring"
	"github.com/mcdev12/castaway/go/internal/sqlutil"
)

// Querier defines the reads the repository makes outside a transaction
type Querier interface {
	GetLeague(ctx context.Context, id uuid.UUID) (db.League, error)
	ListWeeklyPicksByLeague(ctx context.Context, leagueID uuid.UUID) ([]db.WeeklyPick, error)
}

// Repository implements weekly pick data access operations
type Repository struct {
	queries Querier
	pool    sqlutil.TxBeginner
}

// NewRepository creates a new weekly pick repository
func NewRepository(querier Querier, pool sqlutil.TxBeginner) *Repository {
	return &Repository{
		queries: querier,
		pool:    pool,
	}
}

// Submit checks and stores a pick with its WeeklyPickSubmitted event in one transaction
func (r *Repository) Submit(ctx context.Context, p submitParams) (*models.WeeklyPick, error) {
	var saved db.WeeklyPick
	err := sqlutil.Run(ctx, r.pool, db.NewTx, func(q *db.Queries) error {
		l, err := q.GetLeague(ctx, p.LeagueID)
		if err != nil {
			return sqlutil.Classify("get league", "league", p.LeagueID, err)
		}

		m, err := q.GetMembership(ctx, db.GetMembershipParams{LeagueID: p.LeagueID, UserID: p.UserID})
		if err != nil {
			return sqlutil.Classify("get membership", "active member", p.UserID, err)
		}
		if !m.IsActive {
			return apperrors.NotFound("active member", p.UserID)
		}

		c, err := q.GetCastaway(ctx, p.CastawayID)
		if err != nil {
			return sqlutil.Classify("get castaway", "castaway", p.CastawayID, err)
		}

		rows, err := q.ListEpisodesBySeason(ctx, l.SeasonID)
		if err != nil {
			return sqlutil.Classify("list episodes", "season", l.SeasonID, err)
		}
		episodes := make([]models.Episode, len(rows))
		for i, e := range rows {
			episodes[i] = *scoring.EpisodeFromDB(e)
		}

		if err := checkPick(leagues.FromDB(l), castaways.FromDB(c), episodes, p.Week); err != nil {
			return err
		}

		saved, err = q.UpsertWeeklyPick(ctx, db.UpsertWeeklyPickParams{
			LeagueID:   p.LeagueID,
			UserID:     p.UserID,
			Week:       int32(p.Week),
			CastawayID: p.CastawayID,
			CreatedAt:  p.At,
		})
		if err != nil {
			return sqlutil.Classify("upsert weekly pick", "weekly pick", p.UserID, err)
		}

		return outbox.Write(ctx, q, p.LeagueID, events.WeeklyPickSubmitted, events.WeeklyPickPayload{
			LeagueID:   p.LeagueID,
			UserID:     p.UserID,
			Week:       p.Week,
			CastawayID: p.CastawayID,
		})
	})
	if err != nil {
		return nil, err
	}
	return dbPickToModel(saved), nil
}

// List returns a league's picks ordered by week, then user
func (r *Repository) List(ctx context.Context, leagueID uuid.UUID) ([]models.WeeklyPick, error) {
	if _, err := r.queries.GetLeague(ctx, leagueID); err != nil {
		return nil, sqlutil.Classify("get league", "league", leagueID, err)
	}

	rows, err := r.queries.ListWeeklyPicksByLeague(ctx, leagueID)
	if err != nil {
		return nil, sqlutil.Classify("list weekly picks", "league", leagueID, err)
	}
	out := make([]models.WeeklyPick, len(rows))
	for i, p := range rows {
		out[i] = *dbPickToModel(p)
	}
	return out, nil
}

func dbPickToModel(p db.WeeklyPick) *models.WeeklyPick {
	return &models.WeeklyPick{
		LeagueID:   p.LeagueID,
		UserID:     p.UserID,
		Week:       int(p.Week),
		CastawayID: p.CastawayID,
		CreatedAt:  p.CreatedAt,
	}
}
