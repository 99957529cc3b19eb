package draft

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/castaways"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/draft/engine"
	"github.com/mcdev12/castaway/go/internal/events"
	"github.com/mcdev12/castaway/go/internal/leagues"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/outbox"
	"github.com/mcdev12/castaway/go/internal/sqlutil"
)

const constraintCastawayOnce = "draft_picks_castaway_once"

// Planner turns the locked league and its draft inputs into assignments
type Planner func(league *models.League, in engine.Input) ([]engine.Assignment, error)

// Querier defines the reads the repository makes outside a transaction
type Querier interface {
	GetLeague(ctx context.Context, id uuid.UUID) (db.League, error)
	GetMembership(ctx context.Context, arg db.GetMembershipParams) (db.Membership, error)
	ListCastawaysBySeason(ctx context.Context, seasonID uuid.UUID) ([]db.Castaway, error)
	ListDraftPicksByLeague(ctx context.Context, leagueID uuid.UUID) ([]db.DraftPick, error)
	UpsertRanking(ctx context.Context, arg db.UpsertRankingParams) (db.Ranking, error)
}

// Repository implements draft persistence
type Repository struct {
	queries Querier
	pool    sqlutil.TxBeginner
}

// NewRepository creates a new draft repository
func NewRepository(querier Querier, pool sqlutil.TxBeginner) *Repository {
	return &Repository{
		queries: querier,
		pool:    pool,
	}
}

// GetLeague retrieves a league by ID
func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	l, err := r.queries.GetLeague(ctx, id)
	if err != nil {
		return nil, sqlutil.Classify("get league", "league", id, err)
	}
	return leagues.FromDB(l), nil
}

// IsActiveMember reports whether userID holds an active seat in leagueID
func (r *Repository) IsActiveMember(ctx context.Context, leagueID, userID uuid.UUID) (bool, error) {
	m, err := r.queries.GetMembership(ctx, db.GetMembershipParams{LeagueID: leagueID, UserID: userID})
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, sqlutil.Classify("get membership", "membership", userID, err)
	}
	return m.IsActive, nil
}

// ListSeasonCastaways retrieves the full castaway pool of a season
func (r *Repository) ListSeasonCastaways(ctx context.Context, seasonID uuid.UUID) ([]models.Castaway, error) {
	rows, err := r.queries.ListCastawaysBySeason(ctx, seasonID)
	if err != nil {
		return nil, sqlutil.Classify("list castaways", "season", seasonID, err)
	}
	return castaways.ListFromDB(rows), nil
}

// UpsertRanking stores a user's ranking, replacing any earlier one
func (r *Repository) UpsertRanking(ctx context.Context, ranking models.Ranking) (*models.Ranking, error) {
	row, err := r.queries.UpsertRanking(ctx, db.UpsertRankingParams{
		LeagueID:    ranking.LeagueID,
		UserID:      ranking.UserID,
		CastawayIds: ranking.CastawayIDs,
		UpdatedAt:   ranking.UpdatedAt,
	})
	if err != nil {
		return nil, sqlutil.Classify("upsert ranking", "ranking", ranking.UserID, err)
	}
	return &models.Ranking{
		LeagueID:    row.LeagueID,
		UserID:      row.UserID,
		CastawayIDs: row.CastawayIds,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

// ListDraftPicks retrieves a league's picks in pick order
func (r *Repository) ListDraftPicks(ctx context.Context, leagueID uuid.UUID) ([]models.DraftPick, error) {
	rows, err := r.queries.ListDraftPicksByLeague(ctx, leagueID)
	if err != nil {
		return nil, sqlutil.Classify("list draft picks", "league", leagueID, err)
	}

	picks := make([]models.DraftPick, len(rows))
	for i, row := range rows {
		picks[i] = *dbPickToModel(row)
	}
	return picks, nil
}

// RunDraft locks the league, plans the draft from its members, draftable castaways and
// rankings, replaces any earlier picks and marks the draft completed with seed. Everything
// happens in one transaction: a failure anywhere leaves the pre-draft state.
func (r *Repository) RunDraft(ctx context.Context, leagueID uuid.UUID, seed int64, at time.Time, plan Planner) (*RunDraftResult, error) {
	result := &RunDraftResult{LeagueID: leagueID, Seed: seed, PicksByRound: map[int]int{}}
	err := sqlutil.Run(ctx, r.pool, db.NewTx, func(q *db.Queries) error {
		row, err := q.GetLeagueForUpdate(ctx, leagueID)
		if err != nil {
			return sqlutil.Classify("lock league", "league", leagueID, err)
		}
		league := leagues.FromDB(row)
		if league.DraftStatus == models.DraftStatusCompleted {
			return apperrors.Conflict("draft for league %s already completed; reset it first", leagueID)
		}

		in, err := loadInput(ctx, q, league)
		if err != nil {
			return err
		}

		assignments, err := plan(league, in)
		if err != nil {
			return err
		}

		if _, err := q.DeleteDraftPicksByLeague(ctx, leagueID); err != nil {
			return sqlutil.Classify("delete draft picks", "league", leagueID, err)
		}

		rows := make([]db.CopyDraftPicksParams, len(assignments))
		for i, a := range assignments {
			rows[i] = db.CopyDraftPicksParams{
				LeagueID:   leagueID,
				UserID:     a.UserID,
				CastawayID: a.CastawayID,
				Round:      int32(a.Round),
				PickNumber: int32(a.PickNumber),
			}
			result.PicksByRound[a.Round]++
		}
		if len(rows) > 0 {
			if _, err := q.CopyDraftPicks(ctx, rows); err != nil {
				return sqlutil.Classify("copy draft picks", "draft pick", leagueID, err)
			}
		}
		result.TotalPicks = len(assignments)

		if _, err := q.MarkDraftCompleted(ctx, db.MarkDraftCompletedParams{
			ID:        leagueID,
			DraftSeed: sqlutil.ToPgInt8(&seed),
			DraftedAt: sqlutil.ToPgTimestamptz(&at),
		}); err != nil {
			return sqlutil.Classify("mark draft completed", "league", leagueID, err)
		}

		return outbox.Write(ctx, q, leagueID, events.DraftCompleted, events.DraftCompletedPayload{
			LeagueID:     leagueID,
			Seed:         seed,
			TotalPicks:   result.TotalPicks,
			PicksByRound: result.PicksByRound,
			CompletedAt:  at,
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// loadInput reads the draft inputs of a locked league. Members come in join order, which is
// the base pick order.
func loadInput(ctx context.Context, q *db.Queries, league *models.League) (engine.Input, error) {
	members, err := q.ListActiveMembers(ctx, league.ID)
	if err != nil {
		return engine.Input{}, sqlutil.Classify("list members", "league", league.ID, err)
	}
	pool, err := q.ListDraftableCastaways(ctx, league.SeasonID)
	if err != nil {
		return engine.Input{}, sqlutil.Classify("list draftable castaways", "season", league.SeasonID, err)
	}
	rankings, err := q.ListRankingsByLeague(ctx, league.ID)
	if err != nil {
		return engine.Input{}, sqlutil.Classify("list rankings", "league", league.ID, err)
	}

	in := engine.Input{
		Users:        make([]uuid.UUID, len(members)),
		Castaways:    make([]uuid.UUID, len(pool)),
		Rankings:     make(map[uuid.UUID][]uuid.UUID, len(rankings)),
		PicksPerUser: league.PicksPerUser,
	}
	for i, m := range members {
		in.Users[i] = m.UserID
	}
	for i, c := range pool {
		in.Castaways[i] = c.ID
	}
	for _, rk := range rankings {
		in.Rankings[rk.UserID] = rk.CastawayIds
	}
	return in, nil
}

// ResetDraft deletes a league's picks and returns its draft to pending
func (r *Repository) ResetDraft(ctx context.Context, leagueID uuid.UUID, at time.Time) (*ResetDraftResult, error) {
	result := &ResetDraftResult{LeagueID: leagueID}
	err := sqlutil.Run(ctx, r.pool, db.NewTx, func(q *db.Queries) error {
		if _, err := q.GetLeagueForUpdate(ctx, leagueID); err != nil {
			return sqlutil.Classify("lock league", "league", leagueID, err)
		}

		deleted, err := q.DeleteDraftPicksByLeague(ctx, leagueID)
		if err != nil {
			return sqlutil.Classify("delete draft picks", "league", leagueID, err)
		}
		result.DeletedPicks = deleted

		if _, err := q.MarkDraftPending(ctx, leagueID); err != nil {
			return sqlutil.Classify("mark draft pending", "league", leagueID, err)
		}

		return outbox.Write(ctx, q, leagueID, events.DraftReset, events.DraftResetPayload{
			LeagueID:     leagueID,
			DeletedPicks: deleted,
			ResetAt:      at,
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AssignPick upserts one pick for (league, user, round), bypassing the engine. The league row
// is locked so an override never interleaves with a draft run.
func (r *Repository) AssignPick(ctx context.Context, p assignParams) (*models.DraftPick, error) {
	var pick db.DraftPick
	err := sqlutil.Run(ctx, r.pool, db.NewTx, func(q *db.Queries) error {
		row, err := q.GetLeagueForUpdate(ctx, p.LeagueID)
		if err != nil {
			return sqlutil.Classify("lock league", "league", p.LeagueID, err)
		}
		league := leagues.FromDB(row)

		if p.Round > league.PicksPerUser {
			return apperrors.Validation("round", "must be between 1 and %d, got %d", league.PicksPerUser, p.Round)
		}

		m, err := q.GetMembership(ctx, db.GetMembershipParams{LeagueID: p.LeagueID, UserID: p.UserID})
		if err != nil || !m.IsActive {
			if err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return sqlutil.Classify("get membership", "membership", p.UserID, err)
			}
			return apperrors.NotFound("active member", p.UserID)
		}

		c, err := q.GetCastaway(ctx, p.CastawayID)
		if err != nil {
			return sqlutil.Classify("get castaway", "castaway", p.CastawayID, err)
		}
		if c.SeasonID != league.SeasonID {
			return apperrors.Validation("castaway_id", "castaway %s is not in the league's season", p.CastawayID)
		}

		pick, err = q.AssignDraftPick(ctx, db.AssignDraftPickParams{
			LeagueID:   p.LeagueID,
			UserID:     p.UserID,
			CastawayID: p.CastawayID,
			Round:      int32(p.Round),
		})
		if sqlutil.IsConstraint(err, constraintCastawayOnce) {
			return apperrors.Conflict("castaway %s is already drafted in league %s", p.CastawayID, p.LeagueID)
		}
		if err != nil {
			return sqlutil.Classify("assign draft pick", "draft pick", p.UserID, err)
		}

		return outbox.Write(ctx, q, p.LeagueID, events.PickAssigned, events.PickAssignedPayload{
			LeagueID:   p.LeagueID,
			UserID:     p.UserID,
			CastawayID: p.CastawayID,
			Round:      p.Round,
			PickNumber: int(pick.PickNumber),
		})
	})
	if err != nil {
		return nil, err
	}
	return dbPickToModel(pick), nil
}

func dbPickToModel(p db.DraftPick) *models.DraftPick {
	return &models.DraftPick{
		LeagueID:   p.LeagueID,
		UserID:     p.UserID,
		CastawayID: p.CastawayID,
		Round:      int(p.Round),
		PickNumber: int(p.PickNumber),
		Manual:     p.Manual,
		CreatedAt:  p.CreatedAt,
	}
}
