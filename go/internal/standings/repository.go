package standings

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/castaways"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/leagues"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/sqlutil"
)

// Inputs is everything Compute needs for one league, read from a single snapshot.
type Inputs struct {
	League     *models.League
	Members    []models.Member
	Ownerships []Ownership
	WeekTotals []models.CastawayWeekTotal
	Cutoff     Cutoff
}

// Querier defines what the repository needs outside of a snapshot
type Querier interface {
	ListLeaguesBySeason(ctx context.Context, seasonID uuid.UUID) ([]db.League, error)
}

// Repository loads standings inputs
type Repository struct {
	queries Querier
	pool    sqlutil.SnapshotBeginner
}

// NewRepository creates a new standings repository
func NewRepository(querier Querier, pool sqlutil.SnapshotBeginner) *Repository {
	return &Repository{
		queries: querier,
		pool:    pool,
	}
}

// LoadInputs reads a league's members, ownerships and its season's week totals in one
// read-only snapshot, so a concurrent score correction is either fully in or fully out.
func (r *Repository) LoadInputs(ctx context.Context, leagueID uuid.UUID) (*Inputs, error) {
	var in Inputs
	err := sqlutil.Snapshot(ctx, r.pool, db.NewTx, func(q *db.Queries) error {
		l, err := q.GetLeague(ctx, leagueID)
		if err != nil {
			return sqlutil.Classify("get league", "league", leagueID, err)
		}
		in.League = leagues.FromDB(l)

		members, err := q.ListActiveMembers(ctx, leagueID)
		if err != nil {
			return sqlutil.Classify("list members", "league", leagueID, err)
		}
		in.Members = leagues.MembersFromDB(members)

		if in.League.ScoringMode == models.ScoringModeWeeklyPick {
			in.Ownerships, err = loadWeeklyPicks(ctx, q, leagueID)
		} else {
			in.Ownerships, err = loadDraftAssignments(ctx, q, leagueID)
		}
		if err != nil {
			return err
		}

		totals, err := q.ListCastawayWeekTotals(ctx, l.SeasonID)
		if err != nil {
			return sqlutil.Classify("list week totals", "season", l.SeasonID, err)
		}
		in.WeekTotals = weekTotalsFromDB(totals)

		in.Cutoff = NoCutoff{}
		if in.League.OwnershipCutoff == models.OwnershipCutoffEliminationWeek {
			pool, err := q.ListCastawaysBySeason(ctx, l.SeasonID)
			if err != nil {
				return sqlutil.Classify("list castaways", "season", l.SeasonID, err)
			}
			in.Cutoff = CutoffFor(in.League.OwnershipCutoff, castaways.ListFromDB(pool))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// ListLeagueIDs returns the ids of every league playing a season
func (r *Repository) ListLeagueIDs(ctx context.Context, seasonID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.queries.ListLeaguesBySeason(ctx, seasonID)
	if err != nil {
		return nil, sqlutil.Classify("list leagues", "season", seasonID, err)
	}
	ids := make([]uuid.UUID, len(rows))
	for i, l := range rows {
		ids[i] = l.ID
	}
	return ids, nil
}

func loadDraftAssignments(ctx context.Context, q *db.Queries, leagueID uuid.UUID) ([]Ownership, error) {
	picks, err := q.ListDraftPicksByLeague(ctx, leagueID)
	if err != nil {
		return nil, sqlutil.Classify("list draft picks", "league", leagueID, err)
	}
	out := make([]Ownership, len(picks))
	for i, p := range picks {
		out[i] = DraftAssignment{UserID: p.UserID, CastawayID: p.CastawayID}
	}
	return out, nil
}

func loadWeeklyPicks(ctx context.Context, q *db.Queries, leagueID uuid.UUID) ([]Ownership, error) {
	picks, err := q.ListWeeklyPicksByLeague(ctx, leagueID)
	if err != nil {
		return nil, sqlutil.Classify("list weekly picks", "league", leagueID, err)
	}
	out := make([]Ownership, len(picks))
	for i, p := range picks {
		out[i] = WeeklyPick{UserID: p.UserID, CastawayID: p.CastawayID, Week: int(p.Week)}
	}
	return out, nil
}

func weekTotalsFromDB(rows []db.ListCastawayWeekTotalsRow) []models.CastawayWeekTotal {
	out := make([]models.CastawayWeekTotal, len(rows))
	for i, r := range rows {
		out[i] = models.CastawayWeekTotal{
			CastawayID: r.CastawayID,
			Week:       int(r.Week),
			Points:     int(r.Points),
		}
	}
	return out
}
