package membership

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/events"
	"github.com/mcdev12/castaway/go/internal/leagues"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/outbox"
	"github.com/mcdev12/castaway/go/internal/sqlutil"
)

// errLostActivation rolls back the transaction when a concurrent join for the same user
// activated the membership first, whether it took the seat increment or the last seat.
var errLostActivation = errors.New("membership activated concurrently")

// Querier defines the reads the repository makes outside a transaction
type Querier interface {
	GetLeague(ctx context.Context, id uuid.UUID) (db.League, error)
	GetUser(ctx context.Context, id uuid.UUID) (db.User, error)
}

// Repository implements the membership capacity gate on the store
type Repository struct {
	queries Querier
	pool    sqlutil.TxBeginner
}

// NewRepository creates a new membership repository
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

// UserExists fails with NotFound when the user does not exist
func (r *Repository) UserExists(ctx context.Context, id uuid.UUID) error {
	if _, err := r.queries.GetUser(ctx, id); err != nil {
		return sqlutil.Classify("get user", "user", id, err)
	}
	return nil
}

// Join admits a user in one transaction:
//  1. an active membership short-circuits to alreadyMember without touching capacity
//  2. the seat count is bumped only while current_players < max_players
//  3. the membership is inserted, or reactivated if inactive
//
// Step 2 takes the league row lock, so concurrent joins serialize on it and the last seat goes to
// exactly one of them.
func (r *Repository) Join(ctx context.Context, p joinParams) (*JoinResult, error) {
	result := &JoinResult{}
	err := sqlutil.Run(ctx, r.pool, db.NewTx, func(q *db.Queries) error {
		existing, err := q.GetMembership(ctx, db.GetMembershipParams{LeagueID: p.LeagueID, UserID: p.UserID})
		switch {
		case err == nil && existing.IsActive:
			result.Joined = true
			result.AlreadyMember = true
			result.Reason = ReasonAlreadyMember
			result.JoinedAt = existing.JoinedAt
			return nil
		case err != nil && !errors.Is(err, pgx.ErrNoRows):
			return sqlutil.Classify("get membership", "membership", p.UserID, err)
		}

		league, err := q.IncrementLeaguePlayers(ctx, p.LeagueID)
		if errors.Is(err, pgx.ErrNoRows) {
			return r.explainNoSeat(ctx, q, p.LeagueID, p.UserID)
		}
		if err != nil {
			return sqlutil.Classify("increment league players", "league", p.LeagueID, err)
		}

		m, err := q.ActivateMembership(ctx, db.ActivateMembershipParams{
			LeagueID:   p.LeagueID,
			UserID:     p.UserID,
			PaymentRef: sqlutil.ToPgText(p.PaymentRef),
			JoinedAt:   p.JoinedAt,
		})
		if errors.Is(err, pgx.ErrNoRows) {
			return errLostActivation
		}
		if err != nil {
			return sqlutil.Classify("activate membership", "user", p.UserID, err)
		}

		result.Joined = true
		result.Reason = ReasonJoined
		result.CurrentPlayers = int(league.CurrentPlayers)
		result.JoinedAt = m.JoinedAt

		return outbox.Write(ctx, q, p.LeagueID, events.MemberJoined, events.MembershipPayload{
			LeagueID:       p.LeagueID,
			UserID:         p.UserID,
			CurrentPlayers: result.CurrentPlayers,
			At:             m.JoinedAt,
		})
	})
	if errors.Is(err, errLostActivation) {
		result = &JoinResult{Joined: true, AlreadyMember: true, Reason: ReasonAlreadyMember}
		err = nil
	}
	if err != nil {
		return nil, err
	}

	if result.AlreadyMember {
		league, err := r.GetLeague(ctx, p.LeagueID)
		if err != nil {
			return nil, err
		}
		result.CurrentPlayers = league.CurrentPlayers
	}
	return result, nil
}

// explainNoSeat runs after the conditional increment matched no row. A concurrent join for the
// same user may have taken the last seat while this transaction waited on the league row lock;
// the membership read here is a fresh statement and sees that commit.
func (r *Repository) explainNoSeat(ctx context.Context, q *db.Queries, leagueID, userID uuid.UUID) error {
	existing, err := q.GetMembership(ctx, db.GetMembershipParams{LeagueID: leagueID, UserID: userID})
	switch {
	case err == nil && existing.IsActive:
		return errLostActivation
	case err != nil && !errors.Is(err, pgx.ErrNoRows):
		return sqlutil.Classify("get membership", "membership", userID, err)
	}

	league, err := q.GetLeague(ctx, leagueID)
	if err != nil {
		return sqlutil.Classify("get league", "league", leagueID, err)
	}
	return apperrors.Conflict("league %s is full (%d/%d players)", leagueID, league.CurrentPlayers, league.MaxPlayers)
}

// Leave deactivates an active membership and frees its seat in one transaction
func (r *Repository) Leave(ctx context.Context, leagueID, userID uuid.UUID) (*LeaveResult, error) {
	result := &LeaveResult{}
	err := sqlutil.Run(ctx, r.pool, db.NewTx, func(q *db.Queries) error {
		m, err := q.DeactivateMembership(ctx, db.DeactivateMembershipParams{LeagueID: leagueID, UserID: userID})
		if err != nil {
			return sqlutil.Classify("deactivate membership", "active membership", userID, err)
		}

		league, err := q.DecrementLeaguePlayers(ctx, leagueID)
		if err != nil {
			return sqlutil.Classify("decrement league players", "league", leagueID, err)
		}

		result.Left = true
		result.CurrentPlayers = int(league.CurrentPlayers)

		return outbox.Write(ctx, q, leagueID, events.MemberLeft, events.MembershipPayload{
			LeagueID:       leagueID,
			UserID:         m.UserID,
			CurrentPlayers: result.CurrentPlayers,
			At:             league.UpdatedAt,
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
