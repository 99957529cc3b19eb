package membership

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/rs/zerolog/log"
)

// MembershipRepository defines what the app layer needs from the repository
type MembershipRepository interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	UserExists(ctx context.Context, id uuid.UUID) error
	Join(ctx context.Context, p joinParams) (*JoinResult, error)
	Leave(ctx context.Context, leagueID, userID uuid.UUID) (*LeaveResult, error)
}

// LeagueInvalidator drops derived state of a league
type LeagueInvalidator interface {
	InvalidateLeague(leagueID uuid.UUID)
}

// App is the membership capacity gate
type App struct {
	repo        MembershipRepository
	clock       clockwork.Clock
	invalidator LeagueInvalidator
}

// NewApp creates a new membership App. invalidator may be nil.
func NewApp(repo MembershipRepository, clock clockwork.Clock, invalidator LeagueInvalidator) *App {
	return &App{
		repo:        repo,
		clock:       clock,
		invalidator: invalidator,
	}
}

// JoinLeague admits userID to leagueID if a seat is free. Retrying a successful join reports
// alreadyMember and leaves the seat count alone. A full league is a Conflict.
func (a *App) JoinLeague(ctx context.Context, leagueID, userID uuid.UUID, paymentRef string) (*JoinResult, error) {
	league, err := a.repo.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	p := joinParams{
		LeagueID: leagueID,
		UserID:   userID,
		JoinedAt: a.clock.Now().UTC(),
	}
	if ref := strings.TrimSpace(paymentRef); ref != "" {
		p.PaymentRef = &ref
	}
	if league.EntryFee && p.PaymentRef == nil {
		return nil, apperrors.Validation("payment_ref", "is required to join a league with an entry fee")
	}

	if err := a.repo.UserExists(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	result, err := a.repo.Join(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to join league: %w", err)
	}

	logger := log.With().Str("league_id", leagueID.String()).Str("user_id", userID.String()).Logger()
	if !result.AlreadyMember {
		if a.invalidator != nil {
			a.invalidator.InvalidateLeague(leagueID)
		}
		logger.Info().Int("current_players", result.CurrentPlayers).Int("max_players", league.MaxPlayers).Msg("member joined")
	} else {
		logger.Debug().Msg("join retried by active member")
	}
	return result, nil
}

// LeaveLeague deactivates userID's membership and frees the seat
func (a *App) LeaveLeague(ctx context.Context, leagueID, userID uuid.UUID) (*LeaveResult, error) {
	result, err := a.repo.Leave(ctx, leagueID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to leave league: %w", err)
	}

	if a.invalidator != nil {
		a.invalidator.InvalidateLeague(leagueID)
	}
	log.Info().
		Str("league_id", leagueID.String()).
		Str("user_id", userID.String()).
		Int("current_players", result.CurrentPlayers).
		Msg("member left")
	return result, nil
}
