package draft

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/rpcutil"
)

const ServiceName = "DraftService"

// DraftApp defines what the service layer needs from the draft application
type DraftApp interface {
	RunDraft(ctx context.Context, leagueID uuid.UUID, seed *int64) (*RunDraftResult, error)
	ResetDraft(ctx context.Context, leagueID uuid.UUID) (*ResetDraftResult, error)
	ManualAssign(ctx context.Context, leagueID, userID, castawayID uuid.UUID, round int) (*models.DraftPick, error)
	SubmitRanking(ctx context.Context, leagueID, userID uuid.UUID, castawayIDs []uuid.UUID) (*models.Ranking, error)
	ListDraftPicks(ctx context.Context, leagueID uuid.UUID) ([]models.DraftPick, error)
}

// Service implements the DraftService RPC interface
type Service struct {
	app DraftApp
}

// NewService creates a new draft service
func NewService(app DraftApp) *Service {
	return &Service{
		app: app,
	}
}

// Handler returns the mount path and handler for DraftService
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	r := rpcutil.NewRouter(ServiceName, opts...)
	rpcutil.Unary(r, "RunDraft", s.RunDraft)
	rpcutil.Unary(r, "ResetDraft", s.ResetDraft)
	rpcutil.Unary(r, "ManualAssign", s.ManualAssign)
	rpcutil.Unary(r, "SubmitRanking", s.SubmitRanking)
	rpcutil.Unary(r, "ListDraftPicks", s.ListDraftPicks)
	return r.Handler()
}

// RunDraft runs a league's draft
func (s *Service) RunDraft(ctx context.Context, req *connect.Request[RunDraftRequest]) (*connect.Response[RunDraftResult], error) {
	leagueID, err := rpcutil.ParseUUID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	result, err := s.app.RunDraft(ctx, leagueID, req.Msg.Seed)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(result), nil
}

// ResetDraft deletes a league's picks
func (s *Service) ResetDraft(ctx context.Context, req *connect.Request[LeagueRequest]) (*connect.Response[ResetDraftResult], error) {
	leagueID, err := rpcutil.ParseUUID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	result, err := s.app.ResetDraft(ctx, leagueID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(result), nil
}

// ManualAssign overrides a single pick
func (s *Service) ManualAssign(ctx context.Context, req *connect.Request[ManualAssignRequest]) (*connect.Response[models.DraftPick], error) {
	leagueID, err := rpcutil.ParseUUID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	userID, err := rpcutil.ParseUUID("user_id", req.Msg.UserID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	castawayID, err := rpcutil.ParseUUID("castaway_id", req.Msg.CastawayID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	pick, err := s.app.ManualAssign(ctx, leagueID, userID, castawayID, req.Msg.Round)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(pick), nil
}

// SubmitRanking stores a user's draft ranking
func (s *Service) SubmitRanking(ctx context.Context, req *connect.Request[SubmitRankingRequest]) (*connect.Response[models.Ranking], error) {
	leagueID, err := rpcutil.ParseUUID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	userID, err := rpcutil.ParseUUID("user_id", req.Msg.UserID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	castawayIDs := make([]uuid.UUID, len(req.Msg.CastawayIDs))
	for i, raw := range req.Msg.CastawayIDs {
		if castawayIDs[i], err = rpcutil.ParseUUID("castaway_ids", raw); err != nil {
			return nil, rpcutil.ToConnectError(err)
		}
	}

	ranking, err := s.app.SubmitRanking(ctx, leagueID, userID, castawayIDs)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(ranking), nil
}

// ListDraftPicks retrieves a league's picks
func (s *Service) ListDraftPicks(ctx context.Context, req *connect.Request[LeagueRequest]) (*connect.Response[ListDraftPicksResponse], error) {
	leagueID, err := rpcutil.ParseUUID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	picks, err := s.app.ListDraftPicks(ctx, leagueID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(&ListDraftPicksResponse{Picks: picks}), nil
}
