package weeklypick

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/rpcutil"
)

const ServiceName = "WeeklyPickService"

// WeeklyPickApp defines what the service layer needs from the weekly pick application
type WeeklyPickApp interface {
	SubmitWeeklyPick(ctx context.Context, leagueID, userID uuid.UUID, week int, castawayID uuid.UUID) (*models.WeeklyPick, error)
	ListWeeklyPicks(ctx context.Context, leagueID uuid.UUID) ([]models.WeeklyPick, error)
}

// Service implements the WeeklyPickService RPC interface
type Service struct {
	app WeeklyPickApp
}

// NewService creates a new weekly pick service
func NewService(app WeeklyPickApp) *Service {
	return &Service{
		app: app,
	}
}

// Handler returns the mount path and handler for WeeklyPickService
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	r := rpcutil.NewRouter(ServiceName, opts...)
	rpcutil.Unary(r, "SubmitWeeklyPick", s.SubmitWeeklyPick)
	rpcutil.Unary(r, "ListWeeklyPicks", s.ListWeeklyPicks)
	return r.Handler()
}

func (s *Service) SubmitWeeklyPick(ctx context.Context, req *connect.Request[SubmitWeeklyPickRequest]) (*connect.Response[models.WeeklyPick], error) {
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

	pick, err := s.app.SubmitWeeklyPick(ctx, leagueID, userID, req.Msg.Week, castawayID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(pick), nil
}

func (s *Service) ListWeeklyPicks(ctx context.Context, req *connect.Request[ListWeeklyPicksRequest]) (*connect.Response[ListWeeklyPicksResponse], error) {
	leagueID, err := rpcutil.ParseUUID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	picks, err := s.app.ListWeeklyPicks(ctx, leagueID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(&ListWeeklyPicksResponse{Picks: picks}), nil
}
