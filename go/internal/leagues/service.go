package leagues

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/rpcutil"
)

const ServiceName = "LeagueService"

// LeaguesApp defines what the service layer needs from the leagues application
type LeaguesApp interface {
	CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListLeaguesBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.League, error)
	ListMembers(ctx context.Context, leagueID uuid.UUID) ([]models.Member, error)
}

// Service implements the LeagueService RPC interface
type Service struct {
	app LeaguesApp
}

// NewService creates a new leagues service
func NewService(app LeaguesApp) *Service {
	return &Service{
		app: app,
	}
}

// Handler returns the mount path and handler for LeagueService
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	r := rpcutil.NewRouter(ServiceName, opts...)
	rpcutil.Unary(r, "CreateLeague", s.CreateLeague)
	rpcutil.Unary(r, "GetLeague", s.GetLeague)
	rpcutil.Unary(r, "ListLeagues", s.ListLeagues)
	rpcutil.Unary(r, "ListMembers", s.ListMembers)
	return r.Handler()
}

// CreateLeague creates a new league
func (s *Service) CreateLeague(ctx context.Context, req *connect.Request[CreateLeagueRequest]) (*connect.Response[models.League], error) {
	league, err := s.app.CreateLeague(ctx, *req.Msg)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(league), nil
}

// GetLeague retrieves a league by ID
func (s *Service) GetLeague(ctx context.Context, req *connect.Request[GetLeagueRequest]) (*connect.Response[models.League], error) {
	id, err := rpcutil.ParseUUID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	league, err := s.app.GetLeague(ctx, id)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(league), nil
}

// ListLeagues retrieves the leagues of a season
func (s *Service) ListLeagues(ctx context.Context, req *connect.Request[ListLeaguesRequest]) (*connect.Response[ListLeaguesResponse], error) {
	seasonID, err := rpcutil.ParseUUID("season_id", req.Msg.SeasonID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	leagues, err := s.app.ListLeaguesBySeason(ctx, seasonID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(&ListLeaguesResponse{Leagues: leagues}), nil
}

// ListMembers retrieves a league's active members
func (s *Service) ListMembers(ctx context.Context, req *connect.Request[GetLeagueRequest]) (*connect.Response[ListMembersResponse], error) {
	id, err := rpcutil.ParseUUID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	members, err := s.app.ListMembers(ctx, id)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(&ListMembersResponse{Members: members}), nil
}
