package membership

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/rpcutil"
)

const ServiceName = "MembershipService"

// MembershipApp defines what the service layer needs from the membership application
type MembershipApp interface {
	JoinLeague(ctx context.Context, leagueID, userID uuid.UUID, paymentRef string) (*JoinResult, error)
	LeaveLeague(ctx context.Context, leagueID, userID uuid.UUID) (*LeaveResult, error)
}

// Service implements the MembershipService RPC interface
type Service struct {
	app MembershipApp
}

// NewService creates a new membership service
func NewService(app MembershipApp) *Service {
	return &Service{
		app: app,
	}
}

// Handler returns the mount path and handler for MembershipService
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	r := rpcutil.NewRouter(ServiceName, opts...)
	rpcutil.Unary(r, "JoinLeague", s.JoinLeague)
	rpcutil.Unary(r, "LeaveLeague", s.LeaveLeague)
	return r.Handler()
}

// JoinLeague admits a user to a league
func (s *Service) JoinLeague(ctx context.Context, req *connect.Request[JoinLeagueRequest]) (*connect.Response[JoinResult], error) {
	leagueID, userID, err := parseIDs(req.Msg.LeagueID, req.Msg.UserID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	result, err := s.app.JoinLeague(ctx, leagueID, userID, req.Msg.PaymentRef)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(result), nil
}

// LeaveLeague removes a user from a league
func (s *Service) LeaveLeague(ctx context.Context, req *connect.Request[LeaveLeagueRequest]) (*connect.Response[LeaveResult], error) {
	leagueID, userID, err := parseIDs(req.Msg.LeagueID, req.Msg.UserID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	result, err := s.app.LeaveLeague(ctx, leagueID, userID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(result), nil
}

func parseIDs(league, user string) (uuid.UUID, uuid.UUID, error) {
	leagueID, err := rpcutil.ParseUUID("league_id", league)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	userID, err := rpcutil.ParseUUID("user_id", user)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return leagueID, userID, nil
}
