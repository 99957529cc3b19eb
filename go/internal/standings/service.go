package standings

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/rpcutil"
)

const ServiceName = "StandingsService"

// StandingsApp defines what the service layer needs from the standings application
type StandingsApp interface {
	GetStandings(ctx context.Context, leagueID uuid.UUID) ([]models.RankedEntry, error)
}

// Service implements the StandingsService RPC interface
type Service struct {
	app StandingsApp
}

// NewService creates a new standings service
func NewService(app StandingsApp) *Service {
	return &Service{
		app: app,
	}
}

// Handler returns the mount path and handler for StandingsService
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	r := rpcutil.NewRouter(ServiceName, opts...)
	rpcutil.Unary(r, "GetStandings", s.GetStandings)
	return r.Handler()
}

// GetStandings returns a league's leaderboard
func (s *Service) GetStandings(ctx context.Context, req *connect.Request[GetStandingsRequest]) (*connect.Response[GetStandingsResponse], error) {
	leagueID, err := rpcutil.ParseUUID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	entries, err := s.app.GetStandings(ctx, leagueID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	if entries == nil {
		entries = []models.RankedEntry{}
	}

	return connect.NewResponse(&GetStandingsResponse{
		LeagueID: leagueID.String(),
		Entries:  entries,
	}), nil
}
