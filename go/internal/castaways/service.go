package castaways

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/rpcutil"
)

const ServiceName = "CastawayService"

// CastawayApp defines what the service layer needs from the castaways application
type CastawayApp interface {
	GetCastaway(ctx context.Context, id uuid.UUID) (*models.Castaway, error)
	ListBySeason(ctx context.Context, seasonID uuid.UUID, draftableOnly bool) ([]models.Castaway, error)
	RecordElimination(ctx context.Context, id uuid.UUID, week *int) (*models.Castaway, error)
}

// Service implements the CastawayService RPC interface
type Service struct {
	app CastawayApp
}

// NewService creates a new castaways service
func NewService(app CastawayApp) *Service {
	return &Service{
		app: app,
	}
}

// Handler returns the mount path and handler for CastawayService
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	r := rpcutil.NewRouter(ServiceName, opts...)
	rpcutil.Unary(r, "ListCastaways", s.ListCastaways)
	rpcutil.Unary(r, "GetCastaway", s.GetCastaway)
	rpcutil.Unary(r, "RecordElimination", s.RecordElimination)
	return r.Handler()
}

// ListCastaways retrieves a season's castaway pool
func (s *Service) ListCastaways(ctx context.Context, req *connect.Request[ListCastawaysRequest]) (*connect.Response[ListCastawaysResponse], error) {
	seasonID, err := rpcutil.ParseUUID("season_id", req.Msg.SeasonID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	list, err := s.app.ListBySeason(ctx, seasonID, req.Msg.DraftableOnly)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(&ListCastawaysResponse{Castaways: list}), nil
}

// GetCastaway retrieves a castaway by ID
func (s *Service) GetCastaway(ctx context.Context, req *connect.Request[GetCastawayRequest]) (*connect.Response[models.Castaway], error) {
	id, err := rpcutil.ParseUUID("castaway_id", req.Msg.CastawayID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	c, err := s.app.GetCastaway(ctx, id)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(c), nil
}

// RecordElimination marks a castaway eliminated, or reinstates it
func (s *Service) RecordElimination(ctx context.Context, req *connect.Request[RecordEliminationRequest]) (*connect.Response[models.Castaway], error) {
	id, err := rpcutil.ParseUUID("castaway_id", req.Msg.CastawayID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	c, err := s.app.RecordElimination(ctx, id, req.Msg.Week)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(c), nil
}
