package users

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/rpcutil"
)

const ServiceName = "UserService"

// UsersApp defines what the service layer needs from the users application
type UsersApp interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service implements the UserService RPC interface
type Service struct {
	app UsersApp
}

// NewService creates a new users service
func NewService(app UsersApp) *Service {
	return &Service{
		app: app,
	}
}

// Handler returns the mount path and handler for UserService
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	r := rpcutil.NewRouter(ServiceName, opts...)
	rpcutil.Unary(r, "CreateUser", s.CreateUser)
	rpcutil.Unary(r, "GetUser", s.GetUser)
	return r.Handler()
}

// CreateUser creates a new user
func (s *Service) CreateUser(ctx context.Context, req *connect.Request[CreateUserRequest]) (*connect.Response[models.User], error) {
	user, err := s.app.CreateUser(ctx, *req.Msg)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(user), nil
}

// GetUser retrieves a user by ID
func (s *Service) GetUser(ctx context.Context, req *connect.Request[GetUserRequest]) (*connect.Response[models.User], error) {
	id, err := rpcutil.ParseUUID("id", req.Msg.ID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	user, err := s.app.GetUser(ctx, id)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(user), nil
}
