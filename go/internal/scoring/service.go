package scoring

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/rpcutil"
)

const ServiceName = "ScoringService"

// ScoringApp defines what the service layer needs from the scoring application
type ScoringApp interface {
	RecordEpisodeScore(ctx context.Context, episodeID, castawayID, ruleID uuid.UUID, quantity int) (*RecordResult, error)
	FinalizeEpisode(ctx context.Context, episodeID uuid.UUID) (*models.Episode, error)
	GetEpisodeTotal(ctx context.Context, episodeID, castawayID uuid.UUID) (int, error)
	ListEpisodeScores(ctx context.Context, episodeID uuid.UUID) ([]models.EpisodeScore, error)
	ListRules(ctx context.Context) ([]models.ScoringRule, error)
}

// Service implements the ScoringService RPC interface
type Service struct {
	app ScoringApp
}

// NewService creates a new scoring service
func NewService(app ScoringApp) *Service {
	return &Service{
		app: app,
	}
}

// Handler returns the mount path and handler for ScoringService
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	r := rpcutil.NewRouter(ServiceName, opts...)
	rpcutil.Unary(r, "RecordEpisodeScore", s.RecordEpisodeScore)
	rpcutil.Unary(r, "FinalizeEpisode", s.FinalizeEpisode)
	rpcutil.Unary(r, "GetEpisodeTotal", s.GetEpisodeTotal)
	rpcutil.Unary(r, "ListEpisodeScores", s.ListEpisodeScores)
	rpcutil.Unary(r, "ListRules", s.ListRules)
	return r.Handler()
}

// RecordEpisodeScore writes one ledger row
func (s *Service) RecordEpisodeScore(ctx context.Context, req *connect.Request[RecordEpisodeScoreRequest]) (*connect.Response[RecordResult], error) {
	episodeID, err := rpcutil.ParseUUID("episode_id", req.Msg.EpisodeID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	castawayID, err := rpcutil.ParseUUID("castaway_id", req.Msg.CastawayID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	ruleID, err := rpcutil.ParseUUID("rule_id", req.Msg.RuleID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	result, err := s.app.RecordEpisodeScore(ctx, episodeID, castawayID, ruleID, req.Msg.Quantity)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(result), nil
}

// FinalizeEpisode locks an episode's scores
func (s *Service) FinalizeEpisode(ctx context.Context, req *connect.Request[EpisodeRequest]) (*connect.Response[models.Episode], error) {
	episodeID, err := rpcutil.ParseUUID("episode_id", req.Msg.EpisodeID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	ep, err := s.app.FinalizeEpisode(ctx, episodeID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(ep), nil
}

// GetEpisodeTotal returns a castaway's points for an episode
func (s *Service) GetEpisodeTotal(ctx context.Context, req *connect.Request[GetEpisodeTotalRequest]) (*connect.Response[EpisodeTotalResponse], error) {
	episodeID, err := rpcutil.ParseUUID("episode_id", req.Msg.EpisodeID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	castawayID, err := rpcutil.ParseUUID("castaway_id", req.Msg.CastawayID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	total, err := s.app.GetEpisodeTotal(ctx, episodeID, castawayID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(&EpisodeTotalResponse{EpisodeID: episodeID, CastawayID: castawayID, Total: total}), nil
}

// ListEpisodeScores returns an episode's ledger rows
func (s *Service) ListEpisodeScores(ctx context.Context, req *connect.Request[EpisodeRequest]) (*connect.Response[ListEpisodeScoresResponse], error) {
	episodeID, err := rpcutil.ParseUUID("episode_id", req.Msg.EpisodeID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}

	scores, err := s.app.ListEpisodeScores(ctx, episodeID)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(&ListEpisodeScoresResponse{Scores: scores}), nil
}

// ListRules returns the scoring rule catalog
func (s *Service) ListRules(ctx context.Context, _ *connect.Request[ListRulesRequest]) (*connect.Response[ListRulesResponse], error) {
	rules, err := s.app.ListRules(ctx)
	if err != nil {
		return nil, rpcutil.ToConnectError(err)
	}
	return connect.NewResponse(&ListRulesResponse{Rules: rules}), nil
}
