package scoring

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) RecordScore(ctx context.Context, p recordParams) (*RecordResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RecordResult), args.Error(1)
}

func (m *mockRepo) FinalizeEpisode(ctx context.Context, episodeID uuid.UUID, at time.Time) (*models.Episode, error) {
	args := m.Called(ctx, episodeID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *mockRepo) GetEpisode(ctx context.Context, id uuid.UUID) (*models.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *mockRepo) CastawayExists(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) GetEpisodeTotal(ctx context.Context, episodeID, castawayID uuid.UUID) (int, error) {
	args := m.Called(ctx, episodeID, castawayID)
	return args.Int(0), args.Error(1)
}

func (m *mockRepo) ListEpisodeScores(ctx context.Context, episodeID uuid.UUID) ([]models.EpisodeScore, error) {
	args := m.Called(ctx, episodeID)
	return args.Get(0).([]models.EpisodeScore), args.Error(1)
}

func (m *mockRepo) ListRules(ctx context.Context) ([]models.ScoringRule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ScoringRule), args.Error(1)
}

func (m *mockRepo) UpsertRule(ctx context.Context, rule models.ScoringRule) (*models.ScoringRule, error) {
	args := m.Called(ctx, rule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScoringRule), args.Error(1)
}

type mockStandings struct {
	mock.Mock
}

func (m *mockStandings) InvalidateSeason(seasonID uuid.UUID) {
	m.Called(seasonID)
}

func (m *mockStandings) RefreshSeason(ctx context.Context, seasonID uuid.UUID) error {
	return m.Called(ctx, seasonID).Error(0)
}

var now = time.Date(2026, 3, 5, 21, 0, 0, 0, time.UTC)

func TestRecordEpisodeScore_InvalidatesSeason(t *testing.T) {
	ctx := context.Background()
	seasonID := uuid.New()
	p := recordParams{EpisodeID: uuid.New(), CastawayID: uuid.New(), RuleID: uuid.New(), Quantity: 2, At: now}

	repo := &mockRepo{}
	repo.On("RecordScore", ctx, p).Return(&RecordResult{
		SeasonID: seasonID,
		Score:    &models.EpisodeScore{EpisodeID: p.EpisodeID, CastawayID: p.CastawayID, RuleID: p.RuleID, Quantity: 2, Points: 10},
	}, nil)
	standings := &mockStandings{}
	standings.On("InvalidateSeason", seasonID).Once()

	result, err := NewApp(repo, clockwork.NewFakeClockAt(now), standings).
		RecordEpisodeScore(ctx, p.EpisodeID, p.CastawayID, p.RuleID, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Score.Points)
	standings.AssertExpectations(t)
}

func TestRecordEpisodeScore_ZeroQuantityDeletes(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	repo.On("RecordScore", ctx, mock.MatchedBy(func(p recordParams) bool { return p.Quantity == 0 })).
		Return(&RecordResult{SeasonID: uuid.New(), Deleted: true}, nil)

	result, err := NewApp(repo, clockwork.NewFakeClockAt(now), nil).
		RecordEpisodeScore(ctx, uuid.New(), uuid.New(), uuid.New(), 0)
	require.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Nil(t, result.Score)
}

func TestRecordEpisodeScore_NegativeQuantity(t *testing.T) {
	repo := &mockRepo{}
	_, err := NewApp(repo, clockwork.NewFakeClockAt(now), nil).
		RecordEpisodeScore(context.Background(), uuid.New(), uuid.New(), uuid.New(), -1)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "quantity", apperrors.FieldOf(err))
	repo.AssertNotCalled(t, "RecordScore", mock.Anything, mock.Anything)
}

func TestRecordEpisodeScore_QuantityTooLarge(t *testing.T) {
	repo := &mockRepo{}
	_, err := NewApp(repo, clockwork.NewFakeClockAt(now), nil).
		RecordEpisodeScore(context.Background(), uuid.New(), uuid.New(), uuid.New(), 3_000_000_000)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "quantity", apperrors.FieldOf(err))
	repo.AssertNotCalled(t, "RecordScore", mock.Anything, mock.Anything)
}

func TestRecordEpisodeScore_FinalizedEpisodeKeepsConflict(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	repo.On("RecordScore", ctx, mock.Anything).Return(nil, apperrors.Conflict("episode is finalized"))
	standings := &mockStandings{}

	_, err := NewApp(repo, clockwork.NewFakeClockAt(now), standings).
		RecordEpisodeScore(ctx, uuid.New(), uuid.New(), uuid.New(), 1)
	assert.True(t, apperrors.IsConflict(err))
	standings.AssertNotCalled(t, "InvalidateSeason", mock.Anything)
}

func TestFinalizeEpisode_RefreshesSeason(t *testing.T) {
	ctx := context.Background()
	ep := &models.Episode{ID: uuid.New(), SeasonID: uuid.New(), Week: 3, FinalizedAt: &now}

	repo := &mockRepo{}
	repo.On("FinalizeEpisode", ctx, ep.ID, now).Return(ep, nil)
	standings := &mockStandings{}
	standings.On("InvalidateSeason", ep.SeasonID).Once()
	standings.On("RefreshSeason", ctx, ep.SeasonID).Return(nil).Once()

	got, err := NewApp(repo, clockwork.NewFakeClockAt(now), standings).FinalizeEpisode(ctx, ep.ID)
	require.NoError(t, err)
	assert.True(t, got.IsFinalized())
	standings.AssertExpectations(t)
}

func TestFinalizeEpisode_RefreshFailureIsNotAnError(t *testing.T) {
	ctx := context.Background()
	ep := &models.Episode{ID: uuid.New(), SeasonID: uuid.New(), Week: 3, FinalizedAt: &now}

	repo := &mockRepo{}
	repo.On("FinalizeEpisode", ctx, ep.ID, now).Return(ep, nil)
	standings := &mockStandings{}
	standings.On("InvalidateSeason", ep.SeasonID)
	standings.On("RefreshSeason", ctx, ep.SeasonID).Return(errors.New("pool closed"))

	_, err := NewApp(repo, clockwork.NewFakeClockAt(now), standings).FinalizeEpisode(ctx, ep.ID)
	assert.NoError(t, err)
}

func TestFinalizeEpisode_Twice(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := &mockRepo{}
	repo.On("FinalizeEpisode", ctx, id, now).Return(nil, apperrors.Conflict("episode %s was already finalized", id))

	_, err := NewApp(repo, clockwork.NewFakeClockAt(now), nil).FinalizeEpisode(ctx, id)
	assert.True(t, apperrors.IsConflict(err))
}

func TestGetEpisodeTotal(t *testing.T) {
	ctx := context.Background()
	episodeID, castawayID := uuid.New(), uuid.New()

	repo := &mockRepo{}
	repo.On("GetEpisode", ctx, episodeID).Return(&models.Episode{ID: episodeID}, nil)
	repo.On("CastawayExists", ctx, castawayID).Return(nil)
	repo.On("GetEpisodeTotal", ctx, episodeID, castawayID).Return(35, nil)

	total, err := NewApp(repo, clockwork.NewFakeClockAt(now), nil).GetEpisodeTotal(ctx, episodeID, castawayID)
	require.NoError(t, err)
	assert.Equal(t, 35, total)
}

func TestGetEpisodeTotal_UnknownCastaway(t *testing.T) {
	ctx := context.Background()
	episodeID, castawayID := uuid.New(), uuid.New()

	repo := &mockRepo{}
	repo.On("GetEpisode", ctx, episodeID).Return(&models.Episode{ID: episodeID}, nil)
	repo.On("CastawayExists", ctx, castawayID).Return(apperrors.NotFound("castaway", castawayID))

	_, err := NewApp(repo, clockwork.NewFakeClockAt(now), nil).GetEpisodeTotal(ctx, episodeID, castawayID)
	assert.True(t, apperrors.IsNotFound(err))
	repo.AssertNotCalled(t, "GetEpisodeTotal", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportRules(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	immunity := models.ScoringRule{Code: "WIN_IMMUNITY", Points: 5, Category: models.RuleCategoryChallenge}
	votedOut := models.ScoringRule{Code: "VOTED_OUT", Points: -3, Category: models.RuleCategoryTribal, IsNegative: true}
	savedImmunity, savedVotedOut := immunity, votedOut
	savedImmunity.ID, savedVotedOut.ID = uuid.New(), uuid.New()
	repo.On("UpsertRule", ctx, immunity).Return(&savedImmunity, nil)
	repo.On("UpsertRule", ctx, votedOut).Return(&savedVotedOut, nil)

	rules, err := NewApp(repo, clockwork.NewFakeClockAt(now), nil).ImportRules(ctx, []models.ScoringRule{
		{Code: " win_immunity ", Points: 5, Category: models.RuleCategoryChallenge},
		{Code: "VOTED_OUT", Points: -3, Category: models.RuleCategoryTribal},
	})
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "WIN_IMMUNITY", rules[0].Code)
	assert.False(t, rules[0].IsNegative)
	assert.True(t, rules[1].IsNegative)
}

func TestImportRules_Validation(t *testing.T) {
	tests := []struct {
		name  string
		rule  models.ScoringRule
		field string
	}{
		{"no code", models.ScoringRule{Points: 1, Category: models.RuleCategorySocial}, "code"},
		{"zero points", models.ScoringRule{Code: "X", Category: models.RuleCategorySocial}, "points"},
		{"bad category", models.ScoringRule{Code: "X", Points: 1, Category: "MISC"}, "category"},
		{"points out of range", models.ScoringRule{Code: "X", Points: math.MaxInt32 + 1, Category: models.RuleCategorySocial}, "points"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewApp(&mockRepo{}, clockwork.NewFakeClockAt(now), nil).
				ImportRules(context.Background(), []models.ScoringRule{tt.rule})
			assert.Equal(t, tt.field, apperrors.FieldOf(err))
		})
	}
}
