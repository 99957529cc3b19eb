package weeklypick

import (
	"context"
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

func (m *mockRepo) Submit(ctx context.Context, p submitParams) (*models.WeeklyPick, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeeklyPick), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, leagueID uuid.UUID) ([]models.WeeklyPick, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WeeklyPick), args.Error(1)
}

type recordingInvalidator struct {
	leagues []uuid.UUID
}

func (r *recordingInvalidator) InvalidateLeague(id uuid.UUID) {
	r.leagues = append(r.leagues, id)
}

var now = time.Date(2026, 3, 4, 20, 0, 0, 0, time.UTC)

func TestSubmitWeeklyPick(t *testing.T) {
	ctx := context.Background()
	leagueID, userID, castawayID := uuid.New(), uuid.New(), uuid.New()
	want := submitParams{LeagueID: leagueID, UserID: userID, Week: 3, CastawayID: castawayID, At: now}
	pick := &models.WeeklyPick{LeagueID: leagueID, UserID: userID, Week: 3, CastawayID: castawayID, CreatedAt: now}

	repo := new(mockRepo)
	repo.On("Submit", ctx, want).Return(pick, nil)
	inv := &recordingInvalidator{}

	got, err := NewApp(repo, clockwork.NewFakeClockAt(now), inv).SubmitWeeklyPick(ctx, leagueID, userID, 3, castawayID)

	require.NoError(t, err)
	assert.Equal(t, pick, got)
	assert.Equal(t, []uuid.UUID{leagueID}, inv.leagues)
	repo.AssertExpectations(t)
}

func TestSubmitWeeklyPick_RejectsWeekZero(t *testing.T) {
	repo := new(mockRepo)

	_, err := NewApp(repo, clockwork.NewFakeClockAt(now), nil).SubmitWeeklyPick(context.Background(), uuid.New(), uuid.New(), 0, uuid.New())

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "week", apperrors.FieldOf(err))
	repo.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSubmitWeeklyPick_FailureDoesNotInvalidate(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	repo.On("Submit", ctx, mock.Anything).Return(nil, apperrors.Conflict("week 1 is finalized"))
	inv := &recordingInvalidator{}

	_, err := NewApp(repo, clockwork.NewFakeClockAt(now), inv).SubmitWeeklyPick(ctx, uuid.New(), uuid.New(), 1, uuid.New())

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Empty(t, inv.leagues)
}

func TestListWeeklyPicks(t *testing.T) {
	ctx := context.Background()
	leagueID := uuid.New()
	picks := []models.WeeklyPick{{LeagueID: leagueID, Week: 1}, {LeagueID: leagueID, Week: 2}}

	repo := new(mockRepo)
	repo.On("List", ctx, leagueID).Return(picks, nil)

	got, err := NewApp(repo, clockwork.NewFakeClock(), nil).ListWeeklyPicks(ctx, leagueID)

	require.NoError(t, err)
	assert.Equal(t, picks, got)
}
