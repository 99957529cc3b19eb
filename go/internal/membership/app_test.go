package membership

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

func (m *mockRepo) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.League), args.Error(1)
}

func (m *mockRepo) UserExists(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) Join(ctx context.Context, p joinParams) (*JoinResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*JoinResult), args.Error(1)
}

func (m *mockRepo) Leave(ctx context.Context, leagueID, userID uuid.UUID) (*LeaveResult, error) {
	args := m.Called(ctx, leagueID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LeaveResult), args.Error(1)
}

type recordingInvalidator struct {
	leagues []uuid.UUID
}

func (r *recordingInvalidator) InvalidateLeague(id uuid.UUID) {
	r.leagues = append(r.leagues, id)
}

var joinTime = time.Date(2026, 2, 25, 18, 30, 0, 0, time.UTC)

func TestJoinLeague_Admits(t *testing.T) {
	ctx := context.Background()
	league := &models.League{ID: uuid.New(), MaxPlayers: 8, CurrentPlayers: 7}
	userID := uuid.New()

	repo := &mockRepo{}
	repo.On("GetLeague", ctx, league.ID).Return(league, nil)
	repo.On("UserExists", ctx, userID).Return(nil)
	repo.On("Join", ctx, joinParams{LeagueID: league.ID, UserID: userID, JoinedAt: joinTime}).
		Return(&JoinResult{Joined: true, Reason: ReasonJoined, CurrentPlayers: 8, JoinedAt: joinTime}, nil)
	inv := &recordingInvalidator{}

	app := NewApp(repo, clockwork.NewFakeClockAt(joinTime), inv)
	result, err := app.JoinLeague(ctx, league.ID, userID, "")
	require.NoError(t, err)
	assert.True(t, result.Joined)
	assert.False(t, result.AlreadyMember)
	assert.Equal(t, 8, result.CurrentPlayers)
	assert.Equal(t, []uuid.UUID{league.ID}, inv.leagues)
	repo.AssertExpectations(t)
}

func TestJoinLeague_AlreadyMemberDoesNotInvalidate(t *testing.T) {
	ctx := context.Background()
	league := &models.League{ID: uuid.New(), MaxPlayers: 8, CurrentPlayers: 8}
	userID := uuid.New()

	repo := &mockRepo{}
	repo.On("GetLeague", ctx, league.ID).Return(league, nil)
	repo.On("UserExists", ctx, userID).Return(nil)
	repo.On("Join", ctx, mock.Anything).
		Return(&JoinResult{Joined: true, AlreadyMember: true, Reason: ReasonAlreadyMember, CurrentPlayers: 8}, nil)
	inv := &recordingInvalidator{}

	result, err := NewApp(repo, clockwork.NewFakeClockAt(joinTime), inv).JoinLeague(ctx, league.ID, userID, "")
	require.NoError(t, err)
	assert.True(t, result.Joined)
	assert.True(t, result.AlreadyMember)
	assert.Equal(t, 8, result.CurrentPlayers)
	assert.Empty(t, inv.leagues)
}

func TestJoinLeague_FullLeagueIsConflict(t *testing.T) {
	ctx := context.Background()
	league := &models.League{ID: uuid.New(), MaxPlayers: 8, CurrentPlayers: 8}
	userID := uuid.New()

	repo := &mockRepo{}
	repo.On("GetLeague", ctx, league.ID).Return(league, nil)
	repo.On("UserExists", ctx, userID).Return(nil)
	repo.On("Join", ctx, mock.Anything).Return(nil, apperrors.Conflict("league %s is full", league.ID))

	_, err := NewApp(repo, clockwork.NewFakeClockAt(joinTime), nil).JoinLeague(ctx, league.ID, userID, "")
	assert.True(t, apperrors.IsConflict(err))
}

func TestJoinLeague_PaidLeagueNeedsPaymentRef(t *testing.T) {
	ctx := context.Background()
	league := &models.League{ID: uuid.New(), MaxPlayers: 8, EntryFee: true}
	userID := uuid.New()

	repo := &mockRepo{}
	repo.On("GetLeague", ctx, league.ID).Return(league, nil)

	_, err := NewApp(repo, clockwork.NewFakeClockAt(joinTime), nil).JoinLeague(ctx, league.ID, userID, "   ")
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "payment_ref", apperrors.FieldOf(err))
	repo.AssertNotCalled(t, "Join", mock.Anything, mock.Anything)
}

func TestJoinLeague_PaidLeagueForwardsPaymentRef(t *testing.T) {
	ctx := context.Background()
	league := &models.League{ID: uuid.New(), MaxPlayers: 8, EntryFee: true}
	userID := uuid.New()
	ref := "pay_123"

	repo := &mockRepo{}
	repo.On("GetLeague", ctx, league.ID).Return(league, nil)
	repo.On("UserExists", ctx, userID).Return(nil)
	repo.On("Join", ctx, joinParams{LeagueID: league.ID, UserID: userID, PaymentRef: &ref, JoinedAt: joinTime}).
		Return(&JoinResult{Joined: true, Reason: ReasonJoined, CurrentPlayers: 1}, nil)

	_, err := NewApp(repo, clockwork.NewFakeClockAt(joinTime), nil).JoinLeague(ctx, league.ID, userID, " pay_123 ")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestJoinLeague_UnknownLeague(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	repo := &mockRepo{}
	repo.On("GetLeague", ctx, id).Return(nil, apperrors.NotFound("league", id))

	_, err := NewApp(repo, clockwork.NewFakeClock(), nil).JoinLeague(ctx, id, uuid.New(), "")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestLeaveLeague(t *testing.T) {
	ctx := context.Background()
	leagueID, userID := uuid.New(), uuid.New()

	repo := &mockRepo{}
	repo.On("Leave", ctx, leagueID, userID).Return(&LeaveResult{Left: true, CurrentPlayers: 3}, nil)
	inv := &recordingInvalidator{}

	result, err := NewApp(repo, clockwork.NewFakeClock(), inv).LeaveLeague(ctx, leagueID, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.CurrentPlayers)
	assert.Equal(t, []uuid.UUID{leagueID}, inv.leagues)
}

func TestLeaveLeague_NotAMember(t *testing.T) {
	ctx := context.Background()
	leagueID, userID := uuid.New(), uuid.New()

	repo := &mockRepo{}
	repo.On("Leave", ctx, leagueID, userID).Return(nil, apperrors.NotFound("active membership", userID))
	inv := &recordingInvalidator{}

	_, err := NewApp(repo, clockwork.NewFakeClock(), inv).LeaveLeague(ctx, leagueID, userID)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Empty(t, inv.leagues)
}
