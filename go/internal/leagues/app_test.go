package leagues

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateLeague(ctx context.Context, seasonID uuid.UUID, req CreateLeagueRequest) (*models.League, error) {
	args := m.Called(ctx, seasonID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.League), args.Error(1)
}

func (m *mockRepo) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.League), args.Error(1)
}

func (m *mockRepo) ListLeaguesBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.League, error) {
	args := m.Called(ctx, seasonID)
	return args.Get(0).([]models.League), args.Error(1)
}

func (m *mockRepo) ListMembers(ctx context.Context, leagueID uuid.UUID) ([]models.Member, error) {
	args := m.Called(ctx, leagueID)
	return args.Get(0).([]models.Member), args.Error(1)
}

func TestCreateLeague_AppliesDefaults(t *testing.T) {
	ctx := context.Background()
	seasonID := uuid.New()
	repo := &mockRepo{}

	expected := CreateLeagueRequest{
		Name:            "Tribal Council",
		SeasonID:        seasonID.String(),
		MaxPlayers:      8,
		PicksPerUser:    3,
		ScoringMode:     models.ScoringModeDraft,
		OwnershipCutoff: models.OwnershipCutoffNone,
	}
	league := &models.League{ID: uuid.New(), Name: "Tribal Council", MaxPlayers: 8, ScoringMode: models.ScoringModeDraft}
	repo.On("CreateLeague", ctx, seasonID, expected).Return(league, nil)

	got, err := NewApp(repo).CreateLeague(ctx, CreateLeagueRequest{
		Name:         " Tribal Council ",
		SeasonID:     seasonID.String(),
		MaxPlayers:   8,
		PicksPerUser: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, league, got)
	repo.AssertExpectations(t)
}

func TestCreateLeague_Validation(t *testing.T) {
	valid := CreateLeagueRequest{
		Name:         "League",
		SeasonID:     uuid.NewString(),
		MaxPlayers:   4,
		PicksPerUser: 2,
	}

	tests := []struct {
		name   string
		mutate func(*CreateLeagueRequest)
		field  string
	}{
		{"missing name", func(r *CreateLeagueRequest) { r.Name = "" }, "name"},
		{"bad season", func(r *CreateLeagueRequest) { r.SeasonID = "nope" }, "season_id"},
		{"zero capacity", func(r *CreateLeagueRequest) { r.MaxPlayers = 0 }, "max_players"},
		{"negative picks", func(r *CreateLeagueRequest) { r.PicksPerUser = -1 }, "picks_per_user"},
		{"bad scoring mode", func(r *CreateLeagueRequest) { r.ScoringMode = "AUCTION" }, "scoring_mode"},
		{"bad cutoff", func(r *CreateLeagueRequest) { r.OwnershipCutoff = "SOMETIMES" }, "ownership_cutoff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			req := valid
			tt.mutate(&req)

			_, err := NewApp(repo).CreateLeague(context.Background(), req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.field, apperrors.FieldOf(err))
			repo.AssertNotCalled(t, "CreateLeague", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestListMembers_UnknownLeague(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := &mockRepo{}
	repo.On("GetLeague", ctx, id).Return(nil, apperrors.NotFound("league", id))

	_, err := NewApp(repo).ListMembers(ctx, id)
	assert.True(t, apperrors.IsNotFound(err))
	repo.AssertNotCalled(t, "ListMembers", mock.Anything, mock.Anything)
}

type fakeQuerier struct {
	league db.League
	err    error
}

func (f *fakeQuerier) CreateLeague(context.Context, db.CreateLeagueParams) (db.League, error) {
	return f.league, f.err
}

func (f *fakeQuerier) GetLeague(context.Context, uuid.UUID) (db.League, error) {
	return f.league, f.err
}

func (f *fakeQuerier) GetSeason(_ context.Context, id uuid.UUID) (db.Season, error) {
	return db.Season{ID: id}, nil
}

func (f *fakeQuerier) ListLeaguesBySeason(context.Context, uuid.UUID) ([]db.League, error) {
	return []db.League{f.league}, f.err
}

func (f *fakeQuerier) ListActiveMembers(context.Context, uuid.UUID) ([]db.ListActiveMembersRow, error) {
	return nil, f.err
}

func TestRepository_ConvertsRow(t *testing.T) {
	drafted := time.Date(2026, 3, 4, 20, 0, 0, 0, time.UTC)
	row := db.League{
		ID:              uuid.New(),
		Name:            "Outwit",
		SeasonID:        uuid.New(),
		MaxPlayers:      8,
		CurrentPlayers:  7,
		EntryFee:        true,
		PicksPerUser:    3,
		ScoringMode:     "WEEKLY_PICK",
		OwnershipCutoff: "ELIMINATION_WEEK",
		DraftStatus:     "COMPLETED",
		DraftSeed:       pgtype.Int8{Int64: 42, Valid: true},
		DraftedAt:       pgtype.Timestamptz{Time: drafted, Valid: true},
	}

	league, err := NewRepository(&fakeQuerier{league: row}).GetLeague(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, league.CurrentPlayers)
	assert.Equal(t, models.ScoringModeWeeklyPick, league.ScoringMode)
	assert.Equal(t, models.OwnershipCutoffEliminationWeek, league.OwnershipCutoff)
	assert.Equal(t, models.DraftStatusCompleted, league.DraftStatus)
	require.NotNil(t, league.DraftSeed)
	assert.Equal(t, int64(42), *league.DraftSeed)
	require.NotNil(t, league.DraftedAt)
	assert.True(t, drafted.Equal(*league.DraftedAt))
	assert.False(t, league.IsFull())
}

func TestRepository_NoRowsIsNotFound(t *testing.T) {
	_, err := NewRepository(&fakeQuerier{err: pgx.ErrNoRows}).GetLeague(context.Background(), uuid.New())
	assert.True(t, apperrors.IsNotFound(err))
}
