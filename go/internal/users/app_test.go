package users

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)

	var u *models.User
	if args.Get(0) != nil {
		u = args.Get(0).(*models.User)
	}
	return u, args.Error(1)
}

func (m *mockRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)

	var u *models.User
	if args.Get(0) != nil {
		u = args.Get(0).(*models.User)
	}
	return u, args.Error(1)
}

func TestCreateUser_TrimsAndCreates(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	want := &models.User{ID: uuid.New(), DisplayName: "Boston Rob"}
	repo.On("CreateUser", ctx, CreateUserRequest{DisplayName: "Boston Rob"}).Return(want, nil)

	got, err := NewApp(repo).CreateUser(ctx, CreateUserRequest{DisplayName: "  Boston Rob "})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
}

func TestCreateUser_Validation(t *testing.T) {
	repo := &mockRepo{}
	app := NewApp(repo)

	_, err := app.CreateUser(context.Background(), CreateUserRequest{DisplayName: "   "})
	assert.True(t, apperrors.IsValidation(err))

	_, err = app.CreateUser(context.Background(), CreateUserRequest{DisplayName: strings.Repeat("x", 65)})
	assert.Equal(t, "display_name", apperrors.FieldOf(err))

	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestGetUser_KeepsNotFoundKind(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := &mockRepo{}
	repo.On("GetUser", ctx, id).Return(nil, apperrors.NotFound("user", id))

	_, err := NewApp(repo).GetUser(ctx, id)
	assert.True(t, apperrors.IsNotFound(err))
}
