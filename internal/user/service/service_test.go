package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/collabx/backend/internal/user/model"
)

// mockRepository is a mock implementation of repository.Repository for unit tests.
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockRepository) UpsertProfile(ctx context.Context, profile *model.User) (*model.User, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockRepository) GetRole(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func TestService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		mockRepo.On("GetByID", ctx, "u1").Return(&model.User{
			UserID: "u1",
			Name:   "Alice",
			Email:  "alice@edu.example",
			Role:   model.RoleDeveloper,
			Skills: []string{"go"},
		}, nil)

		resp, err := svc.GetProfile(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, "Alice", resp.User.Name)
		assert.Equal(t, []string{"go"}, resp.User.Skills)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		mockRepo.On("GetByID", ctx, "ghost").Return(nil, model.ErrUserNotFound)

		_, err := svc.GetProfile(ctx, "ghost")

		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		_, err := svc.GetProfile(ctx, "")

		assert.ErrorIs(t, err, model.ErrInvalidUserID)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("owner updates own profile", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		updated := &model.User{
			UserID: "u1",
			Name:   "Alice",
			Role:   model.RoleLearner,
			Skills: []string{"go", "sql"},
		}
		mockRepo.On("UpsertProfile", ctx, mock.AnythingOfType("*model.User")).Return(updated, nil)

		resp, err := svc.UpdateProfile(ctx, "u1", "u1", &model.UpdateProfileRequest{
			Role:   model.RoleLearner,
			Skills: []string{"go", "sql"},
		})

		require.NoError(t, err)
		assert.Equal(t, model.RoleLearner, resp.User.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("cannot update someone else's profile", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		_, err := svc.UpdateProfile(ctx, "u1", "u2", &model.UpdateProfileRequest{Name: "Eve"})

		assert.ErrorIs(t, err, model.ErrNotProfileOwner)
		mockRepo.AssertNotCalled(t, "UpsertProfile", mock.Anything, mock.Anything)
	})

	t.Run("admin role is not self-assignable", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		_, err := svc.UpdateProfile(ctx, "u1", "u1", &model.UpdateProfileRequest{
			Role: model.RoleAdmin,
		})

		assert.ErrorIs(t, err, model.ErrInvalidRole)
		mockRepo.AssertNotCalled(t, "UpsertProfile", mock.Anything, mock.Anything)
	})
}
