package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appConfig "github.com/collabx/backend/internal/config"
	projectModel "github.com/collabx/backend/internal/project/model"
	"github.com/collabx/backend/internal/roster/model"
	userModel "github.com/collabx/backend/internal/user/model"
)

// mockRepository is a mock implementation of repository.Repository for unit tests.
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) AddMember(ctx context.Context, member *model.ProjectMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockRepository) RemoveMember(ctx context.Context, projectID, userID string) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

func (m *mockRepository) IsMember(ctx context.Context, projectID, userID string) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) ListMembers(ctx context.Context, projectID string) ([]model.ProjectMember, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectMember), args.Error(1)
}

func (m *mockRepository) CountMembers(ctx context.Context, projectID string) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

// mockProjectRepository is a mock implementation of the project repository.
type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Create(ctx context.Context, project *projectModel.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) GetByID(ctx context.Context, projectID string) (*projectModel.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projectModel.Project), args.Error(1)
}

func (m *mockProjectRepository) List(ctx context.Context, filter projectModel.ListFilter) ([]projectModel.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]projectModel.Project), args.Error(1)
}

func (m *mockProjectRepository) Save(ctx context.Context, project *projectModel.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) Delete(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *mockProjectRepository) CountMembers(ctx context.Context, projectID string) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

func (m *mockProjectRepository) GetTeamEntries(ctx context.Context, projectID string) ([]projectModel.TeamEntry, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]projectModel.TeamEntry), args.Error(1)
}

func (m *mockProjectRepository) GetActorRole(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

// mockUserRepository is a mock implementation of the user repository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID string) (*userModel.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

func (m *mockUserRepository) UpsertProfile(ctx context.Context, profile *userModel.User) (*userModel.User, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

func (m *mockUserRepository) GetRole(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func ownedProject(ownerID string, teamSize int) *projectModel.Project {
	return &projectModel.Project{
		ProjectID: "p1",
		Title:     "Campus Helper",
		TeamSize:  teamSize,
		CreatedBy: ownerID,
		Status:    projectModel.StatusApproved,
	}
}

func TestService_AddMember(t *testing.T) {
	ctx := context.Background()

	t.Run("owner adds member", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockProjects := new(mockProjectRepository)
		mockUsers := new(mockUserRepository)
		svc := New(mockRepo, mockProjects, mockUsers, appConfig.PortalConfig{}, zap.NewNop().Sugar())

		mockProjects.On("GetByID", ctx, "p1").Return(ownedProject("owner", 4), nil)
		mockRepo.On("AddMember", ctx, mock.AnythingOfType("*model.ProjectMember")).Return(nil)

		err := svc.AddMember(ctx, "owner", "p1", "u1", "Alice", "developer")

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockProjects := new(mockProjectRepository)
		mockUsers := new(mockUserRepository)
		svc := New(mockRepo, mockProjects, mockUsers, appConfig.PortalConfig{}, zap.NewNop().Sugar())

		mockProjects.On("GetByID", ctx, "p1").Return(ownedProject("owner", 4), nil)
		mockProjects.On("GetActorRole", ctx, "intruder").Return("developer", nil)

		err := svc.AddMember(ctx, "intruder", "p1", "u1", "Alice", "developer")

		assert.ErrorIs(t, err, projectModel.ErrNotProjectOwner)
		mockRepo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
	})

	t.Run("admin allowed", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockProjects := new(mockProjectRepository)
		mockUsers := new(mockUserRepository)
		svc := New(mockRepo, mockProjects, mockUsers, appConfig.PortalConfig{}, zap.NewNop().Sugar())

		mockProjects.On("GetByID", ctx, "p1").Return(ownedProject("owner", 4), nil)
		mockProjects.On("GetActorRole", ctx, "moderator").Return(userModel.RoleAdmin, nil)
		mockRepo.On("AddMember", ctx, mock.AnythingOfType("*model.ProjectMember")).Return(nil)

		err := svc.AddMember(ctx, "moderator", "p1", "u1", "Alice", "developer")

		require.NoError(t, err)
	})

	t.Run("full team blocked when capacity enforced", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockProjects := new(mockProjectRepository)
		mockUsers := new(mockUserRepository)
		svc := New(mockRepo, mockProjects, mockUsers,
			appConfig.PortalConfig{EnforceTeamCapacity: true}, zap.NewNop().Sugar())

		mockProjects.On("GetByID", ctx, "p1").Return(ownedProject("owner", 2), nil)
		mockRepo.On("IsMember", ctx, "p1", "u1").Return(false, nil)
		mockRepo.On("CountMembers", ctx, "p1").Return(2, nil)

		err := svc.AddMember(ctx, "owner", "p1", "u1", "Alice", "developer")

		assert.ErrorIs(t, err, model.ErrTeamFull)
		mockRepo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
	})

	t.Run("re-add of present member bypasses capacity check", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockProjects := new(mockProjectRepository)
		mockUsers := new(mockUserRepository)
		svc := New(mockRepo, mockProjects, mockUsers,
			appConfig.PortalConfig{EnforceTeamCapacity: true}, zap.NewNop().Sugar())

		mockProjects.On("GetByID", ctx, "p1").Return(ownedProject("owner", 2), nil)
		mockRepo.On("IsMember", ctx, "p1", "u1").Return(true, nil)
		mockRepo.On("AddMember", ctx, mock.AnythingOfType("*model.ProjectMember")).Return(nil)

		err := svc.AddMember(ctx, "owner", "p1", "u1", "Alice", "developer")

		require.NoError(t, err)
		mockRepo.AssertNotCalled(t, "CountMembers", mock.Anything, mock.Anything)
	})

	t.Run("invalid member", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockProjects := new(mockProjectRepository)
		mockUsers := new(mockUserRepository)
		svc := New(mockRepo, mockProjects, mockUsers, appConfig.PortalConfig{}, zap.NewNop().Sugar())

		err := svc.AddMember(ctx, "owner", "p1", "", "Alice", "developer")

		assert.ErrorIs(t, err, model.ErrInvalidMember)
	})
}

func TestService_RemoveMember(t *testing.T) {
	ctx := context.Background()

	t.Run("owner removes member", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockProjects := new(mockProjectRepository)
		mockUsers := new(mockUserRepository)
		svc := New(mockRepo, mockProjects, mockUsers, appConfig.PortalConfig{}, zap.NewNop().Sugar())

		mockProjects.On("GetByID", ctx, "p1").Return(ownedProject("owner", 4), nil)
		mockRepo.On("RemoveMember", ctx, "p1", "u1").Return(nil)

		err := svc.RemoveMember(ctx, "owner", "p1", "u1")

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing project", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockProjects := new(mockProjectRepository)
		mockUsers := new(mockUserRepository)
		svc := New(mockRepo, mockProjects, mockUsers, appConfig.PortalConfig{}, zap.NewNop().Sugar())

		mockProjects.On("GetByID", ctx, "nope").Return(nil, projectModel.ErrProjectNotFound)

		err := svc.RemoveMember(ctx, "owner", "nope", "u1")

		assert.ErrorIs(t, err, projectModel.ErrProjectNotFound)
	})
}

func TestService_GetRoster(t *testing.T) {
	ctx := context.Background()

	t.Run("enriched with profile data", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockProjects := new(mockProjectRepository)
		mockUsers := new(mockUserRepository)
		svc := New(mockRepo, mockProjects, mockUsers, appConfig.PortalConfig{}, zap.NewNop().Sugar())

		mockProjects.On("GetByID", ctx, "p1").Return(ownedProject("owner", 4), nil)
		mockRepo.On("ListMembers", ctx, "p1").Return([]model.ProjectMember{
			{ProjectID: "p1", UserID: "u1", UserName: "Alice", MemberRole: "developer"},
		}, nil)
		mockUsers.On("GetByID", ctx, "u1").Return(&userModel.User{
			UserID: "u1",
			Name:   "Alice",
			Email:  "alice@edu.example",
			Skills: []string{"go", "sql"},
		}, nil)

		resp, err := svc.GetRoster(ctx, "p1")

		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "alice@edu.example", resp.Members[0].Email)
		assert.Equal(t, []string{"go", "sql"}, resp.Members[0].Skills)
	})

	t.Run("placeholders for missing profile", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockProjects := new(mockProjectRepository)
		mockUsers := new(mockUserRepository)
		svc := New(mockRepo, mockProjects, mockUsers, appConfig.PortalConfig{}, zap.NewNop().Sugar())

		mockProjects.On("GetByID", ctx, "p1").Return(ownedProject("owner", 4), nil)
		mockRepo.On("ListMembers", ctx, "p1").Return([]model.ProjectMember{
			{ProjectID: "p1", UserID: "ghost", UserName: "Ghost", MemberRole: "learner"},
		}, nil)
		mockUsers.On("GetByID", ctx, "ghost").Return(nil, userModel.ErrUserNotFound)

		resp, err := svc.GetRoster(ctx, "p1")

		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, model.ProfilePlaceholder, resp.Members[0].Email)
		assert.Empty(t, resp.Members[0].Skills)
		assert.Equal(t, "Ghost", resp.Members[0].UserName)
	})

	t.Run("profile lookup error degrades to placeholder", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockProjects := new(mockProjectRepository)
		mockUsers := new(mockUserRepository)
		svc := New(mockRepo, mockProjects, mockUsers, appConfig.PortalConfig{}, zap.NewNop().Sugar())

		mockProjects.On("GetByID", ctx, "p1").Return(ownedProject("owner", 4), nil)
		mockRepo.On("ListMembers", ctx, "p1").Return([]model.ProjectMember{
			{ProjectID: "p1", UserID: "u1", UserName: "Alice", MemberRole: "developer"},
		}, nil)
		mockUsers.On("GetByID", ctx, "u1").Return(nil, errors.New("connection reset"))

		resp, err := svc.GetRoster(ctx, "p1")

		require.NoError(t, err)
		assert.Equal(t, model.ProfilePlaceholder, resp.Members[0].Email)
	})

	t.Run("empty roster", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockProjects := new(mockProjectRepository)
		mockUsers := new(mockUserRepository)
		svc := New(mockRepo, mockProjects, mockUsers, appConfig.PortalConfig{}, zap.NewNop().Sugar())

		mockProjects.On("GetByID", ctx, "p1").Return(ownedProject("owner", 4), nil)
		mockRepo.On("ListMembers", ctx, "p1").Return([]model.ProjectMember{}, nil)

		resp, err := svc.GetRoster(ctx, "p1")

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.Empty(t, resp.Members)
	})
}
