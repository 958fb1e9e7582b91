// Package service provides business logic layer for the roster module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	appConfig "github.com/collabx/backend/internal/config"
	projectModel "github.com/collabx/backend/internal/project/model"
	projectRepository "github.com/collabx/backend/internal/project/repository"
	"github.com/collabx/backend/internal/roster/model"
	"github.com/collabx/backend/internal/roster/repository"
	userModel "github.com/collabx/backend/internal/user/model"
	userRepository "github.com/collabx/backend/internal/user/repository"
)

// Service defines the interface for roster business logic operations.
type Service interface {
	// AddMember appends a member to a project team (idempotent).
	AddMember(ctx context.Context, actorID, projectID, userID, userName, role string) error

	// RemoveMember removes a member from a project team (no-op for non-members).
	RemoveMember(ctx context.Context, actorID, projectID, userID string) error

	// GetRoster returns the team roster enriched with current profile data.
	GetRoster(ctx context.Context, projectID string) (*model.RosterResponse, error)
}

type service struct {
	repo        repository.Repository
	projectRepo projectRepository.Repository
	userRepo    userRepository.Repository
	portalCfg   appConfig.PortalConfig
	logger      *zap.SugaredLogger
}

// New creates a new roster service instance.
func New(
	repo repository.Repository,
	projectRepo projectRepository.Repository,
	userRepo userRepository.Repository,
	portalCfg appConfig.PortalConfig,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:        repo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		portalCfg:   portalCfg,
		logger:      logger,
	}
}

// AddMember appends a member to a project team (idempotent).
func (s *service) AddMember(ctx context.Context, actorID, projectID, userID, userName, role string) error {
	if userID == "" || userName == "" {
		return model.ErrInvalidMember
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	if err := s.authorizeOwner(ctx, actorID, project); err != nil {
		return err
	}

	if s.portalCfg.EnforceTeamCapacity {
		if capErr := s.checkCapacity(ctx, project, userID); capErr != nil {
			return capErr
		}
	}

	if err := s.repo.AddMember(ctx, &model.ProjectMember{
		ProjectID:  projectID,
		UserID:     userID,
		UserName:   userName,
		MemberRole: role,
	}); err != nil {
		s.logger.Errorw("AddMember failed",
			"project_id", projectID, "user_id", userID, "error", err)
		return err
	}

	s.logger.Infow("member added", "project_id", projectID, "user_id", userID)
	return nil
}

// checkCapacity fails with ErrTeamFull when the roster is at team_size.
// An already present user never trips the check (the add is a no-op).
func (s *service) checkCapacity(ctx context.Context, project *projectModel.Project, userID string) error {
	exists, err := s.repo.IsMember(ctx, project.ProjectID, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	count, err := s.repo.CountMembers(ctx, project.ProjectID)
	if err != nil {
		return err
	}
	if count >= project.TeamSize {
		return model.ErrTeamFull
	}
	return nil
}

// RemoveMember removes a member from a project team.
// Removing a non-member is a no-op; the derived member count is computed
// from the roster and therefore can never go negative.
func (s *service) RemoveMember(ctx context.Context, actorID, projectID, userID string) error {
	if userID == "" {
		return model.ErrInvalidMember
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	if err := s.authorizeOwner(ctx, actorID, project); err != nil {
		return err
	}

	if err := s.repo.RemoveMember(ctx, projectID, userID); err != nil {
		s.logger.Errorw("RemoveMember failed",
			"project_id", projectID, "user_id", userID, "error", err)
		return err
	}

	s.logger.Infow("member removed", "project_id", projectID, "user_id", userID)
	return nil
}

// GetRoster returns the team roster enriched with current profile data.
func (s *service) GetRoster(ctx context.Context, projectID string) (*model.RosterResponse, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, projectID)
	if err != nil {
		return nil, err
	}

	details := make([]model.MemberDetail, 0, len(members))
	for _, member := range members {
		details = append(details, s.enrich(ctx, member))
	}

	return &model.RosterResponse{
		ProjectID: projectID,
		Members:   details,
		Total:     len(details),
	}, nil
}

// enrich attaches current profile email and skills to a roster entry,
// degrading to placeholders when the profile is missing or unreadable.
func (s *service) enrich(ctx context.Context, member model.ProjectMember) model.MemberDetail {
	detail := model.MemberDetail{
		UserID:   member.UserID,
		UserName: member.UserName,
		Role:     member.MemberRole,
		JoinedAt: member.JoinedAt,
		Email:    model.ProfilePlaceholder,
		Skills:   []string{},
	}

	profile, err := s.userRepo.GetByID(ctx, member.UserID)
	if err != nil {
		if !errors.Is(err, userModel.ErrUserNotFound) {
			s.logger.Warnw("roster enrichment failed",
				"project_id", member.ProjectID, "user_id", member.UserID, "error", err)
		}
		return detail
	}

	if profile.Email != "" {
		detail.Email = profile.Email
	}
	if profile.Skills != nil {
		detail.Skills = profile.Skills
	}
	return detail
}

// authorizeOwner allows the project owner and platform admins.
func (s *service) authorizeOwner(ctx context.Context, actorID string, project *projectModel.Project) error {
	if actorID == project.CreatedBy {
		return nil
	}

	role, err := s.projectRepo.GetActorRole(ctx, actorID)
	if err != nil {
		return err
	}
	if role == userModel.RoleAdmin {
		return nil
	}

	return projectModel.ErrNotProjectOwner
}
