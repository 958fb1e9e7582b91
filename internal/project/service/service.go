// Package service provides business logic layer for the project module.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/collabx/backend/internal/project/model"
	"github.com/collabx/backend/internal/project/repository"
	userModel "github.com/collabx/backend/internal/user/model"
)

// Service defines the interface for project business logic operations.
type Service interface {
	// CreateProject creates a new project owned by the actor, pending moderation.
	CreateProject(ctx context.Context, actorID string, req *model.CreateProjectRequest) (*model.ProjectResponse, error)

	// GetProject returns a project with its derived membership state.
	GetProject(ctx context.Context, projectID string) (*model.ProjectResponse, error)

	// ListProjects returns projects matching the filter.
	ListProjects(ctx context.Context, filter model.ListFilter) (*model.ProjectListResponse, error)

	// UpdateProject merges the request into a project (owner or admin).
	UpdateProject(ctx context.Context, actorID, projectID string, req *model.UpdateProjectRequest) (*model.ProjectResponse, error)

	// DeleteProject removes a project and its roster (owner or admin).
	DeleteProject(ctx context.Context, actorID, projectID string) error

	// ModerateProject applies an admin approve/reject decision.
	ModerateProject(ctx context.Context, actorID, projectID string, req *model.ModerateProjectRequest) (*model.ProjectResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new project service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// CreateProject creates a new project owned by the actor, pending moderation.
func (s *service) CreateProject(
	ctx context.Context,
	actorID string,
	req *model.CreateProjectRequest,
) (*model.ProjectResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	project := &model.Project{
		ProjectID:      uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		Domain:         req.Domain,
		Difficulty:     req.Difficulty,
		SkillsRequired: req.SkillsRequired,
		TeamSize:       req.TeamSize,
		ReferenceURL:   req.ReferenceURL,
		CreatedBy:      actorID,
		Status:         model.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if project.TeamSize == 0 {
		project.TeamSize = 1
	}

	if err := s.repo.Create(ctx, project); err != nil {
		s.logger.Errorw("CreateProject failed", "actor_id", actorID, "error", err)
		return nil, err
	}

	s.logger.Infow("project created",
		"project_id", project.ProjectID, "created_by", actorID, "domain", project.Domain)

	return &model.ProjectResponse{
		Project:        *project,
		CurrentMembers: 0,
		Team:           []model.TeamEntry{},
	}, nil
}

// validateCreateRequest validates the create project request.
func validateCreateRequest(req *model.CreateProjectRequest) error {
	if len(req.Title) == 0 || len(req.Title) > 255 {
		return model.ErrInvalidTitle
	}
	if !model.ValidDomain(req.Domain) {
		return model.ErrInvalidDomain
	}
	if !model.ValidDifficulty(req.Difficulty) {
		return model.ErrInvalidDifficulty
	}
	if req.TeamSize < 0 {
		return model.ErrInvalidTeamSize
	}
	return nil
}

// GetProject returns a project with its derived membership state.
func (s *service) GetProject(ctx context.Context, projectID string) (*model.ProjectResponse, error) {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, project)
}

// buildResponse attaches the roster snapshot and derived member count.
func (s *service) buildResponse(ctx context.Context, project *model.Project) (*model.ProjectResponse, error) {
	team, err := s.repo.GetTeamEntries(ctx, project.ProjectID)
	if err != nil {
		return nil, err
	}

	return &model.ProjectResponse{
		Project:        *project,
		CurrentMembers: len(team),
		Team:           team,
	}, nil
}

// ListProjects returns projects matching the filter.
func (s *service) ListProjects(ctx context.Context, filter model.ListFilter) (*model.ProjectListResponse, error) {
	projects, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]model.ProjectResponse, 0, len(projects))
	for i := range projects {
		resp, buildErr := s.buildResponse(ctx, &projects[i])
		if buildErr != nil {
			return nil, buildErr
		}
		responses = append(responses, *resp)
	}

	return &model.ProjectListResponse{
		Projects: responses,
		Total:    len(responses),
	}, nil
}

// UpdateProject merges the request into a project (owner or admin).
func (s *service) UpdateProject(
	ctx context.Context,
	actorID, projectID string,
	req *model.UpdateProjectRequest,
) (*model.ProjectResponse, error) {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeOwner(ctx, actorID, project); err != nil {
		return nil, err
	}

	if req.Title != "" {
		if len(req.Title) > 255 {
			return nil, model.ErrInvalidTitle
		}
		project.Title = req.Title
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	if req.Domain != "" {
		if !model.ValidDomain(req.Domain) {
			return nil, model.ErrInvalidDomain
		}
		project.Domain = req.Domain
	}
	if req.Difficulty != "" {
		if !model.ValidDifficulty(req.Difficulty) {
			return nil, model.ErrInvalidDifficulty
		}
		project.Difficulty = req.Difficulty
	}
	if req.SkillsRequired != nil {
		project.SkillsRequired = req.SkillsRequired
	}
	if req.TeamSize != 0 {
		if req.TeamSize < 0 {
			return nil, model.ErrInvalidTeamSize
		}
		project.TeamSize = req.TeamSize
	}
	if req.ReferenceURL != "" {
		project.ReferenceURL = req.ReferenceURL
	}

	if err := s.repo.Save(ctx, project); err != nil {
		s.logger.Errorw("UpdateProject failed", "project_id", projectID, "error", err)
		return nil, err
	}

	return s.buildResponse(ctx, project)
}

// DeleteProject removes a project and its roster (owner or admin).
func (s *service) DeleteProject(ctx context.Context, actorID, projectID string) error {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	if err := s.authorizeOwner(ctx, actorID, project); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, projectID); err != nil {
		s.logger.Errorw("DeleteProject failed", "project_id", projectID, "error", err)
		return err
	}

	s.logger.Infow("project deleted", "project_id", projectID, "actor_id", actorID)
	return nil
}

// ModerateProject applies an admin approve/reject decision.
func (s *service) ModerateProject(
	ctx context.Context,
	actorID, projectID string,
	req *model.ModerateProjectRequest,
) (*model.ProjectResponse, error) {
	if req.Decision != model.StatusApproved && req.Decision != model.StatusRejected {
		return nil, model.ErrInvalidDecision
	}

	role, err := s.repo.GetActorRole(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if role != userModel.RoleAdmin {
		return nil, model.ErrNotProjectOwner
	}

	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	project.Status = req.Decision
	if err := s.repo.Save(ctx, project); err != nil {
		s.logger.Errorw("ModerateProject failed", "project_id", projectID, "error", err)
		return nil, err
	}

	s.logger.Infow("project moderated",
		"project_id", projectID, "decision", req.Decision, "actor_id", actorID)

	return s.buildResponse(ctx, project)
}

// authorizeOwner allows the project owner and platform admins.
func (s *service) authorizeOwner(ctx context.Context, actorID string, project *model.Project) error {
	if actorID == project.CreatedBy {
		return nil
	}

	role, err := s.repo.GetActorRole(ctx, actorID)
	if err != nil {
		return err
	}
	if role == userModel.RoleAdmin {
		return nil
	}

	return model.ErrNotProjectOwner
}
