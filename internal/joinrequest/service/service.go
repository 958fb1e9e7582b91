// Package service provides business logic layer for the joinrequest module.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/collabx/backend/internal/config"
	"github.com/collabx/backend/internal/joinrequest/model"
	"github.com/collabx/backend/internal/joinrequest/repository"
	"github.com/collabx/backend/internal/match"
	projectModel "github.com/collabx/backend/internal/project/model"
	projectRepository "github.com/collabx/backend/internal/project/repository"
	rosterModel "github.com/collabx/backend/internal/roster/model"
	rosterRepository "github.com/collabx/backend/internal/roster/repository"
	userModel "github.com/collabx/backend/internal/user/model"
	userRepository "github.com/collabx/backend/internal/user/repository"
)

// Candidate identifies the submitting user as supplied by the identity provider.
type Candidate struct {
	ID    string
	Name  string
	Email string
}

// Service defines the interface for join request business logic operations.
type Service interface {
	// Submit creates a pending join request with a computed match score.
	Submit(ctx context.Context, candidate Candidate, projectID string, req *model.SubmitRequest) (*model.RequestResponse, error)

	// ListForProject returns all requests for a project (owner or admin).
	ListForProject(ctx context.Context, actorID, projectID, sort string) (*model.RequestListResponse, error)

	// ListForUser returns the user's own requests.
	ListForUser(ctx context.Context, actorID, userID string) (*model.RequestListResponse, error)

	// Decide moves a pending request to accepted or rejected. Accepting
	// also adds the candidate to the project roster; status and roster
	// are written in one transaction so they cannot diverge.
	Decide(ctx context.Context, actorID, requestID string, req *model.DecideRequest) (*model.RequestResponse, error)
}

type service struct {
	repo        repository.Repository
	projectRepo projectRepository.Repository
	userRepo    userRepository.Repository
	db          *gorm.DB
	portalCfg   appConfig.PortalConfig
	logger      *zap.SugaredLogger
}

// New creates a new joinrequest service instance.
func New(
	repo repository.Repository,
	projectRepo projectRepository.Repository,
	userRepo userRepository.Repository,
	db *gorm.DB,
	portalCfg appConfig.PortalConfig,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:        repo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		db:          db,
		portalCfg:   portalCfg,
		logger:      logger,
	}
}

// Submit creates a pending join request with a computed match score.
// The candidate's profile is merge-upserted with the declared skills and
// role before the request record is written; validation failures create
// no record at all.
func (s *service) Submit(
	ctx context.Context,
	candidate Candidate,
	projectID string,
	req *model.SubmitRequest,
) (*model.RequestResponse, error) {
	if !model.ValidRole(req.Role) {
		return nil, model.ErrInvalidRole
	}
	if len(req.Skills) == 0 {
		return nil, model.ErrEmptySkills
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.Status != projectModel.StatusApproved {
		return nil, model.ErrProjectNotJoinable
	}

	score := match.Score(project.SkillsRequired, req.Skills)

	// Keep the candidate's profile current; merge semantics leave
	// unrelated profile fields untouched. A stored admin role is never
	// downgraded by the request role, which applies to this request only.
	profileRole := req.Role
	if existing, getErr := s.userRepo.GetByID(ctx, candidate.ID); getErr == nil &&
		existing.Role == userModel.RoleAdmin {
		profileRole = ""
	}
	if _, upsertErr := s.userRepo.UpsertProfile(ctx, &userModel.User{
		UserID: candidate.ID,
		Name:   candidate.Name,
		Email:  candidate.Email,
		Role:   profileRole,
		Skills: req.Skills,
	}); upsertErr != nil {
		s.logger.Errorw("profile upsert on submit failed",
			"user_id", candidate.ID, "error", upsertErr)
		return nil, upsertErr
	}

	now := time.Now()
	request := &model.JoinRequest{
		RequestID:       uuid.NewString(),
		ProjectID:       projectID,
		UserID:          candidate.ID,
		UserName:        candidate.Name,
		Role:            req.Role,
		Skills:          req.Skills,
		Message:         req.Message,
		MatchPercentage: score,
		Status:          model.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if createErr := s.repo.Create(ctx, request); createErr != nil {
		s.logger.Errorw("Submit failed",
			"project_id", projectID, "user_id", candidate.ID, "error", createErr)
		return nil, createErr
	}

	s.logger.Infow("join request submitted",
		"request_id", request.RequestID,
		"project_id", projectID,
		"user_id", candidate.ID,
		"match_percentage", score)

	return &model.RequestResponse{Request: *request}, nil
}

// ListForProject returns all requests for a project (owner or admin).
func (s *service) ListForProject(
	ctx context.Context,
	actorID, projectID, sort string,
) (*model.RequestListResponse, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeOwner(ctx, actorID, project); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByProject(ctx, projectID, sort)
	if err != nil {
		return nil, err
	}

	return &model.RequestListResponse{
		Requests: requests,
		Total:    len(requests),
	}, nil
}

// ListForUser returns the user's own requests.
func (s *service) ListForUser(ctx context.Context, actorID, userID string) (*model.RequestListResponse, error) {
	if actorID != userID {
		return nil, model.ErrNotRequestOwner
	}

	requests, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.RequestListResponse{
		Requests: requests,
		Total:    len(requests),
	}, nil
}

// Decide moves a pending request to accepted or rejected.
func (s *service) Decide(
	ctx context.Context,
	actorID, requestID string,
	req *model.DecideRequest,
) (*model.RequestResponse, error) {
	if req.Outcome != model.StatusAccepted && req.Outcome != model.StatusRejected {
		return nil, model.ErrInvalidOutcome
	}

	request, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetByID(ctx, request.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeOwner(ctx, actorID, project); err != nil {
		return nil, err
	}

	// Status update and roster mutation commit or roll back together.
	// The update itself carries a pending-status predicate, so of two
	// concurrent decisions only one can apply; the loser sees zero rows
	// updated and fails with ErrAlreadyDecided.
	var decided *model.JoinRequest
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		decided, txErr = s.decideInTransaction(ctx, tx, requestID, req.Outcome, project)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("join request decided",
		"request_id", requestID,
		"project_id", request.ProjectID,
		"outcome", req.Outcome,
		"actor_id", actorID)

	return &model.RequestResponse{Request: *decided}, nil
}

// decideInTransaction applies the state transition and, on accept, the
// roster insertion within a single transaction.
func (s *service) decideInTransaction(
	ctx context.Context,
	tx *gorm.DB,
	requestID, outcome string,
	project *projectModel.Project,
) (*model.JoinRequest, error) {
	requestRepo := repository.New(tx, s.logger)

	request, err := requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.IsTerminal() {
		return nil, model.ErrAlreadyDecided
	}

	now := time.Now()
	if err := requestRepo.UpdateStatus(ctx, requestID, outcome, now); err != nil {
		return nil, err
	}

	if outcome == model.StatusAccepted {
		rosterRepo := rosterRepository.New(tx, s.logger)

		if s.portalCfg.EnforceTeamCapacity {
			count, countErr := rosterRepo.CountMembers(ctx, project.ProjectID)
			if countErr != nil {
				return nil, countErr
			}
			onRoster, memberErr := rosterRepo.IsMember(ctx, project.ProjectID, request.UserID)
			if memberErr != nil {
				return nil, memberErr
			}
			if !onRoster && count >= project.TeamSize {
				return nil, rosterModel.ErrTeamFull
			}
		}

		if addErr := rosterRepo.AddMember(ctx, &rosterModel.ProjectMember{
			ProjectID:  project.ProjectID,
			UserID:     request.UserID,
			UserName:   request.UserName,
			MemberRole: request.Role,
			JoinedAt:   now,
		}); addErr != nil {
			return nil, addErr
		}
	}

	return requestRepo.GetByID(ctx, requestID)
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
