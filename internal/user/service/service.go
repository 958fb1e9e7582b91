// Package service provides business logic layer for the user module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/collabx/backend/internal/user/model"
	"github.com/collabx/backend/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// GetProfile returns a user profile.
	GetProfile(ctx context.Context, userID string) (*model.ProfileResponse, error)

	// UpdateProfile merges the request into the caller's own profile.
	UpdateProfile(ctx context.Context, actorID, userID string, req *model.UpdateProfileRequest) (*model.ProfileResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// GetProfile returns a user profile.
func (s *service) GetProfile(ctx context.Context, userID string) (*model.ProfileResponse, error) {
	if userID == "" {
		return nil, model.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.ProfileResponse{User: *user}, nil
}

// UpdateProfile merges the request into the caller's own profile.
func (s *service) UpdateProfile(
	ctx context.Context,
	actorID, userID string,
	req *model.UpdateProfileRequest,
) (*model.ProfileResponse, error) {
	if userID == "" {
		return nil, model.ErrInvalidUserID
	}
	if actorID != userID {
		return nil, model.ErrNotProfileOwner
	}
	if req.Role != "" && req.Role != model.RoleDeveloper && req.Role != model.RoleLearner {
		// Admin is never self-assignable.
		return nil, model.ErrInvalidRole
	}

	user, err := s.repo.UpsertProfile(ctx, &model.User{
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Skills:   req.Skills,
		LinkedIn: req.LinkedIn,
		GitHub:   req.GitHub,
		Avatar:   req.Avatar,
	})
	if err != nil {
		s.logger.Errorw("UpdateProfile failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Infow("profile updated", "user_id", userID)
	return &model.ProfileResponse{User: *user}, nil
}
