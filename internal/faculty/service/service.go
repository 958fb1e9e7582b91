// Package service provides business logic layer for the faculty module.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/collabx/backend/internal/faculty/model"
	"github.com/collabx/backend/internal/faculty/repository"
	userModel "github.com/collabx/backend/internal/user/model"
)

// Service defines the interface for faculty business logic operations.
// Reads are public; writes require the admin role.
type Service interface {
	Create(ctx context.Context, actorID string, req *model.CreateFacultyRequest) (*model.FacultyResponse, error)
	Get(ctx context.Context, facultyID string) (*model.FacultyResponse, error)
	List(ctx context.Context) (*model.FacultyListResponse, error)
	Update(ctx context.Context, actorID, facultyID string, req *model.UpdateFacultyRequest) (*model.FacultyResponse, error)
	Delete(ctx context.Context, actorID, facultyID string) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new faculty service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Create(ctx context.Context, actorID string, req *model.CreateFacultyRequest) (*model.FacultyResponse, error) {
	if err := s.authorizeAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &model.Faculty{
		FacultyID:   uuid.NewString(),
		Name:        req.Name,
		Department:  req.Department,
		Designation: req.Designation,
		Domain:      req.Domain,
		Email:       req.Email,
		Skills:      req.Skills,
		Description: req.Description,
		Avatar:      req.Avatar,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Errorw("faculty create failed", "error", err)
		return nil, err
	}

	s.logger.Infow("faculty entry created", "faculty_id", entry.FacultyID, "actor_id", actorID)
	return &model.FacultyResponse{Faculty: *entry}, nil
}

func (s *service) Get(ctx context.Context, facultyID string) (*model.FacultyResponse, error) {
	entry, err := s.repo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	return &model.FacultyResponse{Faculty: *entry}, nil
}

func (s *service) List(ctx context.Context) (*model.FacultyListResponse, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &model.FacultyListResponse{Faculty: entries, Total: len(entries)}, nil
}

func (s *service) Update(ctx context.Context, actorID, facultyID string, req *model.UpdateFacultyRequest) (*model.FacultyResponse, error) {
	if err := s.authorizeAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	entry, err := s.repo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	applyUpdate(entry, req)

	if err := s.repo.Save(ctx, entry); err != nil {
		s.logger.Errorw("faculty update failed", "faculty_id", facultyID, "error", err)
		return nil, err
	}

	return &model.FacultyResponse{Faculty: *entry}, nil
}

func (s *service) Delete(ctx context.Context, actorID, facultyID string) error {
	if err := s.authorizeAdmin(ctx, actorID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, facultyID); err != nil {
		return err
	}

	s.logger.Infow("faculty entry deleted", "faculty_id", facultyID, "actor_id", actorID)
	return nil
}

// applyUpdate overlays the provided fields onto the stored entry.
func applyUpdate(entry *model.Faculty, req *model.UpdateFacultyRequest) {
	if req.Name != nil {
		entry.Name = *req.Name
	}
	if req.Department != nil {
		entry.Department = *req.Department
	}
	if req.Designation != nil {
		entry.Designation = *req.Designation
	}
	if req.Domain != nil {
		entry.Domain = *req.Domain
	}
	if req.Email != nil {
		entry.Email = *req.Email
	}
	if req.Skills != nil {
		entry.Skills = *req.Skills
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Avatar != nil {
		entry.Avatar = *req.Avatar
	}
}

func (s *service) authorizeAdmin(ctx context.Context, actorID string) error {
	role, err := s.repo.GetActorRole(ctx, actorID)
	if err != nil {
		return err
	}
	if role != userModel.RoleAdmin {
		return model.ErrNotAdmin
	}
	return nil
}
