// Package service provides business logic layer for the hackathon module.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/collabx/backend/internal/hackathon/model"
	"github.com/collabx/backend/internal/hackathon/repository"
	userModel "github.com/collabx/backend/internal/user/model"
)

// Service defines the interface for hackathon business logic operations.
// Reads are public; writes require the admin role.
type Service interface {
	Create(ctx context.Context, actorID string, req *model.CreateHackathonRequest) (*model.HackathonResponse, error)
	Get(ctx context.Context, hackathonID string) (*model.HackathonResponse, error)
	List(ctx context.Context, status string) (*model.HackathonListResponse, error)
	Update(ctx context.Context, actorID, hackathonID string, req *model.UpdateHackathonRequest) (*model.HackathonResponse, error)
	Delete(ctx context.Context, actorID, hackathonID string) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new hackathon service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Create(ctx context.Context, actorID string, req *model.CreateHackathonRequest) (*model.HackathonResponse, error) {
	if err := s.authorizeAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	if !model.ValidStatus(req.Status) {
		return nil, model.ErrInvalidStatus
	}
	if !model.ValidFormat(req.Format) {
		return nil, model.ErrInvalidFormat
	}

	now := time.Now()
	entry := &model.Hackathon{
		HackathonID: uuid.NewString(),
		EventName:   req.EventName,
		EventDate:   req.EventDate,
		Status:      req.Status,
		Category:    req.Category,
		Format:      req.Format,
		JoiningURL:  req.JoiningURL,
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Errorw("hackathon create failed", "error", err)
		return nil, err
	}

	s.logger.Infow("hackathon created", "hackathon_id", entry.HackathonID, "actor_id", actorID)
	return &model.HackathonResponse{Hackathon: *entry}, nil
}

func (s *service) Get(ctx context.Context, hackathonID string) (*model.HackathonResponse, error) {
	entry, err := s.repo.GetByID(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	return &model.HackathonResponse{Hackathon: *entry}, nil
}

func (s *service) List(ctx context.Context, status string) (*model.HackathonListResponse, error) {
	if status != "" && !model.ValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}

	entries, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return &model.HackathonListResponse{Hackathons: entries, Total: len(entries)}, nil
}

func (s *service) Update(ctx context.Context, actorID, hackathonID string, req *model.UpdateHackathonRequest) (*model.HackathonResponse, error) {
	if err := s.authorizeAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	entry, err := s.repo.GetByID(ctx, hackathonID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !model.ValidStatus(*req.Status) {
		return nil, model.ErrInvalidStatus
	}
	if req.Format != nil && !model.ValidFormat(*req.Format) {
		return nil, model.ErrInvalidFormat
	}

	applyUpdate(entry, req)

	if err := s.repo.Save(ctx, entry); err != nil {
		s.logger.Errorw("hackathon update failed", "hackathon_id", hackathonID, "error", err)
		return nil, err
	}

	return &model.HackathonResponse{Hackathon: *entry}, nil
}

func (s *service) Delete(ctx context.Context, actorID, hackathonID string) error {
	if err := s.authorizeAdmin(ctx, actorID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, hackathonID); err != nil {
		return err
	}

	s.logger.Infow("hackathon deleted", "hackathon_id", hackathonID, "actor_id", actorID)
	return nil
}

// applyUpdate overlays the provided fields onto the stored entry.
func applyUpdate(entry *model.Hackathon, req *model.UpdateHackathonRequest) {
	if req.EventName != nil {
		entry.EventName = *req.EventName
	}
	if req.EventDate != nil {
		entry.EventDate = *req.EventDate
	}
	if req.Status != nil {
		entry.Status = *req.Status
	}
	if req.Category != nil {
		entry.Category = *req.Category
	}
	if req.Format != nil {
		entry.Format = *req.Format
	}
	if req.JoiningURL != nil {
		entry.JoiningURL = *req.JoiningURL
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
