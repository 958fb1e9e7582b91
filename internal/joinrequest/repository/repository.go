// Package repository provides data access layer for the joinrequest module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/collabx/backend/internal/joinrequest/model"
)

// Repository defines the interface for join request data access operations.
type Repository interface {
	// Create persists a new join request.
	Create(ctx context.Context, request *model.JoinRequest) error

	// GetByID finds a join request by request_id.
	GetByID(ctx context.Context, requestID string) (*model.JoinRequest, error)

	// ListByProject returns all requests for a project regardless of state.
	// sort is model.SortMatch (descending percentage) or model.SortRecent
	// (descending creation time, the default).
	ListByProject(ctx context.Context, projectID, sort string) ([]model.JoinRequest, error)

	// ListByUser returns all requests submitted by a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.JoinRequest, error)

	// UpdateStatus moves a pending request to a terminal state.
	// Returns model.ErrAlreadyDecided if the request is no longer pending.
	UpdateStatus(ctx context.Context, requestID, status string, decidedAt time.Time) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new joinrequest repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create persists a new join request.
func (r *repository) Create(ctx context.Context, request *model.JoinRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID finds a join request by request_id.
func (r *repository) GetByID(ctx context.Context, requestID string) (*model.JoinRequest, error) {
	var request model.JoinRequest
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		First(&request).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// ListByProject returns all requests for a project regardless of state.
func (r *repository) ListByProject(ctx context.Context, projectID, sort string) ([]model.JoinRequest, error) {
	order := "created_at DESC"
	if sort == model.SortMatch {
		order = "match_percentage DESC, created_at DESC"
	}

	var requests []model.JoinRequest
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order(order).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	if requests == nil {
		requests = []model.JoinRequest{}
	}

	return requests, nil
}

// ListByUser returns all requests submitted by a user, newest first.
func (r *repository) ListByUser(ctx context.Context, userID string) ([]model.JoinRequest, error) {
	var requests []model.JoinRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	if requests == nil {
		requests = []model.JoinRequest{}
	}

	return requests, nil
}

// UpdateStatus moves a pending request to a terminal state. The status
// predicate makes the transition atomic: a request that was decided by a
// concurrent transaction matches zero rows and yields ErrAlreadyDecided.
func (r *repository) UpdateStatus(ctx context.Context, requestID, status string, decidedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.JoinRequest{}).
		Where("request_id = ? AND status = ?", requestID, model.StatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"decided_at": decidedAt,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrAlreadyDecided
	}
	return nil
}
