// Package repository provides data access layer for the hackathon module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/collabx/backend/internal/hackathon/model"
)

// Repository defines the interface for hackathon data access operations.
type Repository interface {
	// Create persists a new hackathon entry.
	Create(ctx context.Context, entry *model.Hackathon) error

	// GetByID finds a hackathon by hackathon_id.
	GetByID(ctx context.Context, hackathonID string) (*model.Hackathon, error)

	// List returns hackathons newest first, optionally filtered by status.
	List(ctx context.Context, status string) ([]model.Hackathon, error)

	// Save persists an updated hackathon entry.
	Save(ctx context.Context, entry *model.Hackathon) error

	// Delete removes a hackathon entry.
	Delete(ctx context.Context, hackathonID string) error

	// GetActorRole returns the role stored on the actor's profile,
	// or "" when no profile exists.
	GetActorRole(ctx context.Context, actorID string) (string, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new hackathon repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create persists a new hackathon entry.
func (r *repository) Create(ctx context.Context, entry *model.Hackathon) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID finds a hackathon by hackathon_id.
func (r *repository) GetByID(ctx context.Context, hackathonID string) (*model.Hackathon, error) {
	var entry model.Hackathon
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonID).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrHackathonNotFound
		}
		return nil, err
	}

	return &entry, nil
}

// List returns hackathons newest first, optionally filtered by status.
func (r *repository) List(ctx context.Context, status string) ([]model.Hackathon, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var entries []model.Hackathon
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []model.Hackathon{}
	}

	return entries, nil
}

// Save persists an updated hackathon entry.
func (r *repository) Save(ctx context.Context, entry *model.Hackathon) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete removes a hackathon entry.
func (r *repository) Delete(ctx context.Context, hackathonID string) error {
	result := r.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonID).
		Delete(&model.Hackathon{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrHackathonNotFound
	}
	return nil
}

// GetActorRole returns the role stored on the actor's profile.
func (r *repository) GetActorRole(ctx context.Context, actorID string) (string, error) {
	var role string
	err := r.db.WithContext(ctx).
		Table("users").
		Select("role").
		Where("user_id = ?", actorID).
		Scan(&role).Error
	if err != nil {
		return "", err
	}
	return role, nil
}
