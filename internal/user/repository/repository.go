// Package repository provides data access layer for the user module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/collabx/backend/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// GetByID finds a profile by user_id.
	GetByID(ctx context.Context, userID string) (*model.User, error)

	// UpsertProfile creates the profile or merges non-empty fields into it.
	// Stored values are never cleared by empty input fields.
	UpsertProfile(ctx context.Context, profile *model.User) (*model.User, error)

	// GetRole returns the stored role for a user, or "" when the profile
	// does not exist.
	GetRole(ctx context.Context, userID string) (string, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByID finds a profile by user_id.
func (r *repository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// UpsertProfile creates the profile or merges non-empty fields into it.
func (r *repository) UpsertProfile(ctx context.Context, profile *model.User) (*model.User, error) {
	var existing model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", profile.UserID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		now := time.Now()
		profile.CreatedAt = now
		profile.UpdatedAt = now
		if createErr := r.db.WithContext(ctx).Create(profile).Error; createErr != nil {
			return nil, createErr
		}
		return profile, nil
	}
	if err != nil {
		return nil, err
	}

	merged := mergeProfile(&existing, profile)
	if saveErr := r.db.WithContext(ctx).Save(merged).Error; saveErr != nil {
		return nil, saveErr
	}

	return merged, nil
}

// mergeProfile overlays non-empty incoming fields onto the stored profile.
func mergeProfile(stored, incoming *model.User) *model.User {
	if incoming.Name != "" {
		stored.Name = incoming.Name
	}
	if incoming.Email != "" {
		stored.Email = incoming.Email
	}
	if incoming.Role != "" {
		stored.Role = incoming.Role
	}
	if incoming.Skills != nil {
		stored.Skills = incoming.Skills
	}
	if incoming.LinkedIn != "" {
		stored.LinkedIn = incoming.LinkedIn
	}
	if incoming.GitHub != "" {
		stored.GitHub = incoming.GitHub
	}
	if incoming.Avatar != "" {
		stored.Avatar = incoming.Avatar
	}
	return stored
}

// GetRole returns the stored role for a user, or "" when the profile is missing.
func (r *repository) GetRole(ctx context.Context, userID string) (string, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}
	return user.Role, nil
}
