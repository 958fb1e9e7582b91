// Package repository provides data access layer for the roster module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/collabx/backend/internal/roster/model"
)

// Repository defines the interface for roster data access operations.
type Repository interface {
	// AddMember appends a roster entry. Adding an already present user is
	// a no-op, keeping the derived member count equal to the roster size.
	AddMember(ctx context.Context, member *model.ProjectMember) error

	// RemoveMember deletes a roster entry. Removing a non-member is a no-op.
	RemoveMember(ctx context.Context, projectID, userID string) error

	// IsMember reports whether the user is on the project roster.
	IsMember(ctx context.Context, projectID, userID string) (bool, error)

	// ListMembers returns the roster entries, oldest join first.
	ListMembers(ctx context.Context, projectID string) ([]model.ProjectMember, error)

	// CountMembers returns the derived roster size.
	CountMembers(ctx context.Context, projectID string) (int, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new roster repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// AddMember appends a roster entry, treating a duplicate add as a no-op.
func (r *repository) AddMember(ctx context.Context, member *model.ProjectMember) error {
	exists, err := r.IsMember(ctx, member.ProjectID, member.UserID)
	if err != nil {
		return err
	}
	if exists {
		r.logger.Debugw("duplicate roster add ignored",
			"project_id", member.ProjectID, "user_id", member.UserID)
		return nil
	}

	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}

	err = r.db.WithContext(ctx).Create(member).Error
	if err != nil && isDuplicateError(err) {
		// Lost a race with a concurrent add of the same user; the unique
		// index on (project_id, user_id) keeps the roster consistent.
		return nil
	}
	return err
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// RemoveMember deletes a roster entry. Removing a non-member is a no-op.
func (r *repository) RemoveMember(ctx context.Context, projectID, userID string) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&model.ProjectMember{}).Error
}

// IsMember reports whether the user is on the project roster.
func (r *repository) IsMember(ctx context.Context, projectID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListMembers returns the roster entries, oldest join first.
func (r *repository) ListMembers(ctx context.Context, projectID string) ([]model.ProjectMember, error) {
	var members []model.ProjectMember
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("joined_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	if members == nil {
		members = []model.ProjectMember{}
	}

	return members, nil
}

// CountMembers returns the derived roster size.
func (r *repository) CountMembers(ctx context.Context, projectID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProjectMember{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
