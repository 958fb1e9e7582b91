// Package repository provides data access layer for the faculty module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/collabx/backend/internal/faculty/model"
)

// Repository defines the interface for faculty data access operations.
type Repository interface {
	// Create persists a new faculty entry.
	Create(ctx context.Context, entry *model.Faculty) error

	// GetByID finds a faculty entry by faculty_id.
	GetByID(ctx context.Context, facultyID string) (*model.Faculty, error)

	// List returns the full directory ordered by name.
	List(ctx context.Context) ([]model.Faculty, error)

	// Save persists an updated faculty entry.
	Save(ctx context.Context, entry *model.Faculty) error

	// Delete removes a faculty entry.
	Delete(ctx context.Context, facultyID string) error

	// GetActorRole returns the role stored on the actor's profile,
	// or "" when no profile exists.
	GetActorRole(ctx context.Context, actorID string) (string, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new faculty repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create persists a new faculty entry.
func (r *repository) Create(ctx context.Context, entry *model.Faculty) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID finds a faculty entry by faculty_id.
func (r *repository) GetByID(ctx context.Context, facultyID string) (*model.Faculty, error) {
	var entry model.Faculty
	err := r.db.WithContext(ctx).
		Where("faculty_id = ?", facultyID).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrFacultyNotFound
		}
		return nil, err
	}

	return &entry, nil
}

// List returns the full directory ordered by name.
func (r *repository) List(ctx context.Context) ([]model.Faculty, error) {
	var entries []model.Faculty
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []model.Faculty{}
	}

	return entries, nil
}

// Save persists an updated faculty entry.
func (r *repository) Save(ctx context.Context, entry *model.Faculty) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete removes a faculty entry.
func (r *repository) Delete(ctx context.Context, facultyID string) error {
	result := r.db.WithContext(ctx).
		Where("faculty_id = ?", facultyID).
		Delete(&model.Faculty{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrFacultyNotFound
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
