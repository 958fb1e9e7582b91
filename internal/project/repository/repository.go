// Package repository provides data access layer for the project module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/collabx/backend/internal/project/model"
)

// Repository defines the interface for project data access operations.
type Repository interface {
	// Create persists a new project.
	Create(ctx context.Context, project *model.Project) error

	// GetByID finds a project by project_id.
	GetByID(ctx context.Context, projectID string) (*model.Project, error)

	// List returns projects matching the filter, newest first.
	List(ctx context.Context, filter model.ListFilter) ([]model.Project, error)

	// Save persists changes to an existing project.
	Save(ctx context.Context, project *model.Project) error

	// Delete removes a project and its roster entries.
	Delete(ctx context.Context, projectID string) error

	// CountMembers returns the derived roster size for a project.
	CountMembers(ctx context.Context, projectID string) (int, error)

	// GetTeamEntries returns the roster snapshot entries, oldest join first.
	GetTeamEntries(ctx context.Context, projectID string) ([]model.TeamEntry, error)

	// GetActorRole returns the stored profile role for a user, "" if no profile.
	GetActorRole(ctx context.Context, userID string) (string, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new project repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create persists a new project.
func (r *repository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// GetByID finds a project by project_id.
func (r *repository) GetByID(ctx context.Context, projectID string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		First(&project).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrProjectNotFound
		}
		return nil, err
	}

	return &project, nil
}

// List returns projects matching the filter, newest first.
func (r *repository) List(ctx context.Context, filter model.ListFilter) ([]model.Project, error) {
	query := r.db.WithContext(ctx).Model(&model.Project{})

	if filter.Domain != "" {
		query = query.Where("domain = ?", filter.Domain)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var projects []model.Project
	if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	if projects == nil {
		projects = []model.Project{}
	}

	return projects, nil
}

// Save persists changes to an existing project.
func (r *repository) Save(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes a project and its roster entries.
func (r *repository) Delete(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM project_members WHERE project_id = ?", projectID).Error; err != nil {
			return err
		}
		return tx.Where("project_id = ?", projectID).
			Delete(&model.Project{}).Error
	})
}

// CountMembers returns the derived roster size for a project.
func (r *repository) CountMembers(ctx context.Context, projectID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("project_members").
		Where("project_id = ?", projectID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// GetTeamEntries returns the roster snapshot entries, oldest join first.
func (r *repository) GetTeamEntries(ctx context.Context, projectID string) ([]model.TeamEntry, error) {
	var entries []model.TeamEntry

	err := r.db.WithContext(ctx).
		Table("project_members").
		Select("user_id, user_name, member_role as role, joined_at").
		Where("project_id = ?", projectID).
		Order("joined_at ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []model.TeamEntry{}
	}

	return entries, nil
}

// GetActorRole returns the stored profile role for a user, "" if no profile.
func (r *repository) GetActorRole(ctx context.Context, userID string) (string, error) {
	var role string
	err := r.db.WithContext(ctx).
		Table("users").
		Select("role").
		Where("user_id = ?", userID).
		Limit(1).
		Scan(&role).Error
	if err != nil {
		return "", err
	}
	return role, nil
}
