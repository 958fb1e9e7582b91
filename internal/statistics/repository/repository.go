// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/collabx/backend/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetProjectStatistics returns aggregate figures over the project catalog.
	GetProjectStatistics(ctx context.Context) (*model.ProjectStatistics, error)

	// GetDomainBreakdown returns project counts grouped by domain.
	GetDomainBreakdown(ctx context.Context) ([]model.DomainBreakdown, error)

	// GetRequestStatistics returns aggregate figures over join requests.
	GetRequestStatistics(ctx context.Context) (*model.RequestStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetProjectStatistics returns aggregate figures over the project catalog.
func (r *repository) GetProjectStatistics(ctx context.Context) (*model.ProjectStatistics, error) {
	r.logger.Debugw("GetProjectStatistics called")

	var result struct {
		TotalProjects    int64   `gorm:"column:total_projects"`
		PendingProjects  int64   `gorm:"column:pending_projects"`
		ApprovedProjects int64   `gorm:"column:approved_projects"`
		RejectedProjects int64   `gorm:"column:rejected_projects"`
		AverageTeamSize  float64 `gorm:"column:avg_team_size"`
	}

	err := r.db.WithContext(ctx).
		Table("projects").
		Select(`
			COUNT(*) as total_projects,
			SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END) as pending_projects,
			SUM(CASE WHEN status = 'approved' THEN 1 ELSE 0 END) as approved_projects,
			SUM(CASE WHEN status = 'rejected' THEN 1 ELSE 0 END) as rejected_projects,
			COALESCE(AVG(CAST(team_size AS REAL)), 0) as avg_team_size
		`).
		Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetProjectStatistics database error", "error", err)
		return nil, err
	}

	var totalMembers int64
	if err := r.db.WithContext(ctx).
		Table("project_members").
		Count(&totalMembers).Error; err != nil {
		r.logger.Errorw("GetProjectStatistics members count error", "error", err)
		return nil, err
	}

	stats := &model.ProjectStatistics{
		TotalProjects:    int(result.TotalProjects),
		PendingProjects:  int(result.PendingProjects),
		ApprovedProjects: int(result.ApprovedProjects),
		RejectedProjects: int(result.RejectedProjects),
		AverageTeamSize:  result.AverageTeamSize,
		TotalMembers:     int(totalMembers),
	}

	r.logger.Debugw("GetProjectStatistics completed", "total_projects", stats.TotalProjects)
	return stats, nil
}

// GetDomainBreakdown returns project counts grouped by domain.
func (r *repository) GetDomainBreakdown(ctx context.Context) ([]model.DomainBreakdown, error) {
	var breakdown []model.DomainBreakdown

	err := r.db.WithContext(ctx).
		Table("projects").
		Select("domain, COUNT(*) as count").
		Group("domain").
		Order("count DESC, domain ASC").
		Scan(&breakdown).Error

	if err != nil {
		r.logger.Errorw("GetDomainBreakdown database error", "error", err)
		return nil, err
	}

	if breakdown == nil {
		breakdown = []model.DomainBreakdown{}
	}

	return breakdown, nil
}

// GetRequestStatistics returns aggregate figures over join requests.
func (r *repository) GetRequestStatistics(ctx context.Context) (*model.RequestStatistics, error) {
	r.logger.Debugw("GetRequestStatistics called")

	var result struct {
		TotalRequests        int64   `gorm:"column:total_requests"`
		PendingRequests      int64   `gorm:"column:pending_requests"`
		AcceptedRequests     int64   `gorm:"column:accepted_requests"`
		RejectedRequests     int64   `gorm:"column:rejected_requests"`
		AverageMatchPercent  float64 `gorm:"column:avg_match"`
		AcceptedMatchPercent float64 `gorm:"column:accepted_match"`
	}

	err := r.db.WithContext(ctx).
		Table("join_requests").
		Select(`
			COUNT(*) as total_requests,
			SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END) as pending_requests,
			SUM(CASE WHEN status = 'accepted' THEN 1 ELSE 0 END) as accepted_requests,
			SUM(CASE WHEN status = 'rejected' THEN 1 ELSE 0 END) as rejected_requests,
			COALESCE(AVG(CAST(match_percentage AS REAL)), 0) as avg_match,
			COALESCE(AVG(CASE WHEN status = 'accepted' THEN CAST(match_percentage AS REAL) END), 0) as accepted_match
		`).
		Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetRequestStatistics database error", "error", err)
		return nil, err
	}

	stats := &model.RequestStatistics{
		TotalRequests:        int(result.TotalRequests),
		PendingRequests:      int(result.PendingRequests),
		AcceptedRequests:     int(result.AcceptedRequests),
		RejectedRequests:     int(result.RejectedRequests),
		AverageMatchPercent:  result.AverageMatchPercent,
		AcceptedMatchPercent: result.AcceptedMatchPercent,
	}

	r.logger.Debugw("GetRequestStatistics completed", "total_requests", stats.TotalRequests)
	return stats, nil
}
