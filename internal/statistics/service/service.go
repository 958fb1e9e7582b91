// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/collabx/backend/internal/statistics/model"
	"github.com/collabx/backend/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetProjectStatistics returns catalog aggregates with the domain breakdown.
	GetProjectStatistics(ctx context.Context) (*model.ProjectStatisticsResponse, error)

	// GetRequestStatistics returns join request aggregates.
	GetRequestStatistics(ctx context.Context) (*model.RequestStatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetProjectStatistics returns catalog aggregates with the domain breakdown.
func (s *service) GetProjectStatistics(ctx context.Context) (*model.ProjectStatisticsResponse, error) {
	s.logger.Debugw("GetProjectStatistics called")

	stats, err := s.repo.GetProjectStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetProjectStatistics failed", "error", err)
		return nil, err
	}

	breakdown, err := s.repo.GetDomainBreakdown(ctx)
	if err != nil {
		s.logger.Errorw("GetDomainBreakdown failed", "error", err)
		return nil, err
	}

	s.logger.Infow("GetProjectStatistics completed", "total_projects", stats.TotalProjects)
	return &model.ProjectStatisticsResponse{
		Statistics: *stats,
		ByDomain:   breakdown,
	}, nil
}

// GetRequestStatistics returns join request aggregates.
func (s *service) GetRequestStatistics(ctx context.Context) (*model.RequestStatisticsResponse, error) {
	s.logger.Debugw("GetRequestStatistics called")

	stats, err := s.repo.GetRequestStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetRequestStatistics failed", "error", err)
		return nil, err
	}

	s.logger.Infow("GetRequestStatistics completed", "total_requests", stats.TotalRequests)
	return &model.RequestStatisticsResponse{
		Statistics: *stats,
	}, nil
}
