// Package router provides roster module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/collabx/backend/internal/config"
	projectRepository "github.com/collabx/backend/internal/project/repository"
	"github.com/collabx/backend/internal/roster/handler"
	"github.com/collabx/backend/internal/roster/repository"
	"github.com/collabx/backend/internal/roster/service"
	userRepository "github.com/collabx/backend/internal/user/repository"
)

// RegisterRoutes registers roster module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, portalCfg appConfig.PortalConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	projectRepo := projectRepository.New(db, logger)
	userRepo := userRepository.New(db, logger)
	svc := service.New(repo, projectRepo, userRepo, portalCfg, logger)
	h := handler.New(svc, logger)

	r.GET("/projects/:id/team", h.GetRoster)
	r.DELETE("/projects/:id/team/:userId", h.RemoveMember)
}
