// Package router provides joinrequest module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/collabx/backend/internal/config"
	"github.com/collabx/backend/internal/joinrequest/handler"
	"github.com/collabx/backend/internal/joinrequest/repository"
	"github.com/collabx/backend/internal/joinrequest/service"
	projectRepository "github.com/collabx/backend/internal/project/repository"
	userRepository "github.com/collabx/backend/internal/user/repository"
)

// RegisterRoutes registers joinrequest module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, portalCfg appConfig.PortalConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	projectRepo := projectRepository.New(db, logger)
	userRepo := userRepository.New(db, logger)
	svc := service.New(repo, projectRepo, userRepo, db, portalCfg, logger)
	h := handler.New(svc, logger)

	r.POST("/projects/:id/join", h.Submit)
	r.GET("/projects/:id/requests", h.ListForProject)
	r.GET("/users/:id/requests", h.ListForUser)
	r.POST("/requests/:id/decide", h.Decide)
}
