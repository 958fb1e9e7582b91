// Package router provides hackathon module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/collabx/backend/internal/hackathon/handler"
	"github.com/collabx/backend/internal/hackathon/repository"
	"github.com/collabx/backend/internal/hackathon/service"
)

// RegisterRoutes registers hackathon module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/hackathons", h.List)
	r.GET("/hackathons/:id", h.Get)
	r.POST("/hackathons", h.Create)
	r.PUT("/hackathons/:id", h.Update)
	r.DELETE("/hackathons/:id", h.Delete)
}
