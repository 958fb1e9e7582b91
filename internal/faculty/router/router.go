// Package router provides faculty module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/collabx/backend/internal/faculty/handler"
	"github.com/collabx/backend/internal/faculty/repository"
	"github.com/collabx/backend/internal/faculty/service"
)

// RegisterRoutes registers faculty module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/faculty", h.List)
	r.GET("/faculty/:id", h.Get)
	r.POST("/faculty", h.Create)
	r.PUT("/faculty/:id", h.Update)
	r.DELETE("/faculty/:id", h.Delete)
}
