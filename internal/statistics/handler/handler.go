// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/collabx/backend/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetProjectStatistics handles GET /statistics/projects request.
func (h *Handler) GetProjectStatistics(c *gin.Context) {
	resp, err := h.service.GetProjectStatistics(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error getting project statistics", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetRequestStatistics handles GET /statistics/requests request.
func (h *Handler) GetRequestStatistics(c *gin.Context) {
	resp, err := h.service.GetRequestStatistics(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error getting request statistics", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
