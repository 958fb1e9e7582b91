// Package handler provides HTTP handlers for roster endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/collabx/backend/internal/middleware"
	projectModel "github.com/collabx/backend/internal/project/model"
	"github.com/collabx/backend/internal/roster/model"
	"github.com/collabx/backend/internal/roster/service"
)

// Handler handles HTTP requests for roster endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new roster handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetRoster handles GET /projects/:id/team request.
func (h *Handler) GetRoster(c *gin.Context) {
	projectID := c.Param("id")

	resp, err := h.service.GetRoster(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, projectModel.ErrProjectNotFound) {
			errorResponse(c, "NOT_FOUND", "project not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error getting roster", "project_id", projectID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveMember handles DELETE /projects/:id/team/:userId request.
func (h *Handler) RemoveMember(c *gin.Context) {
	projectID := c.Param("id")
	userID := c.Param("userId")
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	err := h.service.RemoveMember(c.Request.Context(), actorID, projectID, userID)
	if err != nil {
		switch {
		case errors.Is(err, projectModel.ErrProjectNotFound):
			errorResponse(c, "NOT_FOUND", "project not found", http.StatusNotFound)
		case errors.Is(err, projectModel.ErrNotProjectOwner):
			errorResponse(c, "FORBIDDEN", err.Error(), http.StatusForbidden)
		case errors.Is(err, model.ErrInvalidMember):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("error removing member",
				"project_id", projectID, "user_id", userID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
