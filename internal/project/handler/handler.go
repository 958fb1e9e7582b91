// Package handler provides HTTP handlers for project endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/collabx/backend/internal/middleware"
	"github.com/collabx/backend/internal/project/model"
	"github.com/collabx/backend/internal/project/service"
)

// Handler handles HTTP requests for project endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new project handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateProject handles POST /projects request.
func (h *Handler) CreateProject(c *gin.Context) {
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	var req model.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateProject(c.Request.Context(), actorID, &req)
	if err != nil {
		if isValidationError(err) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating project", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"project": resp,
	})
}

// GetProject handles GET /projects/:id request.
func (h *Handler) GetProject(c *gin.Context) {
	projectID := c.Param("id")

	resp, err := h.service.GetProject(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, model.ErrProjectNotFound) {
			errorResponse(c, "NOT_FOUND", "project not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error getting project", "project_id", projectID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListProjects handles GET /projects request.
func (h *Handler) ListProjects(c *gin.Context) {
	filter := model.ListFilter{
		Domain:     c.Query("domain"),
		Difficulty: c.Query("difficulty"),
		Status:     c.Query("status"),
	}

	resp, err := h.service.ListProjects(c.Request.Context(), filter)
	if err != nil {
		h.logger.Errorw("error listing projects", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProject handles PATCH /projects/:id request.
func (h *Handler) UpdateProject(c *gin.Context) {
	projectID := c.Param("id")
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	var req model.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateProject(c.Request.Context(), actorID, projectID, &req)
	if err != nil {
		h.respondProjectError(c, projectID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteProject handles DELETE /projects/:id request.
func (h *Handler) DeleteProject(c *gin.Context) {
	projectID := c.Param("id")
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), actorID, projectID); err != nil {
		h.respondProjectError(c, projectID, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ModerateProject handles POST /projects/:id/moderate request.
func (h *Handler) ModerateProject(c *gin.Context) {
	projectID := c.Param("id")
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	var req model.ModerateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ModerateProject(c.Request.Context(), actorID, projectID, &req)
	if err != nil {
		h.respondProjectError(c, projectID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// respondProjectError maps service errors to HTTP responses.
func (h *Handler) respondProjectError(c *gin.Context, projectID string, err error) {
	switch {
	case errors.Is(err, model.ErrProjectNotFound):
		errorResponse(c, "NOT_FOUND", "project not found", http.StatusNotFound)
	case errors.Is(err, model.ErrNotProjectOwner):
		errorResponse(c, "FORBIDDEN", err.Error(), http.StatusForbidden)
	case isValidationError(err):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		h.logger.Errorw("project operation failed", "project_id", projectID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}

// isValidationError reports whether err is one of the input validation sentinels.
func isValidationError(err error) bool {
	return errors.Is(err, model.ErrInvalidTitle) ||
		errors.Is(err, model.ErrInvalidDomain) ||
		errors.Is(err, model.ErrInvalidDifficulty) ||
		errors.Is(err, model.ErrInvalidTeamSize) ||
		errors.Is(err, model.ErrInvalidDecision)
}
