// Package handler provides HTTP handlers for faculty directory endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/collabx/backend/internal/faculty/model"
	"github.com/collabx/backend/internal/faculty/service"
	"github.com/collabx/backend/internal/middleware"
)

// Handler handles HTTP requests for faculty directory endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new faculty handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /faculty request.
func (h *Handler) Create(c *gin.Context) {
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	var req model.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		h.respondFacultyError(c, "", err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /faculty/:id request.
func (h *Handler) Get(c *gin.Context) {
	facultyID := c.Param("id")

	resp, err := h.service.Get(c.Request.Context(), facultyID)
	if err != nil {
		h.respondFacultyError(c, facultyID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// List handles GET /faculty request.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing faculty", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /faculty/:id request.
func (h *Handler) Update(c *gin.Context) {
	facultyID := c.Param("id")
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	var req model.UpdateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), actorID, facultyID, &req)
	if err != nil {
		h.respondFacultyError(c, facultyID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /faculty/:id request.
func (h *Handler) Delete(c *gin.Context) {
	facultyID := c.Param("id")
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorID, facultyID); err != nil {
		h.respondFacultyError(c, facultyID, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondFacultyError maps service errors to HTTP responses.
func (h *Handler) respondFacultyError(c *gin.Context, facultyID string, err error) {
	switch {
	case errors.Is(err, model.ErrFacultyNotFound):
		errorResponse(c, "NOT_FOUND", "faculty entry not found", http.StatusNotFound)
	case errors.Is(err, model.ErrNotAdmin):
		errorResponse(c, "FORBIDDEN", err.Error(), http.StatusForbidden)
	default:
		h.logger.Errorw("faculty operation failed", "faculty_id", facultyID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
