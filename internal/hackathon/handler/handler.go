// Package handler provides HTTP handlers for hackathon directory endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/collabx/backend/internal/hackathon/model"
	"github.com/collabx/backend/internal/hackathon/service"
	"github.com/collabx/backend/internal/middleware"
)

// Handler handles HTTP requests for hackathon directory endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new hackathon handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /hackathons request.
func (h *Handler) Create(c *gin.Context) {
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	var req model.CreateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		h.respondHackathonError(c, "", err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /hackathons/:id request.
func (h *Handler) Get(c *gin.Context) {
	hackathonID := c.Param("id")

	resp, err := h.service.Get(c.Request.Context(), hackathonID)
	if err != nil {
		h.respondHackathonError(c, hackathonID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// List handles GET /hackathons request.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondHackathonError(c, "", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /hackathons/:id request.
func (h *Handler) Update(c *gin.Context) {
	hackathonID := c.Param("id")
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	var req model.UpdateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), actorID, hackathonID, &req)
	if err != nil {
		h.respondHackathonError(c, hackathonID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /hackathons/:id request.
func (h *Handler) Delete(c *gin.Context) {
	hackathonID := c.Param("id")
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorID, hackathonID); err != nil {
		h.respondHackathonError(c, hackathonID, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondHackathonError maps service errors to HTTP responses.
func (h *Handler) respondHackathonError(c *gin.Context, hackathonID string, err error) {
	switch {
	case errors.Is(err, model.ErrHackathonNotFound):
		errorResponse(c, "NOT_FOUND", "hackathon not found", http.StatusNotFound)
	case errors.Is(err, model.ErrNotAdmin):
		errorResponse(c, "FORBIDDEN", err.Error(), http.StatusForbidden)
	case errors.Is(err, model.ErrInvalidStatus), errors.Is(err, model.ErrInvalidFormat):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		h.logger.Errorw("hackathon operation failed", "hackathon_id", hackathonID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
