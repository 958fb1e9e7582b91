// Package handler provides HTTP handlers for join request endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/collabx/backend/internal/joinrequest/model"
	"github.com/collabx/backend/internal/joinrequest/service"
	"github.com/collabx/backend/internal/middleware"
	projectModel "github.com/collabx/backend/internal/project/model"
	rosterModel "github.com/collabx/backend/internal/roster/model"
)

// Handler handles HTTP requests for join request endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new joinrequest handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Submit handles POST /projects/:id/join request.
func (h *Handler) Submit(c *gin.Context) {
	projectID := c.Param("id")
	candidate := service.Candidate{
		ID:    middleware.CallerID(c),
		Name:  middleware.CallerName(c),
		Email: middleware.CallerEmail(c),
	}
	if candidate.ID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), candidate, projectID, &req)
	if err != nil {
		h.respondRequestError(c, projectID, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListForProject handles GET /projects/:id/requests request.
func (h *Handler) ListForProject(c *gin.Context) {
	projectID := c.Param("id")
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	sort := c.DefaultQuery("sort", model.SortRecent)
	if sort != model.SortRecent && sort != model.SortMatch {
		errorResponse(c, "INVALID_REQUEST", "sort must be recent or match", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ListForProject(c.Request.Context(), actorID, projectID, sort)
	if err != nil {
		h.respondRequestError(c, projectID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListForUser handles GET /users/:id/requests request.
func (h *Handler) ListForUser(c *gin.Context) {
	userID := c.Param("id")
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	resp, err := h.service.ListForUser(c.Request.Context(), actorID, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotRequestOwner) {
			errorResponse(c, "FORBIDDEN", err.Error(), http.StatusForbidden)
			return
		}
		h.logger.Errorw("error listing user requests", "user_id", userID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Decide handles POST /requests/:id/decide request.
func (h *Handler) Decide(c *gin.Context) {
	requestID := c.Param("id")
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	var req model.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), actorID, requestID, &req)
	if err != nil {
		h.respondRequestError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// respondRequestError maps service errors to HTTP responses.
func (h *Handler) respondRequestError(c *gin.Context, id string, err error) {
	switch {
	case errors.Is(err, model.ErrRequestNotFound),
		errors.Is(err, projectModel.ErrProjectNotFound):
		errorResponse(c, "NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, projectModel.ErrNotProjectOwner):
		errorResponse(c, "FORBIDDEN", err.Error(), http.StatusForbidden)
	case errors.Is(err, model.ErrAlreadyDecided):
		errorResponse(c, "ALREADY_DECIDED", err.Error(), http.StatusConflict)
	case errors.Is(err, rosterModel.ErrTeamFull):
		errorResponse(c, "TEAM_FULL", err.Error(), http.StatusConflict)
	case errors.Is(err, model.ErrInvalidRole),
		errors.Is(err, model.ErrEmptySkills),
		errors.Is(err, model.ErrInvalidOutcome),
		errors.Is(err, model.ErrProjectNotJoinable):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		h.logger.Errorw("join request operation failed", "id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
