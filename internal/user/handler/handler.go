// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/collabx/backend/internal/middleware"
	"github.com/collabx/backend/internal/user/model"
	"github.com/collabx/backend/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetProfile handles GET /users/:id request.
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.Param("id")

	resp, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			errorResponse(c, "NOT_FOUND", "user not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, model.ErrInvalidUserID) {
			errorResponse(c, "INVALID_REQUEST", "user id is required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error getting profile", "user_id", userID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProfile handles PUT /users/:id request.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.Param("id")
	actorID := middleware.CallerID(c)
	if actorID == "" {
		errorResponse(c, "FORBIDDEN", "identity required", http.StatusForbidden)
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateProfile(c.Request.Context(), actorID, userID, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotProfileOwner) {
			errorResponse(c, "FORBIDDEN", "profile can only be updated by its owner", http.StatusForbidden)
			return
		}
		if errors.Is(err, model.ErrInvalidRole) {
			errorResponse(c, "INVALID_REQUEST", "role must be developer or learner", http.StatusBadRequest)
			return
		}
		if errors.Is(err, model.ErrInvalidUserID) {
			errorResponse(c, "INVALID_REQUEST", "user id is required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error updating profile", "user_id", userID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
