package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yanqian/outdoor-scheduler/internal/domain/activity"
	apperrors "github.com/yanqian/outdoor-scheduler/pkg/errors"
)

// ActivityHandler serves the activity CRUD endpoints.
type ActivityHandler struct {
	svc    activity.Service
	logger *slog.Logger
}

// NewActivityHandler constructs the activity handler.
func NewActivityHandler(svc activity.Service, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		svc:    svc,
		logger: logger.With("component", "http.activity"),
	}
}

// Create stores a new activity with forecast and slot snapshots.
func (h *ActivityHandler) Create(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}

	var req activity.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	act, err := h.svc.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		abortWithError(c, activityError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": act})
}

// List pages through the caller's activities.
func (h *ActivityHandler) List(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.svc.List(c.Request.Context(), claims.UserID, page)
	if err != nil {
		abortWithError(c, activityError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

// Get returns one owned activity.
func (h *ActivityHandler) Get(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid activity id", err))
		return
	}

	act, err := h.svc.Get(c.Request.Context(), claims.UserID, id)
	if err != nil {
		abortWithError(c, activityError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": act})
}

// Update applies a partial edit.
func (h *ActivityHandler) Update(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid activity id", err))
		return
	}

	var req activity.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	act, err := h.svc.Update(c.Request.Context(), claims.UserID, id, req)
	if err != nil {
		abortWithError(c, activityError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": act})
}

// Delete removes an owned activity.
func (h *ActivityHandler) Delete(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid activity id", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), claims.UserID, id); err != nil {
		abortWithError(c, activityError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "activity deleted"})
}

// RecentLocations lists distinct locations from the caller's history.
func (h *ActivityHandler) RecentLocations(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}

	locations, err := h.svc.RecentLocations(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, activityError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": locations})
}

func activityError(err error) *HTTPError {
	status := http.StatusInternalServerError
	code := "activity_failed"
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "not_found"):
		status = http.StatusNotFound
		code = "not_found"
	case apperrors.IsCode(err, "forbidden"):
		status = http.StatusForbidden
		code = "forbidden"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}
