package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/outdoor-scheduler/internal/domain/location"
	apperrors "github.com/yanqian/outdoor-scheduler/pkg/errors"
)

// LocationHandler serves the administrative directory and geocoding
// endpoints.
type LocationHandler struct {
	svc    location.Service
	logger *slog.Logger
}

// NewLocationHandler constructs the location handler.
func NewLocationHandler(svc location.Service, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		svc:    svc,
		logger: logger.With("component", "http.location"),
	}
}

// Codes lists areas at one administrative level.
func (h *LocationHandler) Codes(c *gin.Context) {
	level := location.Level(c.DefaultQuery("level", string(location.LevelRegency)))
	parentCode := c.Query("parent_code")

	entries, err := h.svc.Codes(c.Request.Context(), level, parentCode)
	if err != nil {
		abortWithError(c, locationError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries, "level": level})
}

// Search filters areas by name.
func (h *LocationHandler) Search(c *gin.Context) {
	query := c.Query("q")
	level := location.Level(c.DefaultQuery("type", string(location.LevelRegency)))

	entries, err := h.svc.Search(c.Request.Context(), query, level)
	if err != nil {
		abortWithError(c, locationError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

// ReverseGeocode maps coordinates to a location pair.
func (h *LocationHandler) ReverseGeocode(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "lat and lng must be numeric", nil))
		return
	}

	result, err := h.svc.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		abortWithError(c, locationError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

func locationError(err error) *HTTPError {
	status := http.StatusInternalServerError
	code := "location_failed"
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "location_unavailable"):
		status = http.StatusBadGateway
		code = "location_unavailable"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}
