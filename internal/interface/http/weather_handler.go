package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/outdoor-scheduler/internal/domain/forecast"
	apperrors "github.com/yanqian/outdoor-scheduler/pkg/errors"
)

// WeatherHandler serves forecast and slot suggestion endpoints.
type WeatherHandler struct {
	svc    forecast.Service
	logger *slog.Logger
}

// NewWeatherHandler constructs the weather handler.
func NewWeatherHandler(svc forecast.Service, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{
		svc:    svc,
		logger: logger.With("component", "http.weather"),
	}
}

// Forecast returns the three-day forecast for a location.
func (h *WeatherHandler) Forecast(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "location is required", nil))
		return
	}
	subdistrict := c.Query("subdistrict")

	days, err := h.svc.Forecast(c.Request.Context(), location, subdistrict)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "forecast_failed", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": days})
}

// Suggestions ranks time slots around a preferred date.
func (h *WeatherHandler) Suggestions(c *gin.Context) {
	location := c.Query("location")
	preferredDate := c.Query("preferred_date")
	if location == "" || preferredDate == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "location and preferred_date are required", nil))
		return
	}
	subdistrict := c.Query("subdistrict")

	result, err := h.svc.Suggest(c.Request.Context(), location, subdistrict, preferredDate)
	if err != nil {
		status := http.StatusInternalServerError
		code := "suggestions_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}
