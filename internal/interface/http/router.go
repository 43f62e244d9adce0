package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/outdoor-scheduler/internal/domain/auth"
	"github.com/yanqian/outdoor-scheduler/internal/infra/config"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Activity *ActivityHandler
	Weather  *WeatherHandler
	Location *LocationHandler
}

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, authSvc auth.Service, handlers Handlers, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(logger),
		errorHandlingMiddleware(logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/auth/register", handlers.Auth.Register)
		api.POST("/auth/login", handlers.Auth.Login)
		api.POST("/auth/refresh", handlers.Auth.Refresh)

		api.GET("/locations/codes", handlers.Location.Codes)
		api.GET("/locations/search", handlers.Location.Search)
		api.GET("/locations/reverse-geocode", handlers.Location.ReverseGeocode)

		api.GET("/weather/forecast", handlers.Weather.Forecast)
		api.GET("/weather/suggestions", handlers.Weather.Suggestions)

		protected := api.Group("")
		protected.Use(authMiddleware(authSvc))
		{
			protected.GET("/auth/profile", handlers.Auth.Profile)
			protected.POST("/auth/logout", handlers.Auth.Logout)

			protected.GET("/activities", handlers.Activity.List)
			protected.POST("/activities", handlers.Activity.Create)
			protected.GET("/activities/recent-locations", handlers.Activity.RecentLocations)
			protected.GET("/activities/:id", handlers.Activity.Get)
			protected.PUT("/activities/:id", handlers.Activity.Update)
			protected.DELETE("/activities/:id", handlers.Activity.Delete)
		}
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
