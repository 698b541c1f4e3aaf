package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/paullizer/WildfireRiskManagementAgent/internal/api"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/config"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/constants"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/logging"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/middleware"
)

// RegisterRoutes builds the chi router serving the drone API.
func RegisterRoutes(cfg *config.Config, deps *api.Dependencies) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLogger)
	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constants.HeaderAPIKey, constants.HeaderRequestID},
		ExposedHeaders:   []string{constants.HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, deps.Metrics, "127.0.0.1", "::1")
	}

	handlers := api.NewHandlers(deps)
	RegisterAPIRoutes(r, cfg.APIKey, deps, handlers, limiter)

	logging.Info("Router initialized",
		"rate_limit_rps", cfg.RateLimitRPS,
		"cors_origins", cfg.CORSOrigins,
	)
	return r
}
