package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/paullizer/WildfireRiskManagementAgent/internal/api"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/middleware"
)

// RegisterAPIRoutes registers the mission routes. Every route, the health
// check included, requires the API key. The key is checked before the
// limiter, which may be nil.
func RegisterAPIRoutes(r chi.Router, apiKey string, deps *api.Dependencies, handlers *api.Handlers, limiter *middleware.RateLimiter) {
	r.Group(func(authed chi.Router) {
		authed.Use(middleware.APIKeyMiddleware(apiKey, deps.Metrics))
		if limiter != nil {
			authed.Use(limiter.Middleware)
		}

		authed.Get("/", handlers.HealthCheck())

		authed.Route("/drone", func(drone chi.Router) {
			drone.Post("/submit_mission", handlers.SubmitMission())
			drone.Get("/status/{mission_id}", handlers.GetStatus())
			drone.Post("/complete_mission/{mission_id}", handlers.CompleteMission())
			drone.Get("/images/{mission_id}", handlers.GetImages())
			drone.Put("/update_waypoints/{mission_id}", handlers.UpdateWaypoints())
			drone.Delete("/cancel_mission/{mission_id}", handlers.CancelMission())
		})
	})
}
