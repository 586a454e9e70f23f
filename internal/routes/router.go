package routes

import (
	"net/http"
	"time"

	"wayfarer/tracker/internal/api"
	"wayfarer/tracker/internal/config"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/metrics"
	"wayfarer/tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(cfg *config.Config, deps *api.Dependencies, metricsReg *metrics.MetricsRegistry, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	handlers := api.NewHandlers(deps)

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", handlers.HealthCheck(upSince))

	limiter := middleware.NewIPRateLimiter(cfg.APIRateLimitRPS, cfg.APIRateLimitBurst)
	secret := []byte(cfg.JWTSecret)

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.RateLimitMiddleware(limiter))

		// Public read endpoints
		v1.With(middleware.InFlightMiddleware(metricsReg, "board")).
			Get("/airports/{code}/board", handlers.AirportBoard())
		v1.Get("/flights/{id}/emissions", handlers.FlightEmissions())

		// Authenticated group
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(secret))
			authed.Get("/me/passport", handlers.MyPassport())

			// Travel history is visible to its owner and to admins
			authed.Group(func(owner chi.Router) {
				owner.Use(middleware.SelfOrAdminMiddleware("user_id"))
				owner.Get("/users/{user_id}/passport", handlers.Passport())
				owner.Get("/users/{user_id}/passport/details", handlers.PassportDetails())
				owner.Get("/users/{user_id}/map", handlers.UserMap())
			})

			// Admin-only group
			authed.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())
				admin.Post("/admin/airports/sync", handlers.SyncAirports())
			})
		})
	})

	return r
}
