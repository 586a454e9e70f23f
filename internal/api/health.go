package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"wayfarer/tracker/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Verifies the server and its backing services are reachable.
// @Tags Misc
// @Success 200 {object} entities.HealthCheckResponse
// @Failure 503 {object} entities.HealthCheckResponse
// @Router /healthCheck [get]
func HealthCheckHandler(db Pinger, redis Pinger, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		services := make(map[string]entities.ServiceStatus)
		services["postgres"] = checkService(ctx, db, "Postgres Connected")
		if redis != nil {
			services["redis"] = checkService(ctx, redis, "Redis Connected")
		}

		overallStatus := entities.HealthOK
		for _, svc := range services {
			if svc.Status != entities.HealthOK {
				overallStatus = entities.HealthDown
				break
			}
		}

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}

		code := http.StatusOK
		if overallStatus != entities.HealthOK {
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func checkService(ctx context.Context, p Pinger, okDetails string) entities.ServiceStatus {
	if p == nil {
		return entities.ServiceStatus{Status: entities.HealthDown, Details: "not configured"}
	}
	if err := p.PingContext(ctx); err != nil {
		return entities.ServiceStatus{Status: entities.HealthDown, Details: err.Error()}
	}
	return entities.ServiceStatus{Status: entities.HealthOK, Details: okDetails}
}
