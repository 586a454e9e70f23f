package workers

import (
	"context"

	"wayfarer/tracker/internal/config"
	"wayfarer/tracker/internal/db/repositories"
	"wayfarer/tracker/internal/metrics"
)

type WorkersContainer struct {
	AirportCodes *AirportCodeCacheWorker
}

// InitWorkers builds and starts the background workers. They stop when ctx is cancelled.
func InitWorkers(
	ctx context.Context,
	cfg *config.Config,
	airports AirportCodeLister,
	cache repositories.CodeCache,
	m *metrics.MetricsRegistry,
) *WorkersContainer {
	codes := NewAirportCodeCacheWorker(airports, cache, m, cfg.AirportCacheRefresh)

	go codes.Start(ctx, cfg.AirportCacheRefresh)

	return &WorkersContainer{
		AirportCodes: codes,
	}
}
