package workers

import (
	"context"
	"time"

	"wayfarer/tracker/internal/db/repositories"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/metrics"
	"wayfarer/tracker/internal/strutil"
)

const DefaultAirportCacheRefresh = 30 * time.Minute

// AirportCodeLister lists every airport's codes.
type AirportCodeLister interface {
	ListCodes(ctx context.Context) ([]repositories.AirportCode, error)
}

// AirportCodeCacheWorker keeps the airport code → id lookup used by flight
// searches warm, so board requests rarely hit the airports table.
type AirportCodeCacheWorker struct {
	airports AirportCodeLister
	cache    repositories.CodeCache
	metrics  *metrics.MetricsRegistry
	ttl      time.Duration
}

// NewAirportCodeCacheWorker creates the worker. Entries live for twice the
// refresh interval so a slow refresh never leaves the cache empty.
func NewAirportCodeCacheWorker(airports AirportCodeLister, cache repositories.CodeCache, m *metrics.MetricsRegistry, interval time.Duration) *AirportCodeCacheWorker {
	ttl := 2 * interval
	if ttl <= 0 {
		ttl = 2 * DefaultAirportCacheRefresh
	}
	return &AirportCodeCacheWorker{
		airports: airports,
		cache:    cache,
		metrics:  m,
		ttl:      ttl,
	}
}

// Start refreshes immediately and then on every tick until ctx is done.
func (w *AirportCodeCacheWorker) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultAirportCacheRefresh
	}
	log := logging.Named("airport_code_cache")
	log.Infow("Starting airport code cache worker", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if _, err := w.Refresh(ctx); err != nil {
		log.Warnw("Initial airport code refresh failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Infow("Shutting down airport code cache worker")
			return
		case <-ticker.C:
			if _, err := w.Refresh(ctx); err != nil {
				log.Warnw("Airport code refresh failed", "error", err)
			}
		}
	}
}

// Refresh loads every airport and caches the ids behind each IATA and ICAO
// code. It returns the number of codes cached.
func (w *AirportCodeCacheWorker) Refresh(ctx context.Context) (int, error) {
	codes, err := w.airports.ListCodes(ctx)
	if err != nil {
		return 0, err
	}

	byCode := make(map[string][]uint, 2*len(codes))
	for _, c := range codes {
		iata := strutil.NormalizeCode(c.IATA)
		icao := strutil.NormalizeCode(c.ICAO)
		if iata != "" {
			byCode[iata] = append(byCode[iata], c.ID)
		}
		if icao != "" && icao != iata {
			byCode[icao] = append(byCode[icao], c.ID)
		}
	}

	for code, ids := range byCode {
		w.cache.Set(repositories.AirportCodeCacheKey(code), ids, w.ttl)
	}

	if w.metrics != nil {
		w.metrics.AirportCacheRefreshSize.Set(float64(len(byCode)))
	}
	logging.Debug("Airport code cache refreshed", "airports", len(codes), "codes", len(byCode))
	return len(byCode), nil
}
