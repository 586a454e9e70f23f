package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"

	"wayfarer/tracker/internal/config"
	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/metrics"
	"wayfarer/tracker/internal/models/dtos"
	"wayfarer/tracker/internal/providers"
)

const (
	liveOutcomeOK          = "ok"
	liveOutcomeError       = "error"
	liveOutcomeRateLimited = "rate_limited"
	liveOutcomeTimeout     = "timeout"
)

// LiveFeedService guards the live flight provider. Every call is bounded by a
// timeout and a client-side rate limit, and every failure is absorbed into an
// empty result after being logged.
type LiveFeedService struct {
	provider providers.LiveFlightProvider
	limiter  *rate.Limiter
	timeout  time.Duration
	metrics  *metrics.MetricsRegistry
}

func NewLiveFeedService(provider providers.LiveFlightProvider, cfg *config.Config, m *metrics.MetricsRegistry) *LiveFeedService {
	timeout := cfg.LiveFeedTimeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	burst := cfg.LiveFeedBurst
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Limit(cfg.LiveFeedRPS)
	if cfg.LiveFeedRPS <= 0 {
		limit = rate.Inf
	}
	return &LiveFeedService{
		provider: provider,
		limiter:  rate.NewLimiter(limit, burst),
		timeout:  timeout,
		metrics:  m,
	}
}

// Departures returns live departures for the airport, or an empty list.
func (s *LiveFeedService) Departures(ctx context.Context, airportCode string, limit int) []dtos.LiveObservation {
	return s.fetch(ctx, "departures", airportCode, limit, s.provider.GetDepartures)
}

// Arrivals returns live arrivals for the airport, or an empty list.
func (s *LiveFeedService) Arrivals(ctx context.Context, airportCode string, limit int) []dtos.LiveObservation {
	return s.fetch(ctx, "arrivals", airportCode, limit, s.provider.GetArrivals)
}

type liveCall func(ctx context.Context, airportCode string, limit int) ([]dtos.LiveObservation, int, error)

func (s *LiveFeedService) fetch(ctx context.Context, direction, airportCode string, limit int, call liveCall) []dtos.LiveObservation {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.LiveFeedCallDuration.WithLabelValues(direction).Observe(time.Since(start).Seconds())
		}
	}()

	if err := s.limiter.Wait(callCtx); err != nil {
		s.record(direction, liveOutcomeRateLimited)
		logging.Warn("Live feed call skipped by rate limiter",
			"provider", s.provider.GetProviderType(), "direction", direction, "airport", airportCode, "error", err)
		return []dtos.LiveObservation{}
	}

	observations, status, err := call(callCtx, airportCode, limit)
	if err != nil {
		outcome := classifyLiveFailure(err)
		s.record(direction, outcome)
		logging.Warn("Live feed call failed",
			"provider", s.provider.GetProviderType(), "direction", direction, "airport", airportCode, "status", status,
			"outcome", outcome, "error", err)
		return []dtos.LiveObservation{}
	}

	s.record(direction, liveOutcomeOK)
	logging.Debug("Live feed call succeeded",
		"direction", direction, "airport", airportCode, "count", len(observations))
	if observations == nil {
		return []dtos.LiveObservation{}
	}
	return observations
}

func (s *LiveFeedService) record(direction, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.LiveFeedCallsTotal.WithLabelValues(s.provider.GetProviderType(), direction, outcome).Inc()
}

func classifyLiveFailure(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return liveOutcomeTimeout
	}
	var perr *providers.ProviderError
	if errors.As(err, &perr) {
		switch perr.Code {
		case constants.ErrCodeTimeout:
			return liveOutcomeTimeout
		case constants.ErrCodeRateLimited:
			return liveOutcomeRateLimited
		}
	}
	return liveOutcomeError
}
