package api

import (
	"github.com/jmoiron/sqlx"
	gormlib "gorm.io/gorm"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/config"
	"wayfarer/tracker/internal/db/repositories"
	"wayfarer/tracker/internal/metrics"
	"wayfarer/tracker/internal/providers"
	"wayfarer/tracker/internal/services"
)

type Repositories struct {
	User              *repositories.UserRepository
	Airports          *repositories.AirportRepository
	Flights           *repositories.FlightRepository
	FlightExperiences *repositories.FlightExperienceRepository
}

type Services struct {
	Cache     common.CacheInterface
	LiveFeed  *services.LiveFeedService
	Board     *services.RouteBoardService
	Passport  *services.PassportService
	Analytics *services.FlightAnalyticsService
	Airports  *common.AirportLoaderService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services

	// Optional collaborators wired after construction
	CodeRefresher CodeCacheRefresher
	DBPinger      Pinger
	RedisPinger   Pinger
}

// InitDependencies wires repositories and services on top of the shared
// connections. cache is shared by the code lookup path and the worker.
func InitDependencies(
	cfg *config.Config,
	sqlDB *sqlx.DB,
	gormDB *gormlib.DB,
	cache common.CacheInterface,
	m *metrics.MetricsRegistry,
) (*Dependencies, error) {
	repos := &Repositories{
		User:              repositories.NewUserRepository(sqlDB),
		Airports:          repositories.NewAirportRepository(gormDB),
		Flights:           repositories.NewFlightRepository(gormDB, cache),
		FlightExperiences: repositories.NewFlightExperienceRepository(gormDB),
	}

	liveFeed := services.NewLiveFeedService(providers.NewAviationStackProvider(cfg), cfg, m)

	svcs := &Services{
		Cache:     cache,
		LiveFeed:  liveFeed,
		Board:     services.NewRouteBoardService(repos.Flights, liveFeed, m),
		Passport:  services.NewPassportService(repos.FlightExperiences, m),
		Analytics: services.NewFlightAnalyticsService(repos.Flights),
		Airports:  common.NewAirportLoaderService(gormDB, cfg.AirportSourceURL),
	}

	deps := &Dependencies{
		Repo:     repos,
		Services: svcs,
	}
	if sqlDB != nil {
		deps.DBPinger = sqlDB
	}
	return deps, nil
}
