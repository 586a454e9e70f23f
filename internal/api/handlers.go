package api

import (
	"net/http"
	"time"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

func (h *Handlers) HealthCheck(upSince time.Time) http.HandlerFunc {
	return HealthCheckHandler(h.deps.DBPinger, h.deps.RedisPinger, upSince)
}

func (h *Handlers) AirportBoard() http.HandlerFunc {
	return AirportBoardHandler(h.deps.Services.Board)
}

func (h *Handlers) FlightEmissions() http.HandlerFunc {
	return FlightEmissionsHandler(h.deps.Services.Analytics)
}

func (h *Handlers) Passport() http.HandlerFunc {
	return PassportHandler(h.deps.Services.Passport, h.users())
}

func (h *Handlers) PassportDetails() http.HandlerFunc {
	return PassportDetailsHandler(h.deps.Services.Passport, h.users())
}

func (h *Handlers) UserMap() http.HandlerFunc {
	return UserMapHandler(h.deps.Services.Passport, h.users())
}

func (h *Handlers) MyPassport() http.HandlerFunc {
	var users UserLookup
	if h.deps.Repo != nil && h.deps.Repo.User != nil {
		users = h.deps.Repo.User
	}
	return MyPassportHandler(h.deps.Services.Passport, users)
}

func (h *Handlers) SyncAirports() http.HandlerFunc {
	return SyncAirportsHandler(h.deps.Services.Airports, h.deps.CodeRefresher)
}

// users returns nil when no user repository is wired, which skips the
// existence check.
func (h *Handlers) users() UserDirectory {
	if h.deps.Repo == nil || h.deps.Repo.User == nil {
		return nil
	}
	return h.deps.Repo.User
}
