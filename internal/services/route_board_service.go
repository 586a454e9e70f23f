package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/metrics"
	"wayfarer/tracker/internal/models/dtos"
	"wayfarer/tracker/internal/models/gorm"
	"wayfarer/tracker/internal/strutil"
)

// FlightStore is the read side of stored flights.
type FlightStore interface {
	SearchByRoute(ctx context.Context, departureCode, arrivalCode *string, date *time.Time) ([]gorm.Flight, error)
	GetByID(ctx context.Context, id uint) (*gorm.Flight, error)
}

// LiveFeed returns live observations for an airport. Implementations absorb
// their own failures and return an empty list instead of an error.
type LiveFeed interface {
	Departures(ctx context.Context, airportCode string, limit int) []dtos.LiveObservation
	Arrivals(ctx context.Context, airportCode string, limit int) []dtos.LiveObservation
}

// RouteBoardService builds departures/arrivals boards, optionally reconciling
// stored flights with the live feed.
type RouteBoardService struct {
	flights FlightStore
	live    LiveFeed
	metrics *metrics.MetricsRegistry
}

func NewRouteBoardService(flights FlightStore, live LiveFeed, m *metrics.MetricsRegistry) *RouteBoardService {
	return &RouteBoardService{
		flights: flights,
		live:    live,
		metrics: m,
	}
}

// boardSide holds the fetch results for one direction.
type boardSide struct {
	stored []gorm.Flight
	live   []dtos.LiveObservation
}

// Board returns the airport board for the requested direction(s). A blank
// airport code yields an empty board without touching any collaborator.
func (s *RouteBoardService) Board(ctx context.Context, airportCode string, direction constants.BoardDirection, includeLive bool, limit int) (*dtos.BoardResponse, error) {
	board := dtos.EmptyBoard()

	code := strutil.NormalizeCode(airportCode)
	if code == "" {
		return board, nil
	}
	if limit <= 0 {
		limit = constants.DefaultBoardLimit
	}
	useLive := includeLive && s.live != nil

	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.BoardBuildDuration.WithLabelValues(strconv.FormatBool(useLive)).Observe(time.Since(start).Seconds())
		}
	}()

	var departing, arriving boardSide

	// All fetches run concurrently; merging starts only once every one has returned.
	g, gctx := errgroup.WithContext(ctx)
	if direction.IncludesDepartures() {
		g.Go(func() error {
			flights, err := s.flights.SearchByRoute(gctx, &code, nil, nil)
			if err != nil {
				return fmt.Errorf("failed to load departures for %s: %w", code, err)
			}
			departing.stored = flights
			return nil
		})
		if useLive {
			g.Go(func() error {
				departing.live = s.live.Departures(gctx, code, limit)
				return nil
			})
		}
	}
	if direction.IncludesArrivals() {
		g.Go(func() error {
			flights, err := s.flights.SearchByRoute(gctx, nil, &code, nil)
			if err != nil {
				return fmt.Errorf("failed to load arrivals for %s: %w", code, err)
			}
			arriving.stored = flights
			return nil
		})
		if useLive {
			g.Go(func() error {
				arriving.live = s.live.Arrivals(gctx, code, limit)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancelled request gets no board, not even a partial one.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if direction.IncludesDepartures() {
		board.Departing = s.assemble(departing, useLive, limit)
	}
	if direction.IncludesArrivals() {
		board.Arriving = s.assemble(arriving, useLive, limit)
	}
	return board, nil
}

func (s *RouteBoardService) assemble(side boardSide, useLive bool, limit int) []dtos.BoardItem {
	var items []dtos.BoardItem
	if useLive {
		items = MergeBoard(side.stored, side.live, limit)
	} else {
		items = storedBoard(side.stored, limit)
	}

	if s.metrics != nil {
		for _, item := range items {
			s.metrics.BoardItemsTotal.WithLabelValues(item.Source).Inc()
		}
	}
	return items
}

// storedBoard orders stored flights newest departure first and maps them.
func storedBoard(flights []gorm.Flight, limit int) []dtos.BoardItem {
	sorted := make([]gorm.Flight, len(flights))
	copy(sorted, flights)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ScheduledDepartureUTC.After(sorted[j].ScheduledDepartureUTC)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	items := make([]dtos.BoardItem, 0, len(sorted))
	for i := range sorted {
		items = append(items, StoredBoardItem(&sorted[i]))
	}
	return items
}

// MergeBoard reconciles stored flights with live observations. Entries sharing
// a dedup key collapse into one item whose non-blank stored fields win. The
// result is ordered by departure time, newest first, and truncated to limit.
func MergeBoard(stored []gorm.Flight, live []dtos.LiveObservation, limit int) []dtos.BoardItem {
	items := make([]dtos.BoardItem, 0, len(stored)+len(live))
	index := make(map[string]int, len(stored)+len(live))

	for i := range stored {
		item := StoredBoardItem(&stored[i])
		key := BoardDedupKey(item)
		if _, exists := index[key]; exists {
			continue
		}
		index[key] = len(items)
		items = append(items, item)
	}

	for _, obs := range live {
		item := LiveBoardItem(obs)
		key := BoardDedupKey(item)
		if pos, exists := index[key]; exists {
			items[pos] = combineBoardItems(items[pos], item)
			continue
		}
		index[key] = len(items)
		items = append(items, item)
	}

	// Timestamps share one fixed-width UTC layout, so text order is time order.
	// Missing times are "" and sink to the end.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DepartureTime > items[j].DepartureTime
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// BoardDedupKey is DESIGNATOR|DEP→ARR, each part trimmed and upper-cased.
func BoardDedupKey(item dtos.BoardItem) string {
	return strutil.NormalizeCode(item.FlightNumber) + "|" +
		strutil.NormalizeCode(item.DepartureCode) + "→" +
		strutil.NormalizeCode(item.ArrivalCode)
}

// StoredBoardItem maps a stored flight, with its identifier, to a board item.
func StoredBoardItem(f *gorm.Flight) dtos.BoardItem {
	id := f.ID
	item := dtos.BoardItem{
		ID:            &id,
		FlightNumber:  f.FlightNumber,
		Aircraft:      f.Aircraft.DisplayName(),
		DepartureTime: formatBoardTime(&f.ScheduledDepartureUTC),
		ArrivalTime:   formatBoardTime(&f.ScheduledArrivalUTC),
		DepartureCode: f.DepartureAirport.Code(),
		ArrivalCode:   f.ArrivalAirport.Code(),
		Source:        dtos.BoardSourceStored,
	}
	if f.Airline != nil {
		item.Airline = f.Airline.Name
	}
	return item
}

// LiveBoardItem maps a live observation to a board item. Codes prefer IATA,
// times prefer actual over scheduled.
func LiveBoardItem(obs dtos.LiveObservation) dtos.BoardItem {
	return dtos.BoardItem{
		FlightNumber:  obs.FlightNumber,
		Airline:       strutil.FirstNonBlank(obs.AirlineName, obs.AirlineIATA, obs.AirlineICAO),
		Aircraft:      liveAircraftDisplay(obs),
		DepartureTime: formatBoardTime(firstKnownTime(obs.ActualDeparture, obs.ScheduledDeparture)),
		ArrivalTime:   formatBoardTime(firstKnownTime(obs.ActualArrival, obs.ScheduledArrival)),
		DepartureCode: strutil.FirstNonBlank(obs.DepartureIATA, obs.DepartureICAO),
		ArrivalCode:   strutil.FirstNonBlank(obs.ArrivalIATA, obs.ArrivalICAO),
		Source:        dtos.BoardSourceLive,
	}
}

func liveAircraftDisplay(obs dtos.LiveObservation) string {
	typ := strutil.FirstNonBlank(obs.AircraftType)
	reg := strutil.FirstNonBlank(obs.AircraftRegistration)
	if typ != "" && reg != "" {
		return typ + " • " + reg
	}
	return strutil.FirstNonBlank(typ, reg)
}

// combineBoardItems keeps every non-blank stored field and backfills the rest
// from live.
func combineBoardItems(stored, live dtos.BoardItem) dtos.BoardItem {
	id := stored.ID
	if id == nil {
		id = live.ID
	}
	return dtos.BoardItem{
		ID:            id,
		FlightNumber:  strutil.FirstNonBlank(stored.FlightNumber, live.FlightNumber),
		Airline:       strutil.FirstNonBlank(stored.Airline, live.Airline),
		Aircraft:      strutil.FirstNonBlank(stored.Aircraft, live.Aircraft),
		DepartureTime: strutil.FirstNonBlank(stored.DepartureTime, live.DepartureTime),
		ArrivalTime:   strutil.FirstNonBlank(stored.ArrivalTime, live.ArrivalTime),
		DepartureCode: strutil.FirstNonBlank(stored.DepartureCode, live.DepartureCode),
		ArrivalCode:   strutil.FirstNonBlank(stored.ArrivalCode, live.ArrivalCode),
		Source:        dtos.BoardSourceMerged,
	}
}

func firstKnownTime(candidates ...*time.Time) *time.Time {
	for _, t := range candidates {
		if t != nil && !t.IsZero() {
			return t
		}
	}
	return nil
}

func formatBoardTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
