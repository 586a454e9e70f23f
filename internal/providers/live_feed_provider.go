package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"wayfarer/tracker/internal/config"
	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/models/dtos"
	"wayfarer/tracker/internal/strutil"
)

// MaxLiveFeedPageSize is the largest page the upstream accepts.
const MaxLiveFeedPageSize = 100

// AviationStackProvider reads live departures and arrivals from an
// AviationStack-compatible /flights endpoint.
type AviationStackProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAviationStackProvider creates a live feed provider from configuration.
// The HTTP client timeout is a backstop; callers also bound each call with a context.
func NewAviationStackProvider(cfg *config.Config) *AviationStackProvider {
	return &AviationStackProvider{
		BaseURL: cfg.LiveFeedBaseURL,
		APIKey:  cfg.LiveFeedAPIKey,
		Client: &http.Client{
			Timeout: 2 * cfg.LiveFeedTimeout,
		},
	}
}

// GetProviderType returns the provider type identifier
func (p *AviationStackProvider) GetProviderType() string {
	return "aviationstack"
}

// GetDepartures fetches flights departing the airport. The int result is the HTTP status.
func (p *AviationStackProvider) GetDepartures(ctx context.Context, airportCode string, limit int) ([]dtos.LiveObservation, int, error) {
	return p.fetchAirportFlights(ctx, "dep", airportCode, limit)
}

// GetArrivals fetches flights arriving at the airport. The int result is the HTTP status.
func (p *AviationStackProvider) GetArrivals(ctx context.Context, airportCode string, limit int) ([]dtos.LiveObservation, int, error) {
	return p.fetchAirportFlights(ctx, "arr", airportCode, limit)
}

func (p *AviationStackProvider) fetchAirportFlights(ctx context.Context, side, airportCode string, limit int) ([]dtos.LiveObservation, int, error) {
	code := strutil.NormalizeCode(airportCode)
	if code == "" {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Airport code cannot be empty",
		}
	}

	if limit <= 0 || limit > MaxLiveFeedPageSize {
		limit = MaxLiveFeedPageSize
	}

	// 4-letter codes are ICAO, everything else is treated as IATA
	codeParam := side + "_iata"
	if len(code) == 4 {
		codeParam = side + "_icao"
	}

	params := url.Values{}
	params.Set(codeParam, code)
	params.Set("limit", strconv.Itoa(limit))

	var raw dtos.LiveFlightsRawResponse
	status, err := p.doGET(ctx, "/flights", params, &raw)
	if err != nil {
		return nil, status, err
	}

	if raw.Error != nil {
		return nil, status, p.buildUpstreamError(raw.Error)
	}

	observations := make([]dtos.LiveObservation, 0, len(raw.Data))
	for _, entry := range raw.Data {
		observations = append(observations, ToLiveObservation(entry))
	}
	return observations, status, nil
}

// ToLiveObservation flattens an upstream record.
func ToLiveObservation(entry dtos.LiveFlightEntry) dtos.LiveObservation {
	obs := dtos.LiveObservation{
		FlightNumber: strutil.FirstNonBlankOf(
			func() string { return entry.Flight.IATA },
			func() string { return entry.Flight.ICAO },
			func() string {
				if strutil.IsBlank(entry.Flight.Number) {
					return ""
				}
				return entry.Airline.IATA + entry.Flight.Number
			},
		),
		AirlineName:        entry.Airline.Name,
		AirlineIATA:        entry.Airline.IATA,
		AirlineICAO:        entry.Airline.ICAO,
		DepartureIATA:      entry.Departure.IATA,
		DepartureICAO:      entry.Departure.ICAO,
		ArrivalIATA:        entry.Arrival.IATA,
		ArrivalICAO:        entry.Arrival.ICAO,
		ScheduledDeparture: parseLiveTime(entry.Departure.Scheduled),
		ActualDeparture:    parseLiveTime(entry.Departure.Actual),
		ScheduledArrival:   parseLiveTime(entry.Arrival.Scheduled),
		ActualArrival:      parseLiveTime(entry.Arrival.Actual),
	}
	if entry.Aircraft != nil {
		obs.AircraftRegistration = entry.Aircraft.Registration
		obs.AircraftType = strutil.FirstNonBlank(entry.Aircraft.IATA, entry.Aircraft.ICAO)
	}
	return obs
}

// parseLiveTime accepts RFC 3339 timestamps ("2026-03-01T08:05:00+00:00")
// and returns them in UTC. Unparseable values are treated as unknown.
func parseLiveTime(s *string) *time.Time {
	if s == nil || strutil.IsBlank(*s) {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// ============================================================================
// HTTP Helper Methods
// ============================================================================

// doGET performs a GET request with the access key attached
func (p *AviationStackProvider) doGET(ctx context.Context, endpoint string, params url.Values, result interface{}) (int, error) {
	if p.APIKey == "" {
		return 0, &ProviderError{
			Code:    constants.ErrCodeInvalidAPIKey,
			Message: "LIVE_FEED_API_KEY environment variable is not set",
		}
	}

	params.Set("access_key", p.APIKey)
	reqURL := p.BaseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		code := constants.ErrCodeNetworkError
		if errors.Is(err, context.DeadlineExceeded) {
			code = constants.ErrCodeTimeout
		}
		return 0, &ProviderError{
			Code:    code,
			Message: constants.GetErrorMessage(code),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if err := p.handleHTTPError(resp, endpoint); err != nil {
		return resp.StatusCode, err
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Failed to decode response",
			Err:     err,
		}
	}

	return resp.StatusCode, nil
}

// handleHTTPError converts HTTP errors to ProviderError
func (p *AviationStackProvider) handleHTTPError(resp *http.Response, endpoint string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return p.buildHTTPError(resp.StatusCode, endpoint, string(bodyBytes))
}

// buildHTTPError creates appropriate error based on status code
func (p *AviationStackProvider) buildHTTPError(statusCode int, endpoint string, body string) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ProviderError{
			Code:    constants.ErrCodeInvalidAPIKey,
			Message: fmt.Sprintf("Authentication failed for endpoint %s", endpoint),
			Details: body,
		}
	case http.StatusNotFound:
		return &ProviderError{
			Code:    constants.ErrCodeResourceNotFound,
			Message: fmt.Sprintf("Resource not found: %s", endpoint),
			Details: body,
		}
	case http.StatusTooManyRequests:
		return &ProviderError{
			Code:    constants.ErrCodeRateLimited,
			Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
			Details: body,
		}
	default:
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: fmt.Sprintf("HTTP %d from %s", statusCode, endpoint),
			Details: body,
		}
	}
}

// buildUpstreamError maps an error body returned with a 2xx status.
func (p *AviationStackProvider) buildUpstreamError(body *dtos.LiveFeedErrorBody) error {
	code := constants.ErrCodeUpstreamError
	switch body.Code {
	case "invalid_access_key", "missing_access_key", "inactive_user":
		code = constants.ErrCodeInvalidAPIKey
	case "usage_limit_reached", "rate_limit_reached":
		code = constants.ErrCodeRateLimited
	}
	return &ProviderError{
		Code:    code,
		Message: constants.GetErrorMessage(code),
		Details: body.Message,
	}
}
