package analytics

import "strings"

// Co2KgPerPassengerKm is the base emission factor of the heuristic.
const Co2KgPerPassengerKm = 0.11

const (
	turbopropMultiplier = 1.20
	widebodyMultiplier  = 1.05
	defaultMultiplier   = 1.00
)

var (
	turbopropMarkers      = []string{"ATR", "Q400"}
	turbopropTypePrefixes = []string{"AT", "DH"}
	widebodyMarkers       = []string{"350", "777", "787", "330", "340", "767", "380"}
)

// AircraftHint carries whatever is known about the operating aircraft.
type AircraftHint struct {
	Model    string
	TypeCode string
}

// EstimateCo2Kg returns a single-passenger CO2 estimate in kg, rounded to 2 decimals.
// This is a heuristic, not an emissions model.
func EstimateCo2Kg(distanceKm float64, hint *AircraftHint) float64 {
	if distanceKm <= 0 {
		return 0
	}
	return Round(distanceKm*Co2KgPerPassengerKm*AircraftMultiplier(hint), 2)
}

// AircraftMultiplier classifies the aircraft. Turboprop markers win over wide-body markers.
func AircraftMultiplier(hint *AircraftHint) float64 {
	if hint == nil {
		return defaultMultiplier
	}
	model := strings.ToUpper(strings.TrimSpace(hint.Model))
	typeCode := strings.ToUpper(strings.TrimSpace(hint.TypeCode))

	switch {
	case containsAny(model, turbopropMarkers) || containsAny(typeCode, turbopropMarkers) || hasAnyPrefix(typeCode, turbopropTypePrefixes):
		return turbopropMultiplier
	case containsAny(model, widebodyMarkers) || containsAny(typeCode, widebodyMarkers):
		return widebodyMultiplier
	default:
		return defaultMultiplier
	}
}

func containsAny(s string, markers []string) bool {
	if s == "" {
		return false
	}
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	if s == "" {
		return false
	}
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
