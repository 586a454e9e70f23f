package analytics

import "math"

// EarthRadiusKm is the mean Earth radius used for all great-circle figures.
const EarthRadiusKm = 6371.0

const kmToMiles = 0.621371

// Coordinate is a position in decimal degrees. Either component may be unknown.
type Coordinate struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// NewCoordinate builds a fully known coordinate.
func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{Latitude: &lat, Longitude: &lon}
}

// Known reports whether both latitude and longitude are present.
func (c Coordinate) Known() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// GreatCircleKm returns the Haversine distance between a and b rounded to 0.1 km.
// ok is false when any latitude or longitude is unknown.
func GreatCircleKm(a, b Coordinate) (km float64, ok bool) {
	if !a.Known() || !b.Known() {
		return 0, false
	}

	lat1 := toRadians(*a.Latitude)
	lat2 := toRadians(*b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(*b.Longitude - *a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return Round(EarthRadiusKm*c, 1), true
}

// KmToMiles converts kilometres to whole statute miles.
func KmToMiles(km float64) int {
	return int(math.Round(km * kmToMiles))
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
