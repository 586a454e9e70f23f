package dtos

type FlightEmissions struct {
	FlightID           uint    `json:"flight_id"`
	GreatCircleKm      float64 `json:"great_circle_km"`
	AdjustedKm         float64 `json:"adjusted_km"`
	Co2Kg              float64 `json:"co2_kg"`
	MethodologyVersion string  `json:"methodology_version"`
}
