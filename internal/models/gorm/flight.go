package gorm

import (
	"time"

	"wayfarer/tracker/internal/constants"
)

// Flight is the canonical scheduled flight. References are optional and are
// populated by the repository through preloads.
type Flight struct {
	ID                    uint                   `gorm:"column:id;primaryKey"`
	FlightNumber          string                 `gorm:"column:flight_number;type:varchar(16);index"`
	Status                constants.FlightStatus `gorm:"column:status;type:varchar(16);default:scheduled"`
	ScheduledDepartureUTC time.Time              `gorm:"column:scheduled_departure_utc;index"`
	ScheduledArrivalUTC   time.Time              `gorm:"column:scheduled_arrival_utc"`
	DepartureAirportID    *uint                  `gorm:"column:departure_airport_id;index"`
	ArrivalAirportID      *uint                  `gorm:"column:arrival_airport_id;index"`
	AirlineID             *uint                  `gorm:"column:airline_id"`
	AircraftID            *uint                  `gorm:"column:aircraft_id"`
	CreatedAt             time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time              `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	DepartureAirport *Airport  `gorm:"foreignKey:DepartureAirportID"`
	ArrivalAirport   *Airport  `gorm:"foreignKey:ArrivalAirportID"`
	Airline          *Airline  `gorm:"foreignKey:AirlineID"`
	Aircraft         *Aircraft `gorm:"foreignKey:AircraftID"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}
