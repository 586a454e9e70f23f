package gorm

import (
	"database/sql"
	"time"

	"wayfarer/tracker/internal/analytics"
	"wayfarer/tracker/internal/strutil"
)

// Airport represents an airport record with geographic coordinates. ICAO is
// the natural key; flights reference airports by ID, so re-imports update
// rows in place.
type Airport struct {
	ID        uint          `gorm:"column:id;primaryKey"`
	ICAO      string        `gorm:"column:icao;type:varchar(4);uniqueIndex:uq_airports_icao"`
	IATA      string        `gorm:"column:iata;type:varchar(3);index"`
	Name      string        `gorm:"column:name;type:text;not null"`
	City      string        `gorm:"column:city;type:varchar(100)"`
	Country   string        `gorm:"column:country;type:varchar(100)"`
	Elevation sql.NullInt64 `gorm:"column:elevation;type:integer"`
	Latitude  *float64      `gorm:"column:latitude;type:numeric(10,6)"`
	Longitude *float64      `gorm:"column:longitude;type:numeric(10,6)"`
	Timezone  string        `gorm:"column:timezone;type:varchar(50)"`
	CreatedAt time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}

// Code is the display code: IATA when present, ICAO otherwise.
func (a *Airport) Code() string {
	if a == nil {
		return ""
	}
	return strutil.FirstNonBlank(a.IATA, a.ICAO)
}

// Coordinate returns the airport position; components may be unknown.
func (a *Airport) Coordinate() analytics.Coordinate {
	if a == nil {
		return analytics.Coordinate{}
	}
	return analytics.Coordinate{Latitude: a.Latitude, Longitude: a.Longitude}
}
