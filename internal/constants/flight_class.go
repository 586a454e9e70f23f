package constants

import (
	"database/sql/driver"
	"fmt"
)

// FlightClass mirrors the Postgres ENUM 'flight_class'
type FlightClass string

const (
	FlightClassEconomy        FlightClass = "economy"
	FlightClassPremiumEconomy FlightClass = "premium_economy"
	FlightClassBusiness       FlightClass = "business"
	FlightClassFirst          FlightClass = "first"
)

// FlightClasses lists every class in declaration order. Scans that pick a
// "most frequent" class iterate this slice so ties resolve to the earlier entry.
var FlightClasses = []FlightClass{
	FlightClassEconomy,
	FlightClassPremiumEconomy,
	FlightClassBusiness,
	FlightClassFirst,
}

func (c FlightClass) String() string { return string(c) }

// Scan implements the sql.Scanner interface
func (c *FlightClass) Scan(src interface{}) error {
	if src == nil {
		*c = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*c = FlightClass(v)
	case []byte:
		*c = FlightClass(v)
	default:
		return fmt.Errorf("FlightClass: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (c FlightClass) Value() (driver.Value, error) { return string(c), nil }
