package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixAirportCode CachePrefix = "AIRPORT_CODE_"
)

const (
	// DefaultBoardLimit applies when a board is requested with limit <= 0.
	DefaultBoardLimit = 100

	// PassportRouteCap bounds each half of the passport route projection.
	PassportRouteCap = 1000

	DefaultMapPastRoutes     = 50
	DefaultMapUpcomingRoutes = 20
)
