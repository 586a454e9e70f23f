package constants

const (
	MsgBoardFetched     = "Board fetched"
	MsgPassportFetched  = "Passport fetched"
	MsgDetailsFetched   = "Passport details fetched"
	MsgEmissionsFetched = "Flight emissions computed"
	MsgMapRoutesFetched = "Map routes fetched"
	MsgAirportsSynced   = "Airports synced successfully"
)

const (
	MsgInvalidFlightID      = "Invalid flight id"
	MsgInvalidUserID        = "Invalid user id"
	MsgUserNotFound         = "User not found"
	MsgEmissionsUnavailable = "Distance and emissions are unavailable for this flight"
	MsgBoardUnavailable     = "Unable to build airport board"
	MsgPassportUnavailable  = "Unable to build passport"
	MsgRequestCancelled     = "Request cancelled"
	MsgUnauthorized         = "Unauthorized"
	MsgInactiveUser         = "User account is inactive"
	MsgForbidden            = "Forbidden"
)
