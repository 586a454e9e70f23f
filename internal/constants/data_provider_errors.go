package constants

// Live feed error codes

const (
	ErrCodeInvalidAPIKey     = "INVALID_API_KEY"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodeNetworkError      = "NETWORK_ERROR"
	ErrCodeTimeout           = "TIMEOUT"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
	ErrCodeResourceNotFound  = "RESOURCE_NOT_FOUND"
	ErrCodeUpstreamError     = "UPSTREAM_ERROR"
)

// Error Messages
// Human-readable messages corresponding to error codes

var DataProviderErrorMessages = map[string]string{
	ErrCodeInvalidAPIKey:     "The live feed API key is missing, invalid or has been revoked",
	ErrCodeRateLimited:       "Live feed rate limit exceeded. Please try again later",
	ErrCodeNetworkError:      "Unable to reach the live feed",
	ErrCodeTimeout:           "The live feed did not respond in time",
	ErrCodeInvalidDataFormat: "The live feed returned data in an unexpected format",
	ErrCodeResourceNotFound:  "The requested live feed resource was not found",
	ErrCodeUpstreamError:     "The live feed reported an error",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := DataProviderErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
