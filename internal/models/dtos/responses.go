package dtos

// APIResponse is the envelope of every JSON API response.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// AirportSyncResult is returned by the airport import endpoint.
type AirportSyncResult struct {
	Imported    int   `json:"imported"`
	Total       int64 `json:"total_airports"`
	CodesCached int   `json:"codes_cached"`
}
