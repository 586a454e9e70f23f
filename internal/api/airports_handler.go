package api

import (
	"net/http"
	"time"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/models/dtos"
)

// SyncAirportsHandler handles POST /api/v1/admin/airports/sync
// Re-imports airport reference data and rebuilds the code lookup cache.
func SyncAirportsHandler(importer AirportImporter, codes CodeCacheRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		count, err := importer.LoadFromSource(r.Context())
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to sync airports: "+err.Error(), http.StatusBadGateway)
			return
		}

		total, err := importer.AirportCount(r.Context())
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to get stats: "+err.Error(), http.StatusInternalServerError)
			return
		}

		result := dtos.AirportSyncResult{
			Imported: count,
			Total:    total,
		}

		if codes != nil {
			cached, err := codes.Refresh(r.Context())
			if err != nil {
				// The import itself succeeded; the worker will retry on its next tick
				logging.Warn("Airport code cache refresh after sync failed", "error", err)
			}
			result.CodesCached = cached
		}

		common.RespondSuccess(w, initTime, constants.MsgAirportsSynced, result)
	}
}
