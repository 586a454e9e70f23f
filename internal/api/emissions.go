package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
)

// FlightEmissionsHandler handles GET /api/v1/flights/{id}/emissions
func FlightEmissionsHandler(svc EmissionsCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id == 0 {
			common.RespondError(w, initTime, nil, constants.MsgInvalidFlightID, http.StatusBadRequest)
			return
		}

		result, err := svc.DistanceAndEmissions(r.Context(), uint(id))
		if err != nil {
			respondServiceError(w, r, initTime, err, constants.MsgEmissionsUnavailable)
			return
		}
		if result == nil {
			common.RespondError(w, initTime, nil, constants.MsgEmissionsUnavailable, http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgEmissionsFetched, result)
	}
}
