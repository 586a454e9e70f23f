package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
)

// AirportBoardHandler handles GET /api/v1/airports/{code}/board
//
// Query: direction=departing|arriving|both (default both), live=true to
// reconcile with the live feed, limit=N (non-positive or invalid means 100).
func AirportBoardHandler(svc BoardProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		code := chi.URLParam(r, "code")
		direction := constants.ParseBoardDirection(r.URL.Query().Get("direction"))
		live := common.QueryBool(r, "live")
		limit := common.QueryInt(r, "limit", constants.DefaultBoardLimit)

		board, err := svc.Board(r.Context(), code, direction, live, limit)
		if err != nil {
			respondServiceError(w, r, initTime, err, constants.MsgBoardUnavailable)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgBoardFetched, board)
	}
}
