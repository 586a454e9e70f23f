package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"wayfarer/tracker/internal/auth"
	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/logging"
)

// respondServiceError maps a service failure to a response. Cancelled or
// timed out requests are reported as such; anything else is a 500 carrying
// fallback, with the cause logged rather than exposed.
func respondServiceError(w http.ResponseWriter, r *http.Request, initTime time.Time, err error, fallback string) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		common.RespondError(w, initTime, nil, constants.MsgRequestCancelled, http.StatusRequestTimeout)
		return
	}

	logging.Error(fallback,
		"request_id", auth.GetRequestID(r.Context()),
		"path", r.URL.Path,
		"error", err,
	)
	common.RespondError(w, initTime, nil, fallback, http.StatusInternalServerError)
}
