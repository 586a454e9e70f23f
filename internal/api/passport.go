package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"wayfarer/tracker/internal/auth"
	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
)

// resolvePathUser reads {user_id} and checks it exists. It writes the error
// response itself and returns ok=false when the request should stop.
func resolvePathUser(w http.ResponseWriter, r *http.Request, initTime time.Time, users UserDirectory) (string, bool) {
	userID := strings.TrimSpace(chi.URLParam(r, "user_id"))
	if userID == "" {
		common.RespondError(w, initTime, nil, constants.MsgInvalidUserID, http.StatusBadRequest)
		return "", false
	}

	if users == nil {
		return userID, true
	}
	exists, err := users.Exists(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, initTime, err, constants.MsgPassportUnavailable)
		return "", false
	}
	if !exists {
		common.RespondError(w, initTime, nil, constants.MsgUserNotFound, http.StatusNotFound)
		return "", false
	}
	return userID, true
}

// PassportHandler handles GET /api/v1/users/{user_id}/passport
func PassportHandler(svc PassportProvider, users UserDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		userID, ok := resolvePathUser(w, r, initTime, users)
		if !ok {
			return
		}

		snapshot, err := svc.BuildSnapshot(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, initTime, err, constants.MsgPassportUnavailable)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgPassportFetched, snapshot)
	}
}

// PassportDetailsHandler handles GET /api/v1/users/{user_id}/passport/details
func PassportDetailsHandler(svc PassportProvider, users UserDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		userID, ok := resolvePathUser(w, r, initTime, users)
		if !ok {
			return
		}

		details, err := svc.GetPassportDetails(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, initTime, err, constants.MsgPassportUnavailable)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgDetailsFetched, details)
	}
}

// UserMapHandler handles GET /api/v1/users/{user_id}/map?past=N&upcoming=M
func UserMapHandler(svc PassportProvider, users UserDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		userID, ok := resolvePathUser(w, r, initTime, users)
		if !ok {
			return
		}

		past := common.QueryInt(r, "past", constants.DefaultMapPastRoutes)
		upcoming := common.QueryInt(r, "upcoming", constants.DefaultMapUpcomingRoutes)

		routes, err := svc.GetMapRoutes(r.Context(), userID, past, upcoming)
		if err != nil {
			respondServiceError(w, r, initTime, err, constants.MsgPassportUnavailable)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgMapRoutesFetched, routes)
	}
}

// MyPassportHandler handles GET /api/v1/me/passport for the token subject.
// A valid token whose account was removed or deactivated is refused.
func MyPassportHandler(svc PassportProvider, users UserLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil || claims.UserID() == "" {
			common.RespondError(w, initTime, nil, constants.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		if users != nil {
			user, err := users.FindByID(r.Context(), claims.UserID())
			if err != nil {
				respondServiceError(w, r, initTime, err, constants.MsgPassportUnavailable)
				return
			}
			if user == nil {
				common.RespondError(w, initTime, nil, constants.MsgUserNotFound, http.StatusNotFound)
				return
			}
			if !user.IsActive {
				common.RespondError(w, initTime, nil, constants.MsgInactiveUser, http.StatusForbidden)
				return
			}
		}

		snapshot, err := svc.BuildSnapshot(r.Context(), claims.UserID())
		if err != nil {
			respondServiceError(w, r, initTime, err, constants.MsgPassportUnavailable)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgPassportFetched, snapshot)
	}
}
