package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"wayfarer/tracker/internal/auth"
	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
)

// SelfOrAdminMiddleware lets a caller through only when the {param} path
// value is their own user id, or when they are an admin. It must run inside
// a routed group so chi has resolved the path parameter.
func SelfOrAdminMiddleware(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())
			if claims == nil {
				common.RespondError(w, time.Now(), nil, constants.MsgUnauthorized, http.StatusUnauthorized)
				return
			}

			target := strings.TrimSpace(chi.URLParam(r, param))
			if claims.IsAdmin() || (target != "" && target == claims.UserID()) {
				next.ServeHTTP(w, r)
				return
			}

			common.RespondError(w, time.Now(), nil, constants.MsgForbidden, http.StatusForbidden)
		})
	}
}
