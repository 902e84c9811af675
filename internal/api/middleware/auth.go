package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
)

// AdminTokenHeader carries the admin API token on protected routes
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth guards the admin subrouter with a shared token.
// Missing header is 401, wrong token is 403.
func AdminAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminTokenHeader)
			if provided == "" {
				handlers.RespondUnauthorized(w, "missing admin token")
				return
			}
			if provided != token {
				handlers.RespondForbidden(w, "invalid admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
