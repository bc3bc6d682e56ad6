package middlewares

import (
	"net/http"
	"slices"

	"codex-portfolio/internal/models"
)

const loginEndpoint = "/api/auth/login"

// OptionalAuth attaches the session user as the request principal when one
// exists but never rejects the request.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if user, ok := appCtx.SessionManager.GetAuthenticatedUser(appCtx); ok {
			appCtx.SetPrincipal(user)
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects unauthenticated requests with 401 and the login URL
// the client should redirect to.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		user, ok := appCtx.SessionManager.GetAuthenticatedUser(appCtx)
		if !ok {
			appCtx.WriteJSON(http.StatusUnauthorized, map[string]string{
				"error":     "authentication required",
				"login_url": loginEndpoint,
			})
			return
		}

		appCtx.SetPrincipal(user)
		next.ServeHTTP(w, r)
	})
}

// RequireRole gates a route on the session user's role. An authenticated
// user with the wrong role gets a terminal 403, never a login redirect,
// so the client cannot loop back through the hub.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			appCtx := GetAppContext(r)
			if appCtx == nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			user, ok := appCtx.SessionManager.GetAuthenticatedUser(appCtx)
			if !ok {
				appCtx.WriteJSON(http.StatusUnauthorized, map[string]string{
					"error":     "authentication required",
					"login_url": loginEndpoint,
				})
				return
			}

			if !slices.Contains(roles, user.Role) {
				if appCtx.Security != nil {
					appCtx.Security.Record(appCtx, models.SecurityEventAccessDenied, user, r.URL.Path)
				}
				appCtx.SetJSONError(http.StatusForbidden, "access_denied")
				return
			}

			appCtx.SetPrincipal(user)
			next.ServeHTTP(w, r)
		})
	}
}
