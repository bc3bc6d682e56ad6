package middlewares

import "net/http"

// MaintenanceGate returns 503 for public content routes while maintenance
// mode is on. Admins pass through so they can keep editing, and the auth
// routes are never gated or nobody could log in to turn it off.
func MaintenanceGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		settings := appCtx.Settings.Snapshot()
		if settings == nil || !settings.MaintenanceMode {
			next.ServeHTTP(w, r)
			return
		}

		if user, ok := appCtx.SessionManager.GetAuthenticatedUser(appCtx); ok && user.IsAdmin() {
			next.ServeHTTP(w, r)
			return
		}

		message := settings.MaintenanceMessage
		if message == "" {
			message = "The site is down for maintenance."
		}

		appCtx.WriteJSON(http.StatusServiceUnavailable, map[string]string{
			"error":   "maintenance",
			"message": message,
		})
	})
}
