package handlers

import (
	"net/http"

	"codex-portfolio/internal/middlewares"
)

// POSTRefreshHandler forces a token refresh. The SPA calls it shortly before
// expiry instead of waiting for a 401 on a real request.
func POSTRefreshHandler(ctx *middlewares.AppContext) {
	if !ctx.SessionManager.IsAuthenticated(ctx) {
		ctx.SetJSONError(http.StatusUnauthorized, "authentication required")
		return
	}

	grant, err := refreshSession(ctx)
	if err != nil {
		ctx.Logger.Info("explicit refresh failed, clearing session", "error", err)

		if err := ctx.SessionManager.Logout(ctx); err != nil {
			ctx.Logger.Error("failed to destroy session", "error", err)
		}

		ctx.SetJSONError(http.StatusUnauthorized, "session expired")
		return
	}

	expiry, _ := ctx.SessionManager.GetTokenExpiry(ctx)

	ctx.WriteJSON(http.StatusOK, map[string]any{
		"status":     "ok",
		"expires_at": expiry.Unix(),
		"expires_in": grant.ExpiresIn,
	})
}
