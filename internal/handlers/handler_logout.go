package handlers

import (
	"net/http"

	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/models"
)

// LogoutHandler clears the local session and tells the hub, best effort, to
// drop its side too. Local logout always wins: a hub error never leaves the
// cookie session alive.
func LogoutHandler(ctx *middlewares.AppContext) {
	logger := ctx.Logger

	user, ok := ctx.SessionManager.GetUser(ctx)
	if !ok {
		logger.Debug("logout without session user")
	}

	if accessToken := ctx.SessionManager.GetAccessToken(ctx); accessToken != "" {
		if err := ctx.Auth.Logout(ctx, accessToken); err != nil {
			logger.Warn("hub logout failed", "error", err)
		}
	}

	if err := ctx.SessionManager.Logout(ctx); err != nil {
		logger.Error("failed to logout user", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to logout")
		return
	}

	if user != nil {
		logger.Info("user logged out", "username", user.Username)
		if ctx.Security != nil {
			ctx.Security.Record(ctx, models.SecurityEventLogout, user, "")
		}
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
