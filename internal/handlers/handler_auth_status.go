package handlers

import (
	"errors"
	"net/http"

	"codex-portfolio/internal/auth"
	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/models"
)

type AuthStatusResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
	LoginURL      string       `json:"login_url,omitempty"`
}

// AuthStatusHandler is the SPA's session bootstrap. It verifies the stored
// token against the hub, silently refreshes an expired one, and only clears
// the session when the refresh path is exhausted.
func AuthStatusHandler(ctx *middlewares.AppContext) {
	response := AuthStatusResponse{
		Authenticated: false,
		LoginURL:      "/api/auth/login",
	}

	if !ctx.SessionManager.IsAuthenticated(ctx) {
		ctx.WriteJSON(http.StatusUnauthorized, response)
		return
	}

	sessionUser, ok := ctx.SessionManager.GetUser(ctx)
	if !ok {
		ctx.WriteJSON(http.StatusUnauthorized, response)
		return
	}

	if !ctx.SessionManager.IsTokenExpired(ctx) {
		accessToken := ctx.SessionManager.GetAccessToken(ctx)

		hubUser, err := ctx.Auth.FetchProfile(ctx, accessToken)
		switch {
		case err == nil:
			ctx.SessionManager.SetUser(ctx, hubUser)
			response.Authenticated = true
			response.User = hubUser
			response.LoginURL = ""
			ctx.WriteJSON(http.StatusOK, response)
			return
		case errors.Is(err, auth.ErrSessionExpired):
			// Hub revoked the token early, fall through to refresh.
			ctx.Logger.Debug("access token rejected by hub, attempting refresh", "user_id", sessionUser.ID)
		default:
			// Hub unreachable: the local session is authoritative until
			// the token actually expires.
			ctx.Logger.Warn("profile verification unavailable, serving session user", "error", err)
			response.Authenticated = true
			response.User = sessionUser
			response.LoginURL = ""
			ctx.WriteJSON(http.StatusOK, response)
			return
		}
	}

	grant, err := refreshSession(ctx)
	if err != nil {
		ctx.Logger.Info("session refresh failed, clearing session", "user_id", sessionUser.ID, "error", err)

		if err := ctx.SessionManager.Logout(ctx); err != nil {
			ctx.Logger.Error("failed to destroy session", "error", err)
		}

		ctx.WriteJSON(http.StatusUnauthorized, response)
		return
	}

	response.Authenticated = true
	response.LoginURL = ""
	if grant.User != nil {
		response.User = grant.User
	} else {
		response.User = sessionUser
	}

	ctx.WriteJSON(http.StatusOK, response)
}

// refreshSession runs the refresh grant and installs the new tokens.
func refreshSession(ctx *middlewares.AppContext) (*models.TokenGrant, error) {
	refreshToken := ctx.SessionManager.GetRefreshToken(ctx)
	if refreshToken == "" {
		return nil, auth.ErrNoRefreshToken
	}

	grant, err := ctx.Auth.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	ctx.SessionManager.UpdateTokens(ctx, grant)

	return grant, nil
}
