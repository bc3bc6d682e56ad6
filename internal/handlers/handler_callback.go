package handlers

import (
	"errors"
	"net/http"

	"codex-portfolio/internal/auth"
	"codex-portfolio/internal/metrics"
	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/models"
)

// GETCallbackHandler lands the browser after the hub login. It exchanges the
// code for tokens, installs the session, and sends the browser back to
// wherever it was before login started.
func GETCallbackHandler(ctx *middlewares.AppContext) {
	if errorParam := ctx.Request.URL.Query().Get("error"); errorParam != "" {
		errorDesc := ctx.Request.URL.Query().Get("error_description")

		ctx.Logger.Warn("auth hub callback error", "error", errorParam, "description", errorDesc)
		metrics.AuthLoginsTotal.WithLabelValues(metrics.LoginResultDenied).Inc()
		recordLoginFailure(ctx, errorParam)
		redirectLoginError(ctx, errorParam)
		return
	}

	code := ctx.Request.URL.Query().Get("code")

	grant, err := ctx.Auth.ExchangeCode(ctx, code)
	if err != nil {
		ctx.Logger.Error("token exchange failed", "error", err)
		metrics.AuthLoginsTotal.WithLabelValues(metrics.LoginResultExchange).Inc()
		recordLoginFailure(ctx, err.Error())

		var exchangeErr *auth.ExchangeError
		if errors.As(err, &exchangeErr) {
			redirectLoginError(ctx, exchangeErr.Code)
			return
		}

		redirectLoginError(ctx, "auth_failed")
		return
	}

	// Fresh session token before privileged state goes in.
	if err := ctx.SessionManager.RenewToken(ctx); err != nil {
		ctx.Logger.Error("failed to renew session token", "error", err)
		redirectLoginError(ctx, "auth_failed")
		return
	}

	if err := ctx.SessionManager.CreateSessionFromGrant(ctx, grant); err != nil {
		ctx.Logger.Error("failed to create session", "error", err)
		redirectLoginError(ctx, "auth_failed")
		return
	}

	if stored, err := ctx.Storage.UpsertUser(ctx, grant.User); err != nil {
		ctx.Logger.Error("failed to persist user", "user_id", grant.User.ID, "error", err)
	} else {
		ctx.SessionManager.SetUser(ctx, stored)
	}

	ctx.Logger.Info("user authenticated",
		"user_id", grant.User.ID,
		"username", grant.User.Username,
		"email", RedactEmail(grant.User.Email),
	)

	metrics.AuthLoginsTotal.WithLabelValues(metrics.LoginResultSuccess).Inc()
	if ctx.Security != nil {
		ctx.Security.Record(ctx, models.SecurityEventLoginSuccess, grant.User, "")
	}

	// State echoes the path login started from; the stored redirect is the
	// fallback. Both run through the same validation, unvalidated input
	// never reaches the Location header.
	redirectTo := auth.SafeRedirectPath(ctx.Request.URL.Query().Get("state"))
	if redirectTo == "/" {
		if pending := ctx.SessionManager.ConsumeRedirectAfterLogin(ctx); pending != "" {
			redirectTo = auth.SafeRedirectPath(pending)
		}
	} else {
		ctx.SessionManager.ConsumeRedirectAfterLogin(ctx)
	}

	ctx.Redirect(redirectTo, http.StatusFound)
}

func recordLoginFailure(ctx *middlewares.AppContext, detail string) {
	if ctx.Security != nil {
		ctx.Security.Record(ctx, models.SecurityEventLoginFailed, nil, detail)
	}
}

// redirectLoginError sends the browser to the SPA login screen, never back to
// the callback route itself, so a failed exchange cannot loop.
func redirectLoginError(ctx *middlewares.AppContext, code string) {
	ctx.Redirect("/login?error="+code, http.StatusFound)
}
