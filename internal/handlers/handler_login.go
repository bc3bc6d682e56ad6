package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"codex-portfolio/internal/auth"
	"codex-portfolio/internal/middlewares"
)

// GETLoginHandler starts the hub login flow. The SPA calls this, gets the
// hub URL back, and performs the browser redirect itself.
func GETLoginHandler(ctx *middlewares.AppContext) {
	if ctx.SessionManager.IsUserAuthenticated(ctx) {
		ctx.Logger.Debug("user already authenticated")
		ctx.SetJSONStatus(http.StatusOK, "ok")
		return
	}

	redirectTo := ctx.Request.URL.Query().Get("rd")
	if redirectTo == "" {
		redirectTo = refererPath(ctx.Request.Header.Get("Referer"))
	}
	redirectTo = auth.SafeRedirectPath(redirectTo)

	if strings.Contains(redirectTo, "/error") {
		ctx.Logger.Debug("referer is error page, redirecting to root instead", "original_referer", redirectTo)
		redirectTo = "/"
	}

	ctx.SessionManager.SetRedirectAfterLogin(ctx, redirectTo)

	admin := ctx.Request.URL.Query().Get("admin") == "1"
	authURL := ctx.Auth.LoginURL(redirectTo, admin)

	ctx.Logger.Debug("redirecting to auth hub", "url", authURL, "admin", admin)

	ctx.WriteJSON(http.StatusOK, map[string]string{
		"status":       "redirect_required",
		"redirect_url": authURL,
	})
}

// refererPath reduces a Referer value, usually an absolute URL, to its path
// and query so the same-origin validation keeps the page instead of
// discarding the whole thing.
func refererPath(referer string) string {
	if referer == "" {
		return ""
	}

	parsed, err := url.Parse(referer)
	if err != nil {
		return ""
	}

	path := parsed.Path
	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}
	return path
}
