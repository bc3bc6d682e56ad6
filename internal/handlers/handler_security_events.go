package handlers

import (
	"net/http"
	"strconv"

	"codex-portfolio/internal/middlewares"
)

// GETSecurityEventsHandler returns the recent audit log, newest first.
// Admin only; the router enforces that.
func GETSecurityEventsHandler(ctx *middlewares.AppContext) {
	limit := 50
	if raw := ctx.Request.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			ctx.SetJSONError(http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	events, err := ctx.Storage.GetRecentSecurityEvents(ctx, limit)
	if err != nil {
		ctx.Logger.Error("failed to list security events", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to list security events")
		return
	}

	ctx.WriteJSON(http.StatusOK, events)
}
