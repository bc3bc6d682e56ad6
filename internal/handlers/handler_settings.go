package handlers

import (
	"encoding/json"
	"net/http"

	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/models"
)

type SettingsResponse struct {
	Settings  *models.SiteSettings `json:"settings"`
	Loading   bool                 `json:"loading"`
	FeedState string               `json:"feed_state"`
}

// GETSettingsHandler serves the current snapshot from the bridge. It never
// touches storage on the request path.
func GETSettingsHandler(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, SettingsResponse{
		Settings:  ctx.Settings.Snapshot(),
		Loading:   ctx.Settings.Loading(),
		FeedState: ctx.Settings.FeedState(),
	})
}

// PUTSettingsHandler persists a full settings record and nudges the bridge.
// The response comes from the re-read row, not the request body, so the
// caller sees exactly what every other client will see.
func PUTSettingsHandler(ctx *middlewares.AppContext) {
	var incoming models.SiteSettings
	if err := json.NewDecoder(ctx.Request.Body).Decode(&incoming); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid settings payload")
		return
	}

	updated, err := ctx.Storage.UpdateSiteSettings(ctx, &incoming)
	if err != nil {
		ctx.Logger.Error("failed to update site settings", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to update settings")
		return
	}

	ctx.Settings.Notify()

	principal := ctx.GetPrincipal()
	if principal != nil {
		ctx.Logger.Info("site settings updated", "by", principal.GetUsername())
	}

	ctx.WriteJSON(http.StatusOK, updated)
}
