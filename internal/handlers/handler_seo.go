package handlers

import (
	"encoding/json"
	"net/http"

	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/models"
	"codex-portfolio/internal/realtime"
)

func GETSEOHandler(ctx *middlewares.AppContext) {
	seo, err := ctx.Storage.GetSEOSettings(ctx)
	if err != nil {
		ctx.Logger.Error("failed to load seo settings", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to load seo settings")
		return
	}

	ctx.WriteJSON(http.StatusOK, seo)
}

func PUTSEOHandler(ctx *middlewares.AppContext) {
	var incoming models.SEOSettings
	if err := json.NewDecoder(ctx.Request.Body).Decode(&incoming); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid seo payload")
		return
	}

	updated, err := ctx.Storage.UpdateSEOSettings(ctx, &incoming)
	if err != nil {
		ctx.Logger.Error("failed to update seo settings", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to update seo settings")
		return
	}

	if ctx.Hub != nil {
		ctx.Hub.Broadcast(realtime.EventContentChanged, map[string]string{"table": "seo_settings"})
	}

	ctx.WriteJSON(http.StatusOK, updated)
}
