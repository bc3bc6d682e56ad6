package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/models"
	"codex-portfolio/internal/storage"

	"github.com/go-chi/chi/v5"
)

func GETEducationHandler(ctx *middlewares.AppContext) {
	entries, err := ctx.Storage.ListEducation(ctx, !wantsAll(ctx))
	if err != nil {
		ctx.Logger.Error("failed to list education", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to list education")
		return
	}

	ctx.WriteJSON(http.StatusOK, entries)
}

func POSTEducationHandler(ctx *middlewares.AppContext) {
	var incoming models.Education
	if err := json.NewDecoder(ctx.Request.Body).Decode(&incoming); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid education payload")
		return
	}

	if incoming.Institution == "" {
		ctx.SetJSONError(http.StatusBadRequest, "institution is required")
		return
	}

	created, err := ctx.Storage.CreateEducation(ctx, &incoming)
	if err != nil {
		ctx.Logger.Error("failed to create education entry", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to create education entry")
		return
	}

	broadcastContentChange(ctx, "education")
	ctx.WriteJSON(http.StatusCreated, created)
}

func PUTEducationHandler(ctx *middlewares.AppContext) {
	var incoming models.Education
	if err := json.NewDecoder(ctx.Request.Body).Decode(&incoming); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid education payload")
		return
	}

	incoming.ID = chi.URLParam(ctx.Request, "id")

	updated, err := ctx.Storage.UpdateEducation(ctx, &incoming)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "education entry not found")
			return
		}
		ctx.Logger.Error("failed to update education entry", "id", incoming.ID, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to update education entry")
		return
	}

	broadcastContentChange(ctx, "education")
	ctx.WriteJSON(http.StatusOK, updated)
}

func DELETEEducationHandler(ctx *middlewares.AppContext) {
	id := chi.URLParam(ctx.Request, "id")

	if err := ctx.Storage.DeleteEducation(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "education entry not found")
			return
		}
		ctx.Logger.Error("failed to delete education entry", "id", id, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to delete education entry")
		return
	}

	broadcastContentChange(ctx, "education")
	ctx.SetJSONStatus(http.StatusOK, "deleted")
}
