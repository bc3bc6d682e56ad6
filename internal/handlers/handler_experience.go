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

func GETExperienceHandler(ctx *middlewares.AppContext) {
	entries, err := ctx.Storage.ListExperience(ctx, !wantsAll(ctx))
	if err != nil {
		ctx.Logger.Error("failed to list experience", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to list experience")
		return
	}

	ctx.WriteJSON(http.StatusOK, entries)
}

func POSTExperienceHandler(ctx *middlewares.AppContext) {
	var incoming models.Experience
	if err := json.NewDecoder(ctx.Request.Body).Decode(&incoming); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid experience payload")
		return
	}

	if incoming.Company == "" {
		ctx.SetJSONError(http.StatusBadRequest, "company is required")
		return
	}

	created, err := ctx.Storage.CreateExperience(ctx, &incoming)
	if err != nil {
		ctx.Logger.Error("failed to create experience entry", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to create experience entry")
		return
	}

	broadcastContentChange(ctx, "experience")
	ctx.WriteJSON(http.StatusCreated, created)
}

func PUTExperienceHandler(ctx *middlewares.AppContext) {
	var incoming models.Experience
	if err := json.NewDecoder(ctx.Request.Body).Decode(&incoming); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid experience payload")
		return
	}

	incoming.ID = chi.URLParam(ctx.Request, "id")

	updated, err := ctx.Storage.UpdateExperience(ctx, &incoming)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "experience entry not found")
			return
		}
		ctx.Logger.Error("failed to update experience entry", "id", incoming.ID, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to update experience entry")
		return
	}

	broadcastContentChange(ctx, "experience")
	ctx.WriteJSON(http.StatusOK, updated)
}

func DELETEExperienceHandler(ctx *middlewares.AppContext) {
	id := chi.URLParam(ctx.Request, "id")

	if err := ctx.Storage.DeleteExperience(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "experience entry not found")
			return
		}
		ctx.Logger.Error("failed to delete experience entry", "id", id, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to delete experience entry")
		return
	}

	broadcastContentChange(ctx, "experience")
	ctx.SetJSONStatus(http.StatusOK, "deleted")
}
