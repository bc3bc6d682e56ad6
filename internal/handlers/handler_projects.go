package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/models"
	"codex-portfolio/internal/realtime"
	"codex-portfolio/internal/storage"

	"github.com/go-chi/chi/v5"
)

// GETProjectsHandler lists projects. Anonymous callers only see visible
// rows; an admin asking for ?all=1 gets hidden ones too.
func GETProjectsHandler(ctx *middlewares.AppContext) {
	onlyVisible := !wantsAll(ctx)

	projects, err := ctx.Storage.ListProjects(ctx, onlyVisible)
	if err != nil {
		ctx.Logger.Error("failed to list projects", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to list projects")
		return
	}

	ctx.WriteJSON(http.StatusOK, projects)
}

func GETProjectHandler(ctx *middlewares.AppContext) {
	id := chi.URLParam(ctx.Request, "id")

	project, err := ctx.Storage.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "project not found")
			return
		}
		ctx.Logger.Error("failed to load project", "id", id, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to load project")
		return
	}

	if !project.IsVisible && !isAdminRequest(ctx) {
		ctx.SetJSONError(http.StatusNotFound, "project not found")
		return
	}

	ctx.WriteJSON(http.StatusOK, project)
}

func POSTProjectHandler(ctx *middlewares.AppContext) {
	var incoming models.Project
	if err := json.NewDecoder(ctx.Request.Body).Decode(&incoming); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid project payload")
		return
	}

	if incoming.Title == "" {
		ctx.SetJSONError(http.StatusBadRequest, "title is required")
		return
	}

	created, err := ctx.Storage.CreateProject(ctx, &incoming)
	if err != nil {
		ctx.Logger.Error("failed to create project", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to create project")
		return
	}

	broadcastContentChange(ctx, "projects")
	ctx.WriteJSON(http.StatusCreated, created)
}

func PUTProjectHandler(ctx *middlewares.AppContext) {
	var incoming models.Project
	if err := json.NewDecoder(ctx.Request.Body).Decode(&incoming); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid project payload")
		return
	}

	incoming.ID = chi.URLParam(ctx.Request, "id")

	updated, err := ctx.Storage.UpdateProject(ctx, &incoming)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "project not found")
			return
		}
		ctx.Logger.Error("failed to update project", "id", incoming.ID, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to update project")
		return
	}

	broadcastContentChange(ctx, "projects")
	ctx.WriteJSON(http.StatusOK, updated)
}

func DELETEProjectHandler(ctx *middlewares.AppContext) {
	id := chi.URLParam(ctx.Request, "id")

	if err := ctx.Storage.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "project not found")
			return
		}
		ctx.Logger.Error("failed to delete project", "id", id, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to delete project")
		return
	}

	broadcastContentChange(ctx, "projects")
	ctx.SetJSONStatus(http.StatusOK, "deleted")
}

func broadcastContentChange(ctx *middlewares.AppContext, table string) {
	if ctx.Hub != nil {
		ctx.Hub.Broadcast(realtime.EventContentChanged, map[string]string{"table": table})
	}
}

func wantsAll(ctx *middlewares.AppContext) bool {
	return ctx.Request.URL.Query().Get("all") == "1" && isAdminRequest(ctx)
}

func isAdminRequest(ctx *middlewares.AppContext) bool {
	user, ok := ctx.SessionManager.GetAuthenticatedUser(ctx)
	return ok && user.IsAdmin()
}
