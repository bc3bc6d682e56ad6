package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codex-portfolio/internal/models"
	"codex-portfolio/internal/realtime"
	"codex-portfolio/internal/storage"
	"codex-portfolio/internal/testutil"

	"github.com/go-chi/chi/v5"
)

// withURLParam injects a chi route parameter the way the router would.
func withURLParam(tc *testutil.TestContext, key, value string) {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	req := tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, rctx))
	tc.WithRequest(req)
}

func TestGETProjectsHandler_ShouldOnlyListVisibleForAnonymous(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/projects")
	defer tc.Finish()

	projects := []*models.Project{{ID: "p1", Title: "Portfolio", IsVisible: true}}

	tc.MockStorage.EXPECT().ListProjects(tc.AppContext, true).Return(projects, nil)

	tc.CallHandler(GETProjectsHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONArrayLength(t, 1)
}

func TestGETProjectsHandler_ShouldIncludeHiddenForAdmin(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/projects")
	defer tc.Finish()
	tc.WithQueryParam("all", "1")

	admin := &models.User{ID: "u1", Role: models.RoleAdmin}

	tc.MockSession.EXPECT().GetAuthenticatedUser(tc.AppContext).Return(admin, true)
	tc.MockStorage.EXPECT().ListProjects(tc.AppContext, false).Return([]*models.Project{}, nil)

	tc.CallHandler(GETProjectsHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestGETProjectsHandler_ShouldIgnoreAllFlagForNonAdmin(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/projects")
	defer tc.Finish()
	tc.WithQueryParam("all", "1")

	tc.MockSession.EXPECT().GetAuthenticatedUser(tc.AppContext).Return(nil, false)
	tc.MockStorage.EXPECT().ListProjects(tc.AppContext, true).Return([]*models.Project{}, nil)

	tc.CallHandler(GETProjectsHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestGETProjectHandler_ShouldReturnNotFoundForMissingProject(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/projects/missing")
	defer tc.Finish()
	withURLParam(tc, "id", "missing")

	tc.MockStorage.EXPECT().GetProjectByID(tc.AppContext, "missing").Return(nil, storage.ErrNotFound)

	tc.CallHandler(GETProjectHandler)

	tc.AssertStatus(t, http.StatusNotFound)
	tc.AssertJSONString(t, "error", "project not found")
}

func TestGETProjectHandler_ShouldHideInvisibleProjectFromAnonymous(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/projects/p1")
	defer tc.Finish()
	withURLParam(tc, "id", "p1")

	hidden := &models.Project{ID: "p1", Title: "WIP", IsVisible: false}

	tc.MockStorage.EXPECT().GetProjectByID(tc.AppContext, "p1").Return(hidden, nil)
	tc.MockSession.EXPECT().GetAuthenticatedUser(tc.AppContext).Return(nil, false)

	tc.CallHandler(GETProjectHandler)

	tc.AssertStatus(t, http.StatusNotFound)
}

func TestPOSTProjectHandler_ShouldRequireTitle(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/projects")
	defer tc.Finish()
	tc.WithRequest(httptest.NewRequest("POST", "/api/projects", strings.NewReader(`{"description":"no title"}`)))

	tc.CallHandler(POSTProjectHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONString(t, "error", "title is required")
}

func TestPOSTProjectHandler_ShouldCreateAndBroadcast(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/projects")
	defer tc.Finish()
	tc.WithRequest(httptest.NewRequest("POST", "/api/projects", strings.NewReader(`{"title":"Portfolio","is_visible":true}`)))

	created := &models.Project{ID: "p1", Title: "Portfolio", IsVisible: true}

	tc.MockStorage.EXPECT().
		CreateProject(tc.AppContext, &models.Project{Title: "Portfolio", IsVisible: true}).
		Return(created, nil)
	tc.MockHub.EXPECT().Broadcast(realtime.EventContentChanged, map[string]string{"table": "projects"})

	tc.CallHandler(POSTProjectHandler)

	tc.AssertStatus(t, http.StatusCreated)
	tc.AssertJSONString(t, "id", "p1")
}

func TestDELETEProjectHandler_ShouldBroadcastAfterDelete(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "DELETE", "/api/projects/p1")
	defer tc.Finish()
	withURLParam(tc, "id", "p1")

	tc.MockStorage.EXPECT().DeleteProject(tc.AppContext, "p1").Return(nil)
	tc.MockHub.EXPECT().Broadcast(realtime.EventContentChanged, map[string]string{"table": "projects"})

	tc.CallHandler(DELETEProjectHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "deleted")
}

func TestDELETEProjectHandler_ShouldReturnNotFoundForMissingProject(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "DELETE", "/api/projects/missing")
	defer tc.Finish()
	withURLParam(tc, "id", "missing")

	tc.MockStorage.EXPECT().DeleteProject(tc.AppContext, "missing").Return(storage.ErrNotFound)

	tc.CallHandler(DELETEProjectHandler)

	tc.AssertStatus(t, http.StatusNotFound)
}
