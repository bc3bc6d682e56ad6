package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/models"
	"codex-portfolio/internal/testutil"

	"go.uber.org/mock/gomock"
)

// serveThrough runs a request through the app-context injector and the
// middleware under test, recording whether the inner handler was reached.
func serveThrough(tc *testutil.TestContext, mw func(http.Handler) http.Handler) (*httptest.ResponseRecorder, *bool) {
	reached := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	handler := middlewares.AppContextMiddleware(tc.AppContext)(mw(inner))
	handler.ServeHTTP(rr, tc.Request)
	return rr, &reached
}

func TestRequireAuth_ShouldRejectAnonymousWithLoginURL(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/projects")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetAuthenticatedUser(gomock.Any()).Return(nil, false)

	rr, reached := serveThrough(tc, middlewares.RequireAuth)

	if *reached {
		t.Error("inner handler should not run for anonymous request")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
	if body := rr.Body.String(); !contains(body, "/api/auth/login") {
		t.Errorf("expected login_url in body, got %s", body)
	}
}

func TestRequireAuth_ShouldPassAuthenticatedUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/projects")
	defer tc.Finish()

	user := &models.User{ID: "u1", Username: "steve", Role: models.RoleEndUser}
	tc.MockSession.EXPECT().GetAuthenticatedUser(gomock.Any()).Return(user, true)

	rr, reached := serveThrough(tc, middlewares.RequireAuth)

	if !*reached {
		t.Error("inner handler should run for authenticated request")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

func TestRequireRole_ShouldReturnTerminalForbiddenForWrongRole(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "PUT", "/api/settings")
	defer tc.Finish()

	user := &models.User{ID: "u1", Username: "steve", Role: models.RoleEndUser}
	tc.MockSession.EXPECT().GetAuthenticatedUser(gomock.Any()).Return(user, true)
	tc.MockSecurity.EXPECT().Record(gomock.Any(), models.SecurityEventAccessDenied, user, "/api/settings")

	rr, reached := serveThrough(tc, middlewares.RequireRole(models.RoleAdmin))

	if *reached {
		t.Error("inner handler should not run for wrong role")
	}
	if rr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rr.Code)
	}
	if body := rr.Body.String(); contains(body, "login_url") {
		t.Errorf("forbidden response must not offer a login redirect, got %s", body)
	}
}

func TestRequireRole_ShouldRejectAnonymousWithUnauthorized(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "PUT", "/api/settings")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetAuthenticatedUser(gomock.Any()).Return(nil, false)

	rr, reached := serveThrough(tc, middlewares.RequireRole(models.RoleAdmin))

	if *reached {
		t.Error("inner handler should not run for anonymous request")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestRequireRole_ShouldPassMatchingRole(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "PUT", "/api/settings")
	defer tc.Finish()

	admin := &models.User{ID: "u1", Username: "steve", Role: models.RoleAdmin}
	tc.MockSession.EXPECT().GetAuthenticatedUser(gomock.Any()).Return(admin, true)

	rr, reached := serveThrough(tc, middlewares.RequireRole(models.RoleAdmin))

	if !*reached {
		t.Error("inner handler should run for admin")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

func TestOptionalAuth_ShouldNeverReject(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/settings")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetAuthenticatedUser(gomock.Any()).Return(nil, false)

	rr, reached := serveThrough(tc, middlewares.OptionalAuth)

	if !*reached {
		t.Error("inner handler should always run behind OptionalAuth")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
