package middlewares_test

import (
	"net/http"
	"testing"

	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/models"
	"codex-portfolio/internal/testutil"

	"go.uber.org/mock/gomock"
)

func TestMaintenanceGate_ShouldPassWhenMaintenanceOff(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/projects")
	defer tc.Finish()

	tc.MockSettings.EXPECT().Snapshot().Return(&models.SiteSettings{MaintenanceMode: false})

	rr, reached := serveThrough(tc, middlewares.MaintenanceGate)

	if !*reached {
		t.Error("inner handler should run when maintenance is off")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

func TestMaintenanceGate_ShouldBlockAnonymousDuringMaintenance(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/projects")
	defer tc.Finish()

	tc.MockSettings.EXPECT().Snapshot().Return(&models.SiteSettings{
		MaintenanceMode:    true,
		MaintenanceMessage: "Back soon",
	})
	tc.MockSession.EXPECT().GetAuthenticatedUser(gomock.Any()).Return(nil, false)

	rr, reached := serveThrough(tc, middlewares.MaintenanceGate)

	if *reached {
		t.Error("inner handler should not run during maintenance")
	}
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rr.Code)
	}
	if !contains(rr.Body.String(), "Back soon") {
		t.Errorf("expected maintenance message in body, got %s", rr.Body.String())
	}
}

func TestMaintenanceGate_ShouldLetAdminThroughDuringMaintenance(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/projects")
	defer tc.Finish()

	admin := &models.User{ID: "u1", Role: models.RoleAdmin}

	tc.MockSettings.EXPECT().Snapshot().Return(&models.SiteSettings{MaintenanceMode: true})
	tc.MockSession.EXPECT().GetAuthenticatedUser(gomock.Any()).Return(admin, true)

	rr, reached := serveThrough(tc, middlewares.MaintenanceGate)

	if !*reached {
		t.Error("admin should pass through the maintenance gate")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

func TestMaintenanceGate_ShouldPassWhenSnapshotMissing(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/projects")
	defer tc.Finish()

	tc.MockSettings.EXPECT().Snapshot().Return(nil)

	_, reached := serveThrough(tc, middlewares.MaintenanceGate)

	if !*reached {
		t.Error("inner handler should run when no snapshot exists yet")
	}
}
