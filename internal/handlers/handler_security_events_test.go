package handlers

import (
	"net/http"
	"testing"

	"codex-portfolio/internal/models"
	"codex-portfolio/internal/testutil"
)

func TestSecurityEventsHandler_ShouldDefaultToFiftyEvents(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/security/events")
	defer tc.Finish()

	events := []*models.SecurityEvent{{ID: 1, EventType: models.SecurityEventLoginSuccess}}

	tc.MockStorage.EXPECT().GetRecentSecurityEvents(tc.AppContext, 50).Return(events, nil)

	tc.CallHandler(GETSecurityEventsHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONArrayLength(t, 1)
}

func TestSecurityEventsHandler_ShouldHonorExplicitLimit(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/security/events")
	defer tc.Finish()
	tc.WithQueryParam("limit", "10")

	tc.MockStorage.EXPECT().GetRecentSecurityEvents(tc.AppContext, 10).Return([]*models.SecurityEvent{}, nil)

	tc.CallHandler(GETSecurityEventsHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestSecurityEventsHandler_ShouldRejectInvalidLimit(t *testing.T) {
	for _, limit := range []string{"0", "-5", "501", "abc"} {
		tc := testutil.NewTestContextWithURL(t, "GET", "/api/security/events")
		tc.WithQueryParam("limit", limit)

		tc.CallHandler(GETSecurityEventsHandler)

		tc.AssertStatus(t, http.StatusBadRequest)
		tc.AssertJSONString(t, "error", "invalid limit")
		tc.Finish()
	}
}

func TestSecurityEventsHandler_ShouldSurfaceStorageFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/security/events")
	defer tc.Finish()

	tc.MockStorage.EXPECT().GetRecentSecurityEvents(tc.AppContext, 50).Return(nil, errDatabase)

	tc.CallHandler(GETSecurityEventsHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
}
