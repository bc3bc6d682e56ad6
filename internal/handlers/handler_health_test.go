package handlers

import (
	"net/http"
	"testing"

	"codex-portfolio/internal/testutil"
)

func TestHandlerHealth(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/v1/health")
	defer tc.Finish()

	tc.CallHandler(HandlerHealth)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONString(t, "status", "OK")
}
