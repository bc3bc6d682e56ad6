package handlers

import (
	"net/http"
	"testing"

	"codex-portfolio/internal/testutil"
)

func TestLoginHandler_ShouldShortCircuitWhenAlreadyAuthenticated(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/login")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsUserAuthenticated(tc.AppContext).Return(true)

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "ok")
}

func TestLoginHandler_ShouldReturnHubRedirectURL(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/login")
	defer tc.Finish()
	tc.WithQueryParam("rd", "/projects")

	tc.MockSession.EXPECT().IsUserAuthenticated(tc.AppContext).Return(false)
	tc.MockSession.EXPECT().SetRedirectAfterLogin(tc.AppContext, "/projects")
	tc.MockAuth.EXPECT().LoginURL("/projects", false).Return("https://hub.example.com/login?state=%2Fprojects")

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "redirect_required")
	tc.AssertJSONString(t, "redirect_url", "https://hub.example.com/login?state=%2Fprojects")
}

func TestLoginHandler_ShouldRejectCrossOriginRedirectTarget(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/login")
	defer tc.Finish()
	tc.WithQueryParam("rd", "https://evil.example.com/phish")

	tc.MockSession.EXPECT().IsUserAuthenticated(tc.AppContext).Return(false)
	tc.MockSession.EXPECT().SetRedirectAfterLogin(tc.AppContext, "/")
	tc.MockAuth.EXPECT().LoginURL("/", false).Return("https://hub.example.com/login")

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "redirect_required")
}

func TestLoginHandler_ShouldFallBackToRefererAndSkipErrorPage(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/login")
	defer tc.Finish()
	tc.WithHeader("Referer", "/error")

	tc.MockSession.EXPECT().IsUserAuthenticated(tc.AppContext).Return(false)
	tc.MockSession.EXPECT().SetRedirectAfterLogin(tc.AppContext, "/")
	tc.MockAuth.EXPECT().LoginURL("/", false).Return("https://hub.example.com/login")

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestLoginHandler_ShouldPreservePageFromAbsoluteReferer(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/login")
	defer tc.Finish()
	tc.WithHeader("Referer", "http://localhost:8080/projects?tab=archive")

	tc.MockSession.EXPECT().IsUserAuthenticated(tc.AppContext).Return(false)
	tc.MockSession.EXPECT().SetRedirectAfterLogin(tc.AppContext, "/projects?tab=archive")
	tc.MockAuth.EXPECT().LoginURL("/projects?tab=archive", false).Return("https://hub.example.com/login")

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "redirect_required")
}

func TestLoginHandler_ShouldUseAdminLoginPathWhenRequested(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/login")
	defer tc.Finish()
	tc.WithQueryParam("admin", "1")

	tc.MockSession.EXPECT().IsUserAuthenticated(tc.AppContext).Return(false)
	tc.MockSession.EXPECT().SetRedirectAfterLogin(tc.AppContext, "/")
	tc.MockAuth.EXPECT().LoginURL("/", true).Return("https://hub.example.com/child-admin/login")

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "redirect_url", "https://hub.example.com/child-admin/login")
}
