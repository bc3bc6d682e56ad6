package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"codex-portfolio/internal/auth"
	"codex-portfolio/internal/models"
	"codex-portfolio/internal/testutil"

	"go.uber.org/mock/gomock"
)

func TestCallbackHandler_ShouldRedirectToErrorPageOnHubError(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/callback")
	defer tc.Finish()
	tc.WithQueryParam("error", "access_denied")
	tc.WithQueryParam("error_description", "user cancelled")

	tc.MockSecurity.EXPECT().Record(tc.AppContext, models.SecurityEventLoginFailed, nil, "access_denied")

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	if got := tc.Response.Header().Get("Location"); got != "/login?error=access_denied" {
		t.Errorf("expected redirect to the login page, got %s", got)
	}
}

func TestCallbackHandler_ShouldNeverRedirectBackToItsOwnRoute(t *testing.T) {
	// Redirecting a failure to /callback would bounce the browser straight
	// back into this handler forever.
	tc := testutil.NewTestContextWithURL(t, "GET", "/callback")
	defer tc.Finish()
	tc.WithQueryParam("error", "access_denied")

	tc.MockSecurity.EXPECT().Record(tc.AppContext, models.SecurityEventLoginFailed, nil, "access_denied")

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	location := tc.Response.Header().Get("Location")
	if parsed, err := url.Parse(location); err != nil || parsed.Path == "/callback" {
		t.Errorf("failure redirect must leave the callback route, got %s", location)
	}
}

func TestCallbackHandler_ShouldRedirectWithExchangeErrorCode(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/callback")
	defer tc.Finish()
	tc.WithQueryParam("code", "stale")

	tc.MockAuth.EXPECT().ExchangeCode(tc.AppContext, "stale").Return(nil, auth.NewExchangeError("invalid_grant", "token exchange rejected by hub"))
	tc.MockSecurity.EXPECT().Record(tc.AppContext, models.SecurityEventLoginFailed, nil, gomock.Any())

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	if got := tc.Response.Header().Get("Location"); got != "/login?error=invalid_grant" {
		t.Errorf("expected exchange error code in redirect, got %s", got)
	}
}

func TestCallbackHandler_ShouldInstallSessionAndRedirectToStatePath(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/callback")
	defer tc.Finish()
	tc.WithQueryParam("code", "abc123")
	tc.WithQueryParam("state", "/projects")

	hubUser := &models.User{ID: "u1", Username: "steve", Email: "steve@example.com", Role: models.RoleAdmin}
	grant := &models.TokenGrant{User: hubUser, AccessToken: "at", RefreshToken: "rt", ExpiresIn: 3600}
	storedUser := &models.User{ID: "u1", Username: "steve", Email: "steve@example.com", Role: models.RoleAdmin}

	tc.MockAuth.EXPECT().ExchangeCode(tc.AppContext, "abc123").Return(grant, nil)
	tc.MockSession.EXPECT().RenewToken(tc.AppContext).Return(nil)
	tc.MockSession.EXPECT().CreateSessionFromGrant(tc.AppContext, grant).Return(nil)
	tc.MockStorage.EXPECT().UpsertUser(tc.AppContext, hubUser).Return(storedUser, nil)
	tc.MockSession.EXPECT().SetUser(tc.AppContext, storedUser)
	tc.MockSecurity.EXPECT().Record(tc.AppContext, models.SecurityEventLoginSuccess, hubUser, "")
	tc.MockSession.EXPECT().ConsumeRedirectAfterLogin(tc.AppContext).Return("")

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	if got := tc.Response.Header().Get("Location"); got != "/projects" {
		t.Errorf("expected redirect to /projects, got %s", got)
	}
}

func TestCallbackHandler_ShouldFallBackToStoredRedirectWhenStateEmpty(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/callback")
	defer tc.Finish()
	tc.WithQueryParam("code", "abc123")

	hubUser := &models.User{ID: "u1", Username: "steve", Role: models.RoleEndUser}
	grant := &models.TokenGrant{User: hubUser, AccessToken: "at", ExpiresIn: 3600}

	tc.MockAuth.EXPECT().ExchangeCode(tc.AppContext, "abc123").Return(grant, nil)
	tc.MockSession.EXPECT().RenewToken(tc.AppContext).Return(nil)
	tc.MockSession.EXPECT().CreateSessionFromGrant(tc.AppContext, grant).Return(nil)
	tc.MockStorage.EXPECT().UpsertUser(tc.AppContext, hubUser).Return(hubUser, nil)
	tc.MockSession.EXPECT().SetUser(tc.AppContext, hubUser)
	tc.MockSecurity.EXPECT().Record(tc.AppContext, models.SecurityEventLoginSuccess, hubUser, "")
	tc.MockSession.EXPECT().ConsumeRedirectAfterLogin(tc.AppContext).Return("/admin")

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	if got := tc.Response.Header().Get("Location"); got != "/admin" {
		t.Errorf("expected redirect to stored path, got %s", got)
	}
}

func TestCallbackHandler_ShouldNeverRedirectOffsiteFromState(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/callback")
	defer tc.Finish()
	tc.WithQueryParam("code", "abc123")
	tc.WithQueryParam("state", "https://evil.example.com/phish")

	hubUser := &models.User{ID: "u1", Username: "steve", Role: models.RoleEndUser}
	grant := &models.TokenGrant{User: hubUser, AccessToken: "at", ExpiresIn: 3600}

	tc.MockAuth.EXPECT().ExchangeCode(tc.AppContext, "abc123").Return(grant, nil)
	tc.MockSession.EXPECT().RenewToken(tc.AppContext).Return(nil)
	tc.MockSession.EXPECT().CreateSessionFromGrant(tc.AppContext, grant).Return(nil)
	tc.MockStorage.EXPECT().UpsertUser(tc.AppContext, hubUser).Return(hubUser, nil)
	tc.MockSession.EXPECT().SetUser(tc.AppContext, hubUser)
	tc.MockSecurity.EXPECT().Record(tc.AppContext, models.SecurityEventLoginSuccess, hubUser, "")
	tc.MockSession.EXPECT().ConsumeRedirectAfterLogin(tc.AppContext).Return("")

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	if got := tc.Response.Header().Get("Location"); got != "/" {
		t.Errorf("expected cross-origin state to collapse to root, got %s", got)
	}
}

func TestCallbackHandler_ShouldSucceedEvenWhenUserPersistenceFails(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/callback")
	defer tc.Finish()
	tc.WithQueryParam("code", "abc123")

	hubUser := &models.User{ID: "u1", Username: "steve", Role: models.RoleEndUser}
	grant := &models.TokenGrant{User: hubUser, AccessToken: "at", ExpiresIn: 3600}

	tc.MockAuth.EXPECT().ExchangeCode(tc.AppContext, "abc123").Return(grant, nil)
	tc.MockSession.EXPECT().RenewToken(tc.AppContext).Return(nil)
	tc.MockSession.EXPECT().CreateSessionFromGrant(tc.AppContext, grant).Return(nil)
	tc.MockStorage.EXPECT().UpsertUser(tc.AppContext, hubUser).Return(nil, errDatabase)
	tc.MockSecurity.EXPECT().Record(tc.AppContext, models.SecurityEventLoginSuccess, hubUser, "")
	tc.MockSession.EXPECT().ConsumeRedirectAfterLogin(tc.AppContext).Return("")

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	if got := tc.Response.Header().Get("Location"); got != "/" {
		t.Errorf("expected redirect to root, got %s", got)
	}
}
