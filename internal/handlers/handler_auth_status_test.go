package handlers

import (
	"errors"
	"net/http"
	"testing"

	"codex-portfolio/internal/auth"
	"codex-portfolio/internal/models"
	"codex-portfolio/internal/testutil"
)

func TestAuthStatusHandler_ShouldReturnUnauthorizedForAnonymousUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)

	tc.CallHandler(AuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONBool(t, "authenticated", false)
	tc.AssertJSONString(t, "login_url", "/api/auth/login")
}

func TestAuthStatusHandler_ShouldReturnUnauthorizedWhenSessionUserMissing(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(nil, false)

	tc.CallHandler(AuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONBool(t, "authenticated", false)
}

func TestAuthStatusHandler_ShouldVerifyProfileForValidToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	sessionUser := &models.User{ID: "u1", Username: "steve", Role: models.RoleEndUser}
	hubUser := &models.User{ID: "u1", Username: "steve", Role: models.RoleAdmin}

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(sessionUser, true)
	tc.MockSession.EXPECT().IsTokenExpired(tc.AppContext).Return(false)
	tc.MockSession.EXPECT().GetAccessToken(tc.AppContext).Return("at")
	tc.MockAuth.EXPECT().FetchProfile(tc.AppContext, "at").Return(hubUser, nil)
	tc.MockSession.EXPECT().SetUser(tc.AppContext, hubUser)

	tc.CallHandler(AuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", true)
	tc.AssertJSONObject(t, "user", map[string]interface{}{"username": "steve", "role": models.RoleAdmin})
}

func TestAuthStatusHandler_ShouldServeSessionUserWhenHubUnreachable(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	sessionUser := &models.User{ID: "u1", Username: "steve"}

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(sessionUser, true)
	tc.MockSession.EXPECT().IsTokenExpired(tc.AppContext).Return(false)
	tc.MockSession.EXPECT().GetAccessToken(tc.AppContext).Return("at")
	tc.MockAuth.EXPECT().FetchProfile(tc.AppContext, "at").Return(nil, errors.New("dial tcp: connection refused"))

	tc.CallHandler(AuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", true)
	tc.AssertJSONObject(t, "user", map[string]interface{}{"username": "steve"})
}

func TestAuthStatusHandler_ShouldRefreshWhenHubRevokedToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	sessionUser := &models.User{ID: "u1", Username: "steve"}
	grant := &models.TokenGrant{
		User:         &models.User{ID: "u1", Username: "steve", Role: models.RoleEndUser},
		AccessToken:  "at2",
		RefreshToken: "rt2",
		ExpiresIn:    3600,
	}

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(sessionUser, true)
	tc.MockSession.EXPECT().IsTokenExpired(tc.AppContext).Return(false)
	tc.MockSession.EXPECT().GetAccessToken(tc.AppContext).Return("at")
	tc.MockAuth.EXPECT().FetchProfile(tc.AppContext, "at").Return(nil, auth.ErrSessionExpired)
	tc.MockSession.EXPECT().GetRefreshToken(tc.AppContext).Return("rt")
	tc.MockAuth.EXPECT().Refresh(tc.AppContext, "rt").Return(grant, nil)
	tc.MockSession.EXPECT().UpdateTokens(tc.AppContext, grant)

	tc.CallHandler(AuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", true)
}

func TestAuthStatusHandler_ShouldClearSessionWhenRefreshFails(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	sessionUser := &models.User{ID: "u1", Username: "steve"}

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(sessionUser, true)
	tc.MockSession.EXPECT().IsTokenExpired(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetRefreshToken(tc.AppContext).Return("rt")
	tc.MockAuth.EXPECT().Refresh(tc.AppContext, "rt").Return(nil, auth.NewExchangeError("invalid_grant", "refresh rejected by hub"))
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(nil)

	tc.CallHandler(AuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONBool(t, "authenticated", false)
	tc.AssertJSONString(t, "login_url", "/api/auth/login")
}

func TestAuthStatusHandler_ShouldClearSessionWhenNoRefreshToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	sessionUser := &models.User{ID: "u1", Username: "steve"}

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(sessionUser, true)
	tc.MockSession.EXPECT().IsTokenExpired(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetRefreshToken(tc.AppContext).Return("")
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(nil)

	tc.CallHandler(AuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONBool(t, "authenticated", false)
}
