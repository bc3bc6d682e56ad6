package handlers

import (
	"errors"
	"net/http"
	"testing"

	"codex-portfolio/internal/models"
	"codex-portfolio/internal/testutil"
)

func TestLogoutHandler_ShouldClearSessionAndNotifyHub(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	user := &models.User{ID: "u1", Username: "steve"}

	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(user, true)
	tc.MockSession.EXPECT().GetAccessToken(tc.AppContext).Return("at")
	tc.MockAuth.EXPECT().Logout(tc.AppContext, "at").Return(nil)
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(nil)
	tc.MockSecurity.EXPECT().Record(tc.AppContext, models.SecurityEventLogout, user, "")

	tc.CallHandler(LogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "OK")
}

func TestLogoutHandler_ShouldSucceedWhenHubLogoutFails(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	user := &models.User{ID: "u1", Username: "steve"}

	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(user, true)
	tc.MockSession.EXPECT().GetAccessToken(tc.AppContext).Return("at")
	tc.MockAuth.EXPECT().Logout(tc.AppContext, "at").Return(errors.New("hub unreachable"))
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(nil)
	tc.MockSecurity.EXPECT().Record(tc.AppContext, models.SecurityEventLogout, user, "")

	tc.CallHandler(LogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestLogoutHandler_ShouldSkipHubWithoutAccessToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(nil, false)
	tc.MockSession.EXPECT().GetAccessToken(tc.AppContext).Return("")
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(nil)

	tc.CallHandler(LogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestLogoutHandler_ShouldReturnErrorWhenSessionDestroyFails(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	user := &models.User{ID: "u1", Username: "steve"}

	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(user, true)
	tc.MockSession.EXPECT().GetAccessToken(tc.AppContext).Return("")
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(errors.New("store unavailable"))

	tc.CallHandler(LogoutHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertJSONString(t, "error", "Failed to logout")
}
