package auth

var (
	SessionKeyUserData           SessionKey = "user_data"
	SessionKeyAuthenticated      SessionKey = "authenticated"
	SessionKeyAccessToken        SessionKey = "access_token"
	SessionKeyRefreshToken       SessionKey = "refresh_token"
	SessionKeyTokenExpiry        SessionKey = "token_expiry"
	SessionKeyCreatedAt          SessionKey = "created_at"
	SessionKeyRedirectAfterLogin SessionKey = "redirect_after_login"
)
