package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"codex-portfolio/internal/config"
	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/models"
)

// NewBlackBoxProvider creates the auth-hub client used for the OAuth-style
// code exchange, profile verification, refresh, and server-side logout.
func NewBlackBoxProvider(cfg config.AuthHubConfig, logger *slog.Logger) middlewares.AuthProvider {
	return &BlackBoxProvider{
		cfg:    cfg,
		logger: logger,
		client: &http.Client{Timeout: time.Duration(cfg.RequestTimeout)},
	}
}

type BlackBoxProvider struct {
	cfg    config.AuthHubConfig
	logger *slog.Logger
	client *http.Client
}

// LoginURL builds the hub redirect URL. The return path rides in the state
// parameter; the hub echoes it back on the callback.
func (p *BlackBoxProvider) LoginURL(returnPath string, admin bool) string {
	loginPath := p.cfg.LoginPath
	if admin {
		loginPath = p.cfg.AdminLoginPath
	}

	params := url.Values{}
	params.Set("client_id", p.cfg.ClientID)
	params.Set("redirect_uri", p.cfg.RedirectURI)
	if returnPath != "" {
		params.Set("state", returnPath)
	}

	return p.cfg.BaseURL + loginPath + "?" + params.Encode()
}

type hubUser struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Role       string `json:"role"`
	BlackBoxID string `json:"blackbox_id"`
}

type tokenResponse struct {
	Success      bool     `json:"success"`
	User         *hubUser `json:"user"`
	AccessToken  string   `json:"access_token"`
	ExpiresIn    int64    `json:"expires_in"`
	RefreshToken string   `json:"refresh_token"`
	Error        string   `json:"error"`
}

// ExchangeCode posts the authorization code to the hub's token endpoint and
// normalizes the payload into a TokenGrant. Failures return a typed
// ExchangeError and leave no partial state behind.
func (p *BlackBoxProvider) ExchangeCode(ctx context.Context, code string) (*models.TokenGrant, error) {
	if code == "" {
		return nil, NewExchangeError("invalid_request", "no authorization code received")
	}

	body := map[string]string{
		"code":       code,
		"client_id":  p.cfg.ClientID,
		"grant_type": "authorization_code",
	}
	if p.cfg.ClientSecret != "" {
		body["client_secret"] = p.cfg.ClientSecret
	}

	var resp tokenResponse
	if err := p.postJSON(ctx, "/api/oauth/token", "", body, &resp); err != nil {
		return nil, NewExchangeError("auth_failed", "token endpoint unreachable: %v", err)
	}

	if !resp.Success || resp.User == nil || resp.AccessToken == "" {
		code := resp.Error
		if code == "" {
			code = "auth_failed"
		}
		return nil, NewExchangeError(code, "token exchange rejected by hub")
	}

	return &models.TokenGrant{
		User:         normalizeUser(resp.User),
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

// FetchProfile verifies the session against the hub. A nil error with a user
// means the token is still good; http 401 comes back as ErrSessionExpired so
// the caller can attempt a refresh.
func (p *BlackBoxProvider) FetchProfile(ctx context.Context, accessToken string) (*models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL+"/api/user/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return nil, ErrSessionExpired
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile endpoint returned status %d", res.StatusCode)
	}

	var payload struct {
		User *hubUser `json:"user"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}
	if payload.User == nil {
		return nil, fmt.Errorf("profile response missing user")
	}

	return normalizeUser(payload.User), nil
}

// Refresh exchanges the stored refresh token for a fresh access token.
func (p *BlackBoxProvider) Refresh(ctx context.Context, refreshToken string) (*models.TokenGrant, error) {
	if refreshToken == "" {
		return nil, ErrNoRefreshToken
	}

	body := map[string]string{
		"refresh_token": refreshToken,
		"client_id":     p.cfg.ClientID,
	}

	var resp tokenResponse
	if err := p.postJSON(ctx, "/api/user/refresh", "", body, &resp); err != nil {
		return nil, NewExchangeError("refresh_failed", "refresh endpoint unreachable: %v", err)
	}

	if !resp.Success || resp.AccessToken == "" {
		code := resp.Error
		if code == "" {
			code = "refresh_failed"
		}
		return nil, NewExchangeError(code, "refresh rejected by hub")
	}

	grant := &models.TokenGrant{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}
	if resp.User != nil {
		grant.User = normalizeUser(resp.User)
	}
	if grant.RefreshToken == "" {
		grant.RefreshToken = refreshToken
	}

	return grant, nil
}

// Logout invalidates the hub-side session. Best effort: callers proceed with
// local logout regardless of the result.
func (p *BlackBoxProvider) Logout(ctx context.Context, accessToken string) error {
	return p.postJSON(ctx, "/api/auth/logout", accessToken, map[string]string{}, nil)
}

func (p *BlackBoxProvider) postJSON(ctx context.Context, path, bearer string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	res, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer res.Body.Close()

	if out == nil {
		if res.StatusCode >= 400 {
			return fmt.Errorf("%s returned status %d", path, res.StatusCode)
		}
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

func normalizeUser(u *hubUser) *models.User {
	role := u.Role
	if role == "" {
		role = models.RoleEndUser
	}

	return &models.User{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       role,
		BlackBoxID: u.BlackBoxID,
	}
}
