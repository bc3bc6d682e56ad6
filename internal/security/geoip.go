package security

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"codex-portfolio/internal/cache"
	"codex-portfolio/internal/config"
	"codex-portfolio/internal/metrics"
)

// GeoLookup resolves an IP to a coarse "City, Country" string by trying the
// configured providers in order. Lookups degrade to "Unknown" rather than
// fail: audit records are written regardless of geo availability. Resolved
// locations are kept in the shared cache so repeated events from the same
// address do not hit the providers again.
type GeoLookup struct {
	cfg    config.SecurityConfig
	cache  cache.Provider
	client *http.Client
}

const geoCacheDuration = 5 * time.Minute

func NewGeoLookup(cfg config.SecurityConfig, cacheProvider cache.Provider) *GeoLookup {
	return &GeoLookup{
		cfg:    cfg,
		cache:  cacheProvider,
		client: &http.Client{Timeout: time.Duration(cfg.LookupTimeout)},
	}
}

// geoResponse covers the field variants of the supported providers.
type geoResponse struct {
	Status      string `json:"status"`
	Success     *bool  `json:"success"`
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryName string `json:"country_name"`
}

func (g *GeoLookup) Locate(ctx context.Context, ip string) string {
	if isLocalIP(ip) {
		return "Local"
	}

	cacheKey := "geo:" + ip
	if g.cache != nil {
		if location, err := g.cache.GetKey(ctx, cacheKey); err == nil {
			return location
		}
	}

	for _, provider := range g.cfg.GeoProviders {
		location, err := g.tryProvider(ctx, provider, ip)
		if err != nil {
			metrics.GeoLookupErrors.WithLabelValues(providerLabel(provider)).Inc()
			continue
		}

		if g.cache != nil {
			_ = g.cache.SetKey(ctx, cacheKey, location, geoCacheDuration)
		}

		return location
	}

	return "Unknown"
}

func (g *GeoLookup) tryProvider(ctx context.Context, providerFormat, ip string) (string, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.LookupTimeout))
	defer cancel()

	url := fmt.Sprintf(providerFormat, ip)

	req, err := http.NewRequestWithContext(lookupCtx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	res, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geo provider returned status %d", res.StatusCode)
	}

	var payload geoResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", err
	}

	if payload.Status != "" && payload.Status != "success" {
		return "", fmt.Errorf("geo provider reported status %q", payload.Status)
	}
	if payload.Success != nil && !*payload.Success {
		return "", fmt.Errorf("geo provider reported failure")
	}

	country := payload.Country
	if country == "" {
		country = payload.CountryName
	}

	if payload.City == "" || country == "" {
		return "", fmt.Errorf("geo provider returned incomplete location")
	}

	return payload.City + ", " + country, nil
}

func isLocalIP(ip string) bool {
	if ip == "" || ip == "localhost" {
		return true
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return true
	}

	return parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified()
}

// providerLabel reduces a provider format string to its hostname for use as
// a metric label.
func providerLabel(providerFormat string) string {
	parsed, err := url.Parse(fmt.Sprintf(providerFormat, "0.0.0.0"))
	if err != nil || parsed.Host == "" {
		return "unknown"
	}
	return parsed.Host
}
