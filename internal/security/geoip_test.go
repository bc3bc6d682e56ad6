package security

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"codex-portfolio/internal/cache"
	"codex-portfolio/internal/config"
)

func TestIsLocalIP(t *testing.T) {
	tests := []struct {
		ip    string
		local bool
	}{
		{"", true},
		{"localhost", true},
		{"127.0.0.1", true},
		{"::1", true},
		{"10.0.0.5", true},
		{"192.168.1.20", true},
		{"172.16.0.1", true},
		{"0.0.0.0", true},
		{"not-an-ip", true},
		{"8.8.8.8", false},
		{"203.0.113.7", false},
		{"2001:4860:4860::8888", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			if got := isLocalIP(tt.ip); got != tt.local {
				t.Errorf("isLocalIP(%q) = %v, want %v", tt.ip, got, tt.local)
			}
		})
	}
}

func TestGeoLookup_LocalIPShortCircuits(t *testing.T) {
	g := NewGeoLookup(config.SecurityConfig{LookupTimeout: config.Duration(time.Second)}, nil)

	if got := g.Locate(context.Background(), "192.168.1.20"); got != "Local" {
		t.Errorf("expected Local, got %s", got)
	}
}

func TestGeoLookup_FallsThroughFailedProviders(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer failing.Close()

	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","city":"Bangkok","country":"Thailand"}`))
	}))
	defer working.Close()

	g := NewGeoLookup(config.SecurityConfig{
		GeoProviders: []string{
			failing.URL + "/json/%s",
			working.URL + "/json/%s",
		},
		LookupTimeout: config.Duration(time.Second),
	}, nil)

	if got := g.Locate(context.Background(), "203.0.113.7"); got != "Bangkok, Thailand" {
		t.Errorf("expected second provider result, got %s", got)
	}
}

func TestGeoLookup_DegradesToUnknown(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail"}`))
	}))
	defer failing.Close()

	g := NewGeoLookup(config.SecurityConfig{
		GeoProviders:  []string{failing.URL + "/json/%s"},
		LookupTimeout: config.Duration(time.Second),
	}, nil)

	if got := g.Locate(context.Background(), "203.0.113.7"); got != "Unknown" {
		t.Errorf("expected Unknown, got %s", got)
	}
}

func TestGeoLookup_CachesRepeatLookups(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"city":"Bangkok","country_name":"Thailand"}`))
	}))
	defer ts.Close()

	keyCache := cache.NewMemCache(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	g := NewGeoLookup(config.SecurityConfig{
		GeoProviders:  []string{ts.URL + "/%s/json/"},
		LookupTimeout: config.Duration(time.Second),
	}, keyCache)

	for i := 0; i < 3; i++ {
		if got := g.Locate(context.Background(), "203.0.113.7"); got != "Bangkok, Thailand" {
			t.Fatalf("unexpected location %s", got)
		}
	}

	if calls.Load() != 1 {
		t.Errorf("expected a single upstream call for repeated lookups, got %d", calls.Load())
	}

	if cached, err := keyCache.GetKey(context.Background(), "geo:203.0.113.7"); err != nil || cached != "Bangkok, Thailand" {
		t.Errorf("expected location in the shared cache, got %q (%v)", cached, err)
	}
}

func TestProviderLabel(t *testing.T) {
	if got := providerLabel("http://ip-api.com/json/%s"); got != "ip-api.com" {
		t.Errorf("expected ip-api.com, got %s", got)
	}
	if got := providerLabel("not a url %s"); got != "unknown" {
		t.Errorf("expected unknown, got %s", got)
	}
}
