package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_name"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_name"},
	)

	SettingsFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_settings_fetches_total",
			Help: "Total number of settings fetch-and-replace attempts",
		},
		[]string{"trigger", "result"},
	)

	SettingsFeedState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: Namespace + "_settings_feed_state",
			Help: "Change feed connection state (0 disconnected, 1 connecting, 2 subscribed, 3 error)",
		},
	)

	AuthLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_auth_logins_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	WebsocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: Namespace + "_websocket_clients",
			Help: "Current number of connected websocket clients",
		},
	)

	GeoLookupErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_geo_lookup_errors_total",
			Help: "Total number of failed geo lookup attempts",
		},
		[]string{"provider"},
	)
)
