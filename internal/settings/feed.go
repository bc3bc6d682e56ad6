package settings

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"codex-portfolio/internal/metrics"

	"github.com/gorilla/websocket"
)

// Feed connection states. The state machine is explicit so the status is
// always reportable and transitions are auditable in the logs.
const (
	FeedStateDisconnected = "disconnected"
	FeedStateConnecting   = "connecting"
	FeedStateSubscribed   = "subscribed"
	FeedStateError        = "error"
)

var feedStateGaugeValue = map[string]float64{
	FeedStateDisconnected: 0,
	FeedStateConnecting:   1,
	FeedStateSubscribed:   2,
	FeedStateError:        3,
}

// ChangeFeed is the push channel for upstream settings changes. The bridge
// only cares about being told "something changed"; the payload is advisory.
type ChangeFeed interface {
	Run(ctx context.Context)
	State() string
}

// NoopFeed is used when no feed URL is configured. The poll backstop carries
// the full load.
type NoopFeed struct{}

func (NoopFeed) Run(ctx context.Context) { <-ctx.Done() }
func (NoopFeed) State() string           { return FeedStateDisconnected }

// WebsocketFeed subscribes to a change-feed endpoint and triggers a bridge
// refresh on every change notification. Messages never carry authoritative
// data: a notification only schedules a fetch, so a missed or duplicated
// message costs at most one poll interval of staleness.
type WebsocketFeed struct {
	logger *slog.Logger
	url    string
	bridge *Bridge

	mu    sync.RWMutex
	state string

	dialer *websocket.Dialer
}

func NewWebsocketFeed(logger *slog.Logger, url string, bridge *Bridge) *WebsocketFeed {
	return &WebsocketFeed{
		logger: logger,
		url:    url,
		bridge: bridge,
		state:  FeedStateDisconnected,
		dialer: &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
}

func (f *WebsocketFeed) State() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.state
}

func (f *WebsocketFeed) setState(state string) {
	f.mu.Lock()
	f.state = state
	f.mu.Unlock()

	metrics.SettingsFeedState.Set(feedStateGaugeValue[state])
}

// Run reconnects with capped exponential backoff until ctx is cancelled.
func (f *WebsocketFeed) Run(ctx context.Context) {
	backoff := time.Second

	for {
		if ctx.Err() != nil {
			f.setState(FeedStateDisconnected)
			return
		}

		f.setState(FeedStateConnecting)

		conn, _, err := f.dialer.DialContext(ctx, f.url, nil)
		if err != nil {
			f.setState(FeedStateError)
			f.logger.Warn("change feed connect failed", "url", f.url, "backoff", backoff, "error", err)

			select {
			case <-ctx.Done():
				f.setState(FeedStateDisconnected)
				return
			case <-time.After(backoff):
			}

			backoff = min(backoff*2, 30*time.Second)
			continue
		}

		f.setState(FeedStateSubscribed)
		f.logger.Info("change feed subscribed", "url", f.url)
		backoff = time.Second

		f.readLoop(ctx, conn)
	}
}

func (f *WebsocketFeed) readLoop(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	// The watcher must not outlive this connection: a reconnecting feed
	// would otherwise accumulate one goroutine per attempt.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				f.setState(FeedStateError)
				f.logger.Warn("change feed read failed", "error", err)
			}
			return
		}

		var msg struct {
			Table string `json:"table"`
			Event string `json:"event"`
		}
		if err := json.Unmarshal(raw, &msg); err != nil {
			f.logger.Debug("unparseable change feed message", "error", err)
			continue
		}

		if msg.Table != "" && msg.Table != "site_settings" {
			continue
		}

		if err := f.bridge.Refresh(ctx, metrics.FetchTriggerPush); err != nil {
			f.logger.Error("settings refresh failed", "trigger", "push", "error", err)
		}
	}
}
