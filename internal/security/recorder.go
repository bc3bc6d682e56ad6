package security

import (
	"context"
	"log/slog"
	"net"
	"time"

	"codex-portfolio/internal/cache"
	"codex-portfolio/internal/config"
	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/models"
	"codex-portfolio/internal/storage"
)

// Recorder writes audit events. The geo lookup and the insert run off the
// request goroutine so a slow provider never delays a response.
type Recorder struct {
	logger  *slog.Logger
	storage storage.Provider
	geo     *GeoLookup
}

func NewRecorder(logger *slog.Logger, cfg config.SecurityConfig, storageProvider storage.Provider, cacheProvider cache.Provider) *Recorder {
	return &Recorder{
		logger:  logger,
		storage: storageProvider,
		geo:     NewGeoLookup(cfg, cacheProvider),
	}
}

func (rec *Recorder) Record(ctx *middlewares.AppContext, eventType string, user *models.User, details string) {
	userAgent := ctx.Request.UserAgent()
	device, browser := ParseUserAgent(userAgent)

	ip := clientIP(ctx.Request.RemoteAddr)
	path := ctx.Request.URL.Path

	event := models.SecurityEvent{
		EventType: eventType,
		IPAddress: ip,
		Device:    device,
		Browser:   browser,
		UserAgent: userAgent,
		Path:      path,
		Detail:    details,
		CreatedAt: time.Now(),
	}
	if user != nil {
		event.UserID = user.ID
		event.Username = user.Username
	}

	go func() {
		writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		event.Location = rec.geo.Locate(writeCtx, ip)

		if _, err := rec.storage.InsertSecurityEvent(writeCtx, &event); err != nil {
			rec.logger.Error("failed to record security event", "type", eventType, "error", err)
			return
		}

		rec.logger.Info("security event recorded",
			"type", eventType,
			"ip", ip,
			"location", event.Location,
			"path", path)
	}()
}

func clientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
