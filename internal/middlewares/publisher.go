package middlewares

import "codex-portfolio/internal/models"

//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks

// Publisher fans events out to connected websocket clients.
type Publisher interface {
	Broadcast(eventType string, payload any)
	ClientCount() int
}

// SecurityRecorder persists audit events. Implementations must not block
// the request path.
type SecurityRecorder interface {
	Record(ctx *AppContext, eventType string, user *models.User, details string)
}
