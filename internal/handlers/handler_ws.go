package handlers

import (
	"net/http"
	"slices"

	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/realtime"

	"github.com/gorilla/websocket"
)

// GETWebsocketHandler upgrades the connection and subscribes the client to
// change events. Origin is checked against the CORS allowlist since the
// browser's SOP does not apply to websockets.
func GETWebsocketHandler(hub *realtime.Hub) middlewares.AppHandler {
	return func(ctx *middlewares.AppContext) {
		upgrader := &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				allowed := ctx.Config.CORS.AllowedOrigins
				return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
			},
		}

		if err := hub.Serve(ctx.Response, ctx.Request, upgrader); err != nil {
			ctx.Logger.Debug("websocket upgrade failed", "error", err)
		}
	}
}
