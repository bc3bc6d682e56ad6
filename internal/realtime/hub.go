package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"codex-portfolio/internal/metrics"
)

// Hub tracks the connected websocket clients and fans change events out to
// them. Clients are anonymous viewers; there is no per-user routing.
type Hub struct {
	logger *slog.Logger

	clients map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client

	seq atomic.Int64
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run owns the client set. Call it once in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	metrics.WebsocketClients.Set(float64(len(h.clients)))
	h.logger.Debug("websocket client connected", "id", client.id, "total", len(h.clients))
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		client.closeSend()
		metrics.WebsocketClients.Set(float64(len(h.clients)))
		h.logger.Debug("websocket client disconnected", "id", client.id, "total", len(h.clients))
	}
}

// Broadcast pushes an event to every connected client. Slow clients whose
// send buffer is full are dropped rather than allowed to stall the rest.
func (h *Hub) Broadcast(eventType string, payload any) {
	event := Event{Op: eventType, Seq: h.seq.Add(1), Payload: payload}

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal broadcast event", "op", eventType, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if !client.enqueue(data) {
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Shutdown closes every connection. The hub is unusable afterwards.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.closeSend()
	}
	h.clients = make(map[*Client]bool)
	metrics.WebsocketClients.Set(0)

	h.logger.Info("websocket hub shut down")
}
