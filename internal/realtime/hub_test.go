package realtime

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_RegisterAndUnregister(t *testing.T) {
	h := newTestHub()
	go h.Run()

	client := &Client{hub: h, id: "c1", send: make(chan []byte, sendBufferSize)}
	h.register <- client

	waitForCount(t, h, 1)

	h.unregister <- client

	waitForCount(t, h, 0)
}

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	h := newTestHub()
	go h.Run()

	a := &Client{hub: h, id: "a", send: make(chan []byte, sendBufferSize)}
	b := &Client{hub: h, id: "b", send: make(chan []byte, sendBufferSize)}
	h.register <- a
	h.register <- b
	waitForCount(t, h, 2)

	h.Broadcast(EventSettingsChanged, map[string]string{"site_name": "CodeX"})

	for _, client := range []*Client{a, b} {
		select {
		case data := <-client.send:
			var event Event
			if err := json.Unmarshal(data, &event); err != nil {
				t.Fatalf("broadcast payload did not parse: %v", err)
			}
			if event.Op != EventSettingsChanged {
				t.Errorf("expected op %s, got %s", EventSettingsChanged, event.Op)
			}
			if event.Seq == 0 {
				t.Error("expected a non-zero sequence number")
			}
		case <-time.After(time.Second):
			t.Fatalf("client %s never received the broadcast", client.id)
		}
	}
}

func TestHub_BroadcastAssignsMonotonicSequence(t *testing.T) {
	h := newTestHub()
	go h.Run()

	client := &Client{hub: h, id: "c1", send: make(chan []byte, sendBufferSize)}
	h.register <- client
	waitForCount(t, h, 1)

	h.Broadcast(EventContentChanged, nil)
	h.Broadcast(EventContentChanged, nil)

	var last int64
	for i := 0; i < 2; i++ {
		select {
		case data := <-client.send:
			var event Event
			if err := json.Unmarshal(data, &event); err != nil {
				t.Fatalf("broadcast payload did not parse: %v", err)
			}
			if event.Seq <= last {
				t.Errorf("sequence did not increase: %d after %d", event.Seq, last)
			}
			last = event.Seq
		case <-time.After(time.Second):
			t.Fatal("missed a broadcast")
		}
	}
}

func TestHub_SlowClientGetsDropped(t *testing.T) {
	h := newTestHub()
	go h.Run()

	// A full buffer simulates a stalled reader.
	slow := &Client{hub: h, id: "slow", send: make(chan []byte)}
	h.register <- slow
	waitForCount(t, h, 1)

	h.Broadcast(EventSettingsChanged, nil)

	waitForCount(t, h, 0)
}

func TestHub_SendAfterEvictionDoesNotPanic(t *testing.T) {
	h := newTestHub()
	go h.Run()

	slow := &Client{hub: h, id: "slow", send: make(chan []byte, 1)}
	h.register <- slow
	waitForCount(t, h, 1)

	// Fill the buffer so the next broadcast evicts the client.
	slow.send <- []byte("stalled")

	h.Broadcast(EventContentChanged, nil)
	waitForCount(t, h, 0)

	// A heartbeat ack racing the eviction must be dropped, not crash the
	// process with a send on the closed channel.
	slow.sendEvent(Event{Op: OpHeartbeatAck})

	if slow.enqueue([]byte("late")) {
		t.Error("expected enqueue to report the client as closed")
	}
}

func TestHub_ShutdownClearsClients(t *testing.T) {
	h := newTestHub()
	go h.Run()

	client := &Client{hub: h, id: "c1", send: make(chan []byte, sendBufferSize)}
	h.register <- client
	waitForCount(t, h, 1)

	h.Shutdown()

	if got := h.ClientCount(); got != 0 {
		t.Errorf("expected no clients after shutdown, got %d", got)
	}
	if _, open := <-client.send; open {
		t.Error("expected client send channel to be closed")
	}
}

func waitForCount(t *testing.T, h *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client count never reached %d (at %d)", want, h.ClientCount())
}
