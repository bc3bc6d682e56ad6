package realtime

// Op codes sent over the websocket. Clients only ever send Heartbeat; the
// server pushes change events.
const (
	OpHeartbeat    = "heartbeat"
	OpHeartbeatAck = "heartbeat_ack"
	OpSubscribed   = "subscribed"

	EventSettingsChanged = "settings_changed"
	EventContentChanged  = "content_changed"
)

type Event struct {
	Op      string `json:"op"`
	Seq     int64  `json:"seq,omitempty"`
	Payload any    `json:"payload,omitempty"`
}
