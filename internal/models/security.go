package models

import "time"

const (
	SecurityEventLoginSuccess = "login_success"
	SecurityEventLoginFailed  = "login_failed"
	SecurityEventAccessDenied = "access_denied"
	SecurityEventLogout       = "logout"
)

// SecurityEvent is an audit record of an authentication-relevant action.
type SecurityEvent struct {
	ID        int64     `json:"id"`
	EventType string    `json:"event_type"`
	UserID    string    `json:"user_id,omitempty"`
	Username  string    `json:"username,omitempty"`
	IPAddress string    `json:"ip_address"`
	Location  string    `json:"location"`
	Device    string    `json:"device"`
	Browser   string    `json:"browser"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
