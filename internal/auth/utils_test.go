package auth

import "testing"

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty defaults to root", "", "/"},
		{"plain path", "/projects", "/projects"},
		{"root", "/", "/"},
		{"path with query", "/projects?tag=go", "/projects?tag=go"},
		{"nested path", "/admin/settings", "/admin/settings"},
		{"absolute url rejected", "https://evil.example.com/phish", "/"},
		{"http url rejected", "http://evil.example.com", "/"},
		{"scheme relative rejected", "//evil.example.com/phish", "/"},
		{"userinfo rejected", "https://user@evil.example.com", "/"},
		{"backslash rejected", "/\\evil.example.com", "/"},
		{"crlf rejected", "/path\r\nSet-Cookie: x=y", "/"},
		{"relative path rejected", "projects", "/"},
		{"javascript scheme rejected", "javascript:alert(1)", "/"},
		{"unparseable rejected", "http://%zz", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeRedirectPath(tt.input); got != tt.expected {
				t.Errorf("SafeRedirectPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExchangeErrorMessage(t *testing.T) {
	err := NewExchangeError("invalid_grant", "code already used by %s", "client_a")
	if err.Error() != "invalid_grant: code already used by client_a" {
		t.Errorf("unexpected error string: %q", err.Error())
	}

	bare := &ExchangeError{Code: "auth_failed"}
	if bare.Error() != "auth_failed" {
		t.Errorf("expected bare code, got %q", bare.Error())
	}
}
