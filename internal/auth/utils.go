package auth

import (
	"net/url"
	"strings"
)

// SafeRedirectPath validates a caller-supplied post-login redirect target.
// Only same-origin, path-only targets are allowed; anything else resolves to
// "/" (default-deny, no error surfaced).
func SafeRedirectPath(raw string) string {
	if raw == "" {
		return "/"
	}

	// Backslashes are treated as slashes by some browsers; reject outright.
	if strings.ContainsAny(raw, "\\\r\n") {
		return "/"
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "/"
	}

	// Absolute URLs and scheme-relative ("//evil.example.com") targets are
	// cross-origin by definition.
	if parsed.Scheme != "" || parsed.Host != "" || parsed.User != nil {
		return "/"
	}

	if !strings.HasPrefix(parsed.Path, "/") || strings.HasPrefix(parsed.Path, "//") {
		return "/"
	}

	target := parsed.Path
	if parsed.RawQuery != "" {
		target += "?" + parsed.RawQuery
	}

	return target
}
