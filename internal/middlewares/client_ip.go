package middlewares

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers consulted in priority order. X-Forwarded-For may carry a
// chain, in which case the leftmost entry is the originating client.
var ipHeaders = []string{"True-Client-IP", "X-Real-IP", "X-Forwarded-For"}

// ClientIPMiddleware resolves the originating client IP from proxy headers
// and rewrites RemoteAddr to "IP:port" so the audit recorder and geo lookup
// see the real address rather than the reverse proxy's.
func ClientIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := resolveClientIP(r); ip != "" {
			port := "0"
			if _, p, err := net.SplitHostPort(r.RemoteAddr); err == nil && p != "" {
				port = p
			}
			r.RemoteAddr = net.JoinHostPort(ip, port)
		}

		next.ServeHTTP(w, r)
	})
}

func resolveClientIP(r *http.Request) string {
	for _, header := range ipHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		// Only the first hop matters when a proxy chain is present.
		candidate, _, _ := strings.Cut(value, ",")
		if parsed := net.ParseIP(strings.TrimSpace(candidate)); parsed != nil {
			return parsed.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if parsed := net.ParseIP(host); parsed != nil {
		return parsed.String()
	}

	return ""
}
