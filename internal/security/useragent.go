package security

import "strings"

// ParseUserAgent classifies a user agent into coarse device and browser
// buckets. Substring checks are deliberate: the audit log only needs
// "Chrome on Desktop", not a full UA parse.
func ParseUserAgent(userAgent string) (device, browser string) {
	device = "Desktop"
	browser = "Unknown"

	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		device = "Tablet"
	} else if strings.Contains(ua, "mobile") {
		device = "Mobile"
	}

	switch {
	case strings.Contains(ua, "edge") || strings.Contains(ua, "edg/"):
		browser = "Edge"
	case strings.Contains(ua, "opr") || strings.Contains(ua, "opera"):
		browser = "Opera"
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	}

	return device, browser
}
