package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/prometheus/common/model"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from prometheus-style yaml
// strings ("30s", "5m", "1d"), which plain time.Duration fields reject.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseDurationString(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func validateURL(raw, field string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid %s: scheme must be http or https, got %q", field, parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("invalid %s: host is required", field)
	}

	return nil
}

func validateWebsocketURL(raw, field string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}

	if parsed.Scheme != "ws" && parsed.Scheme != "wss" {
		return fmt.Errorf("invalid %s: scheme must be ws or wss, got %q", field, parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("invalid %s: host is required", field)
	}

	return nil
}

// ParseDurationString parses prometheus-style duration strings ("30s", "5m",
// "1h", "1d").
func ParseDurationString(s string) (time.Duration, error) {
	d, err := model.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return time.Duration(d), nil
}
