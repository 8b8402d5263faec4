package config

import (
	"strings"
	"time"
)

// RateLimitConfig controls the fixed-window API rate limiter.  Requests
// is the number of requests allowed per client IP within Window.
type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
	Prefix   string
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig with sensible defaults.
func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:  envBool("RATE_LIMIT_ENABLED", true),
		Requests: atoi(getenv("RATE_LIMIT_REQUESTS", "60")),
		Window:   parseDur(getenv("RATE_LIMIT_WINDOW", "1m")),
		Prefix:   getenv("RATE_LIMIT_PREFIX", "rl"),
	}
}

func envBool(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	return strings.EqualFold(v, "true") || v == "1"
}
