package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Enabled reports whether the limit should be enforced at all.
func (r RateLimitConfig) Enabled() bool {
	return r.Requests > 0 && r.Interval > 0
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL      string
	Port             string
	LogLevel         string
	AllowOrigins     []string
	TrustProxy       bool
	RateLimitContact RateLimitConfig
	RateLimitAdmin   RateLimitConfig
	ShutdownTimeout  time.Duration
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Port:            getEnv("PORT", "8001"),
		LogLevel:        getEnv("LOG_LEVEL", "INFO"),
		AllowOrigins:    splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		TrustProxy:      parseBool(getEnv("TRUST_PROXY", "false")),
		ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}

	contact, err := parseRateLimit(getEnv("RATE_LIMIT_CONTACT", "3/hour"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CONTACT value: %w", err)
	}
	if !contact.Enabled() {
		return nil, fmt.Errorf("RATE_LIMIT_CONTACT must allow at least one request")
	}
	cfg.RateLimitContact = contact

	admin, err := parseRateLimit(getEnv("RATE_LIMIT_ADMIN", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_ADMIN value: %w", err)
	}
	cfg.RateLimitAdmin = admin

	return cfg, nil
}

// parseRateLimit accepts "<requests>/<unit>". A request count of zero is
// accepted and yields a disabled limit.
func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests < 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	case "d", "day", "days":
		interval = 24 * time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseBool(input string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(input))
	return err == nil && b
}

func splitList(input string) []string {
	var out []string
	for _, item := range strings.Split(input, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
