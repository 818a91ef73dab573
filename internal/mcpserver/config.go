package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/discoverytools/loader"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Discovery document source.
	Host              string
	DirectoryEndpoint string
	HTTPTimeout       time.Duration
	MaxBodySize       int
	AllowPrivateIPs   bool

	// Tool defaults.
	ListLimit        int
	MaxLimit         int
	DirectoryEnabled bool

	// Observability.
	LogLevel    slog.Level
	MetricsAddr string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from DISCOVERYTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Host:              envString("DISCOVERYTOOLS_HOST", loader.DefaultHost),
		DirectoryEndpoint: envString("DISCOVERYTOOLS_DIRECTORY_ENDPOINT", ""),
		HTTPTimeout:       envDuration("DISCOVERYTOOLS_HTTP_TIMEOUT", loader.DefaultTimeout),
		MaxBodySize:       envInt("DISCOVERYTOOLS_MAX_BODY_SIZE", loader.DefaultMaxBodySize),
		AllowPrivateIPs:   envBool("DISCOVERYTOOLS_ALLOW_PRIVATE_IPS", false),
		ListLimit:         envInt("DISCOVERYTOOLS_LIST_LIMIT", 100),
		MaxLimit:          envInt("DISCOVERYTOOLS_MAX_LIMIT", 1000),
		DirectoryEnabled:  envBool("DISCOVERYTOOLS_DIRECTORY_ENABLED", true),
		LogLevel:          envLevel("DISCOVERYTOOLS_LOG_LEVEL", slog.LevelWarn),
		MetricsAddr:       envString("DISCOVERYTOOLS_METRICS_ADDR", ""),
	}
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}

// envLevel accepts the slog level names (debug, info, warn, error), in any case.
func envLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		slog.Warn("invalid log level env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return level
}
