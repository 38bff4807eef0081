package mcpserver

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/erraggy/namecase/identscan"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxBatch is the largest number of names a single detect, convert or
	// check call may carry.
	MaxBatch int

	// Scan tool defaults.
	ScanMaxFiles     int
	ScanMaxFileSize  int64
	ScanWorkers      int
	ScanIncludeTests bool
	ScanTimeout      time.Duration

	// IssueLimit is the default page size for scan issues.
	IssueLimit int
	// MaxLimit caps any page size a client asks for.
	MaxLimit int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from NAMECASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxBatch:         envInt("NAMECASE_MAX_BATCH", 1000),
		ScanMaxFiles:     envInt("NAMECASE_SCAN_MAX_FILES", identscan.DefaultMaxFiles),
		ScanMaxFileSize:  envInt64("NAMECASE_SCAN_MAX_FILE_SIZE", identscan.DefaultMaxFileSize),
		ScanWorkers:      envInt("NAMECASE_SCAN_WORKERS", runtime.GOMAXPROCS(0)),
		ScanIncludeTests: envBool("NAMECASE_SCAN_INCLUDE_TESTS", false),
		ScanTimeout:      envDuration("NAMECASE_SCAN_TIMEOUT", 60*time.Second),
		IssueLimit:       envInt("NAMECASE_ISSUE_LIMIT", 100),
		MaxLimit:         envInt("NAMECASE_MAX_LIMIT", 1000),
	}
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

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
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
