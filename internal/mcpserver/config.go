package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/csvtools/aligner"
	"github.com/erraggy/csvtools/delim"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Dialect defaults.
	Delimiter rune
	Encoding  string

	// Align tool defaults.
	AlignAtLeast  int
	MaxAlignFiles int

	// Limits on inline content and inline results.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CSVTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Delimiter:     envDelimiter("CSVTOOLS_DELIMITER", delim.DefaultComma),
		Encoding:      os.Getenv("CSVTOOLS_ENCODING"),
		AlignAtLeast:  envNonNegativeInt("CSVTOOLS_ALIGN_AT_LEAST", aligner.DefaultAtLeast),
		MaxAlignFiles: envInt("CSVTOOLS_MAX_ALIGN_FILES", 50),
		MaxInlineSize: envInt64("CSVTOOLS_MAX_INLINE_SIZE", 10*1024*1024),
	}
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

// envNonNegativeInt is envInt for settings where zero is meaningful.
func envNonNegativeInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
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

func envDelimiter(key string, fallback rune) rune {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	r, err := delim.ParseDelimiter(v)
	if err != nil {
		slog.Warn("invalid delimiter env var, using default", "key", key, "value", v, "default", string(fallback)) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return r
}
