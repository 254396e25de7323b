package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/algebra/internal/catalog"
)

// Config holds runtime settings for the practice engine and its host.
type Config struct {
	// DefaultTopic is loaded at start and used when a requested topic is
	// unknown. Default: "quadratic".
	DefaultTopic string

	// AutoAdvanceDelay is how long a correct answer stays on screen before
	// the next problem loads. Default: 2s.
	AutoAdvanceDelay time.Duration

	// ShakeDelay is how long the incorrect-answer shake lasts. Default: 400ms.
	ShakeDelay time.Duration

	Log LogConfig
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	File   string // empty: stderr for commands, discarded by the TUI
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultTopic:     catalog.DefaultTopicID,
		AutoAdvanceDelay: 2 * time.Second,
		ShakeDelay:       400 * time.Millisecond,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ConfigFromEnv builds a Config from ALGEBRA_* environment variables,
// falling back to defaults for unset or unparsable values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.DefaultTopic = envStr("ALGEBRA_DEFAULT_TOPIC", cfg.DefaultTopic)
	cfg.AutoAdvanceDelay = envDuration("ALGEBRA_AUTO_ADVANCE_DELAY", cfg.AutoAdvanceDelay)
	cfg.ShakeDelay = envDuration("ALGEBRA_SHAKE_DELAY", cfg.ShakeDelay)
	cfg.Log.Level = envStr("ALGEBRA_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = envStr("ALGEBRA_LOG_FORMAT", cfg.Log.Format)
	cfg.Log.File = envStr("ALGEBRA_LOG_FILE", cfg.Log.File)

	return cfg
}

// Validate checks the config against the catalog it will drive.
func (c Config) Validate(cat *catalog.Catalog) error {
	if c.DefaultTopic == "" {
		return fmt.Errorf("ALGEBRA_DEFAULT_TOPIC must not be empty")
	}
	if cat != nil && !cat.Has(c.DefaultTopic) {
		return fmt.Errorf("ALGEBRA_DEFAULT_TOPIC: unknown topic %q", c.DefaultTopic)
	}
	if c.AutoAdvanceDelay <= 0 {
		return fmt.Errorf("ALGEBRA_AUTO_ADVANCE_DELAY must be positive, got %s", c.AutoAdvanceDelay)
	}
	if c.ShakeDelay <= 0 {
		return fmt.Errorf("ALGEBRA_SHAKE_DELAY must be positive, got %s", c.ShakeDelay)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("ALGEBRA_LOG_LEVEL: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("ALGEBRA_LOG_FORMAT must be 'text' or 'json', got %q", c.Log.Format)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
