package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/algebra/internal/catalog"
	"github.com/abhisek/algebra/internal/config"
	"github.com/abhisek/algebra/internal/session"
)

// deps holds what every command needs: config, catalog and logger.
type deps struct {
	cfg      config.Config
	cat      *catalog.Catalog
	log      *slog.Logger
	closeLog func() error
}

// resolveConfig reads ALGEBRA_* variables and applies flag overrides.
func resolveConfig(cmd *cobra.Command) config.Config {
	cfg := config.ConfigFromEnv()
	flags := cmd.Flags()

	override := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	override("default-topic", &cfg.DefaultTopic)
	override("log-level", &cfg.Log.Level)
	override("log-format", &cfg.Log.Format)
	override("log-file", &cfg.Log.File)
	return cfg
}

// newDeps loads the embedded catalog, validates the config against it
// and opens the logger. Logs go to logOut unless a log file is set.
func newDeps(cmd *cobra.Command, logOut io.Writer) (*deps, error) {
	cfg := resolveConfig(cmd)
	cat := catalog.Default()
	if err := cfg.Validate(cat); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := cfg.Log.NewLogger(logOut)
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}
	logger.Debug("configuration loaded",
		"default_topic", cfg.DefaultTopic,
		"auto_advance_delay", cfg.AutoAdvanceDelay,
		"shake_delay", cfg.ShakeDelay,
	)

	return &deps{cfg: cfg, cat: cat, log: logger, closeLog: closeLog}, nil
}

// Engine creates a session engine configured from d.
func (d *deps) Engine() *session.Engine {
	return session.New(d.cat,
		session.WithLogger(d.log),
		session.WithDefaultTopic(d.cfg.DefaultTopic),
		session.WithDelays(d.cfg.AutoAdvanceDelay, d.cfg.ShakeDelay),
	)
}

// Close releases the log file, if any.
func (d *deps) Close() {
	if err := d.closeLog(); err != nil {
		d.log.Warn("close log file", "error", err)
	}
}
