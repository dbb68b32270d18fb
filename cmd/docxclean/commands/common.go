package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docxclean/internal/config"
)

// Global context passed to subcommands.
type Global struct {
	Stdout io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config          string           `short:"c" help:"Configuration file path (.yaml, .yml or .toml)" type:"path"`
	Verbose         bool             `short:"v" help:"Enable verbose logging"`
	LogFormat       string           `name:"log-format" help:"Log output format (text|json); overrides log_format"`
	MetricsTextfile string           `name:"metrics-textfile" help:"Write run metrics in Prometheus text format to this file" type:"path"`
	KeepWorkspace   bool             `name:"keep-workspace" help:"Leave the extracted package on disk after the run"`
	Version         kong.VersionFlag `name:"version" help:"Show version and exit"`

	Clean       CleanCmd   `cmd:"" default:"withargs" help:"Sanitize a document (default command)"`
	VersionInfo VersionCmd `cmd:"" name:"version" help:"Print version information"`
}

// AfterApply runs after flag parsing; installs a logger from flags only.
// CleanCmd reinstalls it once the configuration is known.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	c.setupLogging(config.LogLevelInfo, config.NormalizeLogFormat(c.LogFormat))
	return nil
}

// setupLogging installs the default logger on stderr. -v always forces debug.
func (c *CLI) setupLogging(level config.LogLevel, format config.LogFormat) *slog.Logger {
	lvl := level.SlogLevel()
	if c.Verbose {
		lvl = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// effectiveConfig loads the configuration and applies flag overrides.
func (c *CLI) effectiveConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.LogFormat != "" {
		cfg.LogFormat = config.NormalizeLogFormat(c.LogFormat)
	}
	if c.MetricsTextfile != "" {
		cfg.MetricsTextfile = c.MetricsTextfile
	}
	return cfg, nil
}
