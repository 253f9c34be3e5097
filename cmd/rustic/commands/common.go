package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/FitzroyWoodruff/rustic/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"rustic.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build BuildCmd `cmd:"" default:"withargs" help:"Build the HTML site from the Markdown content tree"`
	Init  InitCmd  `cmd:"" help:"Initialize a new site skeleton"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(c.Verbose),
	}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel determines the log level from the verbose flag and the
// RUSTIC_LOG_LEVEL environment variable; the flag wins.
func parseLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(os.Getenv("RUSTIC_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ApplyFlagOverrides folds build command flags into the configuration.
// Priority: CLI flag (when given) > config file > built-in default. Flags
// are pointers so a flag left off the command line (nil) is distinguishable
// from one explicitly set to the built-in default value.
func ApplyFlagOverrides(cfg *config.Config, input, output *string) {
	if input != nil {
		cfg.Input = *input
	}
	if output != nil {
		cfg.Output.Directory = *output
	}
}
