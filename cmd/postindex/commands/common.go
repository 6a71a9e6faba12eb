package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/postindex/internal/config"
	ierrors "git.home.luguber.info/inful/postindex/internal/errors"
)

// Global carries state shared by all subcommands.
type Global struct {
	Stdout io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Global) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.out(), format, args...)
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path" default:"postindex.yaml"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log format: text or json (overrides logging.format)" placeholder:"FORMAT"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate the post index (default command)"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate the index whenever posts change"`
	List     ListCmd     `cmd:"" help:"List indexed posts, optionally filtered by tag"`
	Tags     TagsCmd     `cmd:"" help:"Show tags with their post counts"`
	Random   RandomCmd   `cmd:"" help:"Print a random post"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging from flags. The level and
// format from the configuration file are applied once it is loaded.
func (c *CLI) AfterApply() error {
	format, err := c.logFormat(config.LogFormatText)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(newLogger(os.Stderr, level, format))
	return nil
}

func (c *CLI) logFormat(fallback config.LogFormat) (config.LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "":
		return fallback, nil
	case "text":
		return config.LogFormatText, nil
	case "json":
		return config.LogFormatJSON, nil
	default:
		return "", ierrors.ValidationFailed("log-format", fmt.Sprintf("unsupported value %q", c.LogFormat))
	}
}

func newLogger(w io.Writer, level slog.Level, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// LoadConfig reads the configuration file named by --config (defaults when it
// does not exist) and reconfigures logging from it. Flags win over the file.
func (c *CLI) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		if _, ok := ierrors.As(err); ok {
			return nil, err
		}
		return nil, ierrors.ConfigInvalid(c.Config, err)
	}

	format, err := c.logFormat(cfg.Logging.Format)
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level.SlogLevel()
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(newLogger(os.Stderr, level, format))

	if cfg.LoadedFrom != "" {
		slog.Debug("Loaded configuration", "path", cfg.LoadedFrom)
	} else {
		slog.Debug("No configuration file, using defaults", "path", c.Config)
	}
	return cfg, nil
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
