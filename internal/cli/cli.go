// Package cli implements the identicon command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/identicon/internal/config"
	"github.com/matzehuels/identicon/pkg/buildinfo"
	"github.com/matzehuels/identicon/pkg/cache"
	"github.com/matzehuels/identicon/pkg/pipeline"
)

const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        *config.Config
}

// New creates a new CLI instance writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Generate GitHub-style identicons",
		Long: `identicon derives a symmetric 5×5 avatar from any identifier (a UUID,
a username, an email address) and renders it as PNG. The same identifier
always yields the same image.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setOutput(cmd.OutOrStdout())

			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/identicon/config.toml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.patternCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// config returns the loaded configuration, falling back to defaults.
func (c *CLI) config() *config.Config {
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c.cfg
}

// newRunner creates a pipeline runner backed by the configured cache.
// An unreachable backend degrades to no caching.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	cfg := c.config()

	var store cache.Cache = cache.NewNullCache()
	if !noCache {
		opened, err := cfg.OpenCache(ctx)
		if err != nil {
			c.Logger.Warn("cache unavailable, continuing without it", "backend", cfg.Cache.Backend, "error", err)
		} else {
			store = opened
		}
	}

	r := pipeline.NewRunner(store, nil, c.Logger)
	if cfg.Cache.TTL.Duration > 0 {
		r.TTL = cfg.Cache.TTL.Duration
	}
	return r
}
