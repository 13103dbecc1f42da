package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/identicon/internal/server"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr    string
	maxSize int
	noCache bool
}

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve identicons over HTTP",
		Long: `Serve PNG identicons at /avatar/{identifier} (optionally suffixed with .png).
The ?size= query parameter selects the edge length.`,
		Example: `  identicon serve --addr :8080
  curl -o octocat.png 'http://localhost:8080/avatar/octocat.png?size=128'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().IntVar(&opts.maxSize, "max-size", 0, "largest size a request may ask for (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	cfg := c.config()
	if opts.addr == "" {
		opts.addr = cfg.Server.Addr
	}
	if opts.maxSize == 0 {
		opts.maxSize = cfg.Server.MaxSize
	}

	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Close()

	srv := server.New(runner, server.Options{
		Addr:        opts.addr,
		DefaultSize: cfg.Size,
		MaxSize:     opts.maxSize,
		Filter:      cfg.Filter,
		Scaler:      cfg.Scaler,
		Algorithm:   cfg.Algorithm,
	}, loggerFromContext(ctx))

	printInfo("Serving identicons on %s", StyleLink.Render(listenURL(opts.addr)))
	printDetail("cache: %s", cfg.Cache.Backend)
	return srv.ListenAndServe(ctx)
}

// listenURL turns a listen address into a browsable URL.
func listenURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
