package cli

import (
	"github.com/spf13/cobra"

	"github.com/regiolab/regio/internal/api"
)

// serveCommand creates the serve command, which exposes generation over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve decompositions over HTTP",
		Long: `Serve starts an HTTP server with a single image endpoint:

  GET /v1/images?width=128&height=96&classes=10&seed=42&format=png

The cache backend from the config file is shared across requests, so
repeated parameter combinations are served from cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			server := api.NewServer(runner, c.Logger)
			return server.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the cache")

	return cmd
}
