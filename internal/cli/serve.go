package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/logtrack/internal/server"
	"github.com/matzehuels/logtrack/pkg/cache"
)

// serveCommand starts the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scenes and rendered artifacts over HTTP",
		Example: `  logtrack serve --addr :9000
  curl localhost:9000/examples/three/render/svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") && c.Config.Server.Addr != "" {
				addr = c.Config.Server.Addr
			}

			// API entries live beside CLI entries in a shared backend.
			runner, err := c.newRunner(cmd.Context(), noCache, cache.NewScopedKeyer(nil, "api:"))
			if err != nil {
				return err
			}
			defer runner.Close()

			printInfo("Serving on %s", StyleValue.Render(addr))
			return server.New(runner, c.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the cache entirely")
	return cmd
}
