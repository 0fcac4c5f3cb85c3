package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/poscode/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversions over HTTP",
		Long: `Serve rank, unrank, lookup and enumerate over a JSON HTTP API.

The server stops gracefully on SIGINT or SIGTERM.`,
		Example: `  poscode serve --addr :8080
  curl -d '{"code":[0,1,1,2]}' localhost:8080/v1/unrank`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.New(c.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")

	return cmd
}
