// SPDX-License-Identifier: MIT
package cli

import (
	"os/signal"
	"syscall"

	"github.com/katalvlaran/decenttree/server"
	"github.com/spf13/cobra"
)

// ServeCmd runs the HTTP server until interrupted.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tree construction over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, server.WithLogger(log)).Run(ctx)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().Int("max-taxa", 0, "largest accepted number of sequences")
	cmd.Flags().Int("precision", 0, "default significant digits of branch lengths")

	return cmd
}
