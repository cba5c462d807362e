// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/decenttree/starttree"
	"github.com/spf13/cobra"
)

// AlgorithmsCmd lists the registered algorithms.
func AlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List available tree-construction algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, name := range starttree.Default.Names() {
				desc, _ := starttree.Default.Description(name)
				fmt.Fprintf(w, "%s\t%s\n", name, desc)
			}

			return w.Flush()
		},
	}
}
