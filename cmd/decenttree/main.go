// SPDX-License-Identifier: MIT

// Command decenttree builds phylogenetic trees from distance matrices.
package main

import (
	"os"

	"github.com/katalvlaran/decenttree/internal/cli"
	"github.com/katalvlaran/decenttree/logger"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		logger.GetDefault().Error("decenttree failed", "err", err)
		os.Exit(1)
	}
}
