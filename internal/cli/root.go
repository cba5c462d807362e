// SPDX-License-Identifier: MIT

// Package cli implements the decenttree command tree.
package cli

import (
	"github.com/katalvlaran/decenttree/internal/config"
	"github.com/katalvlaran/decenttree/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"log-json":  "log.json",
	"algorithm": "build.algorithm",
	"format":    "build.format",
	"threads":   "build.threads",
	"precision": "build.precision",
	"verbosity": "build.verbosity",
	"addr":      "server.addr",
	"max-taxa":  "server.max_taxa",
}

// RootCmd returns the decenttree command with all subcommands attached.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "decenttree",
		Short:         "Distance-matrix phylogenetic tree construction",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error, disabled")
	root.PersistentFlags().Bool("log-json", false, "log as JSON")

	root.AddCommand(
		BuildCmd(),
		AlgorithmsCmd(),
		ServeCmd(),
	)

	return root
}

// loadConfig merges the config file, environment and the flags the user set,
// then installs the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, logger.Logger, error) {
	flags := make(map[string]any)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		switch f.Value.Type() {
		case "int":
			v, _ := cmd.Flags().GetInt(f.Name)
			flags[key] = v
		case "bool":
			v, _ := cmd.Flags().GetBool(f.Name)
			flags[key] = v
		default:
			flags[key] = f.Value.String()
		}
	})
	file, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(config.WithFile(file), config.WithFlags(flags))
	if err != nil {
		return nil, nil, err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(cfg.Log.Level)
	logCfg.JSON = cfg.Log.JSON
	logCfg.Output = cmd.ErrOrStderr()
	logger.Init(logCfg)

	return cfg, logger.GetDefault(), nil
}
