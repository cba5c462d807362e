// SPDX-License-Identifier: MIT
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/decenttree/boundary"
	"github.com/katalvlaran/decenttree/internal/config"
	"github.com/katalvlaran/decenttree/newick"
	"github.com/katalvlaran/decenttree/phylip"
	"github.com/spf13/cobra"
)

// BuildCmd builds one tree from a PHYLIP or JSON input.
func BuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a tree from a distance matrix",
		Example: `  decenttree build -t NJ -i primates.phy
  decenttree build -f json -i request.json -o tree.nwk --check`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}
	f := cmd.Flags()
	f.StringP("algorithm", "t", "", "algorithm name (see `decenttree algorithms`)")
	f.StringP("input", "i", "-", "input file, - for stdin")
	f.StringP("format", "f", "", "input format: phylip or json")
	f.StringP("output", "o", "", "output file (default stdout)")
	f.Int("threads", 0, "worker threads, 0 keeps the default")
	f.Int("precision", 0, "significant digits of branch lengths")
	f.Int("verbosity", 0, "0 silences progress reporting")
	f.Bool("check", false, "parse the result and verify every taxon appears once")

	return cmd
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	check, _ := cmd.Flags().GetBool("check")

	in, closeIn, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	defer closeIn()

	req, err := readRequest(in, cfg.Build)
	if err != nil {
		return err
	}
	tree, err := boundary.ConstructTree(req, boundary.WithLogger(log))
	if err != nil {
		return err
	}
	if check {
		if err := checkTree(tree, req); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if output != "" {
		return os.WriteFile(output, []byte(tree+"\n"), 0o644)
	}
	_, err = fmt.Fprintln(out, tree)

	return err
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

// readRequest decodes the input and fills absent settings from cfg.
// PHYLIP input yields a typed 2-D matrix; JSON input keeps its keyword values.
func readRequest(in io.Reader, cfg config.BuildConfig) (boundary.Request, error) {
	req := boundary.Request{
		Algorithm:       cfg.Algorithm,
		NumberOfThreads: cfg.Threads,
		Precision:       cfg.Precision,
		Verbosity:       cfg.Verbosity,
	}
	switch cfg.Format {
	case "json":
		var kw map[string]any
		if err := json.NewDecoder(in).Decode(&kw); err != nil {
			return req, fmt.Errorf("decode JSON input: %w", err)
		}
		if kw == nil {
			kw = map[string]any{}
		}
		for key, value := range map[string]any{
			boundary.KeyAlgorithm:       req.Algorithm,
			boundary.KeyNumberOfThreads: req.NumberOfThreads,
			boundary.KeyPrecision:       req.Precision,
			boundary.KeyVerbosity:       req.Verbosity,
		} {
			if _, ok := kw[key]; !ok {
				kw[key] = value
			}
		}

		return boundary.DecodeRequest(kw)
	default:
		labels, dist, err := phylip.Read(in)
		if err != nil {
			return req, err
		}
		req.Sequences = labels
		req.Distances = dist

		return req, nil
	}
}

// checkTree parses tree and verifies it names every label exactly once.
func checkTree(tree string, req boundary.Request) error {
	root, err := newick.Parse(tree)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	labels, err := boundary.Strings(boundary.KeySequences, req.Sequences)
	if err != nil {
		return err
	}
	seen := make(map[string]int, len(labels))
	for _, leaf := range root.Leaves() {
		seen[leaf]++
	}
	for _, l := range labels {
		if seen[l] != 1 {
			return fmt.Errorf("check: taxon %q appears %d times", l, seen[l])
		}
	}
	if n := len(root.Leaves()); n != len(labels) {
		return fmt.Errorf("check: tree has %d leaves, want %d", n, len(labels))
	}

	return nil
}
