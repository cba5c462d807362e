// SPDX-License-Identifier: MIT

// Package decenttree builds phylogenetic trees from distance matrices
// supplied in whatever shape the caller has at hand.
//
// 🚀 What is decenttree?
//
//	A validation and dispatch layer in front of a family of distance-based
//	tree builders. Labels and distances arrive loosely typed (JSON arrays,
//	Go slices, typed n-dimensional arrays), are checked in a fixed order,
//	converted into native buffers and handed to the algorithm selected by
//	name. The first failing check is the only one reported.
//
// ✨ Packages:
//
//	boundary/   - request validation, coercion and dispatch (the core)
//	starttree/  - Builder interface, Registry, NJ and UPGMA, worker count
//	ndarray/    - typed n-dimensional arrays for the zero-copy path
//	newick/     - tree model, Newick writer and parser
//	phylip/     - PHYLIP distance-matrix reader
//	logger/     - structured logging facade
//	server/     - HTTP API with Prometheus metrics and a result cache
//	internal/config - layered defaults, YAML, env and flag configuration
//	internal/cli    - cobra commands: build, algorithms, serve
//	cmd/decenttree  - the binary
//
// Quick example:
//
//	tree, err := boundary.ConstructTree(boundary.Request{
//	  Algorithm: "NJ",
//	  Sequences: []string{"A", "B", "C"},
//	  Distances: []float64{0, 1, 2, 1, 0, 3, 2, 3, 0},
//	})
//	// tree == "(A:0,B:1,C:2);"
//
//	go install github.com/katalvlaran/decenttree/cmd/decenttree@latest
package decenttree
