// SPDX-License-Identifier: MIT
package boundary_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/decenttree/boundary"
	"github.com/katalvlaran/decenttree/logger"
	"github.com/katalvlaran/decenttree/ndarray"
)

// ExampleConstructTree builds a tree from a borrowed 3×3 typed matrix.
func ExampleConstructTree() {
	d, _ := ndarray.NewFloat64([]float64{0, 1, 2, 1, 0, 3, 2, 3, 0}, 3, 3)
	tree, err := boundary.ConstructTree(boundary.Request{
		Algorithm: "UPGMA",
		Sequences: []string{"A", "B", "C"},
		Distances: d,
	}, boundary.WithLogger(logger.Discard()))
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(tree)
	// Output:
	// ((A:0.5,B:0.5):0.75,C:1.25);
}

// ExampleConstructTree_tooFew shows the single diagnostic of a rejected call.
func ExampleConstructTree_tooFew() {
	_, err := boundary.ConstructTree(boundary.Request{
		Algorithm: "NJ",
		Sequences: []string{"A", "B"},
		Distances: []float64{0, 1, 1, 0},
	}, boundary.WithLogger(logger.Discard()))
	fmt.Println(err)
	fmt.Println(errors.Is(err, boundary.ErrTooFewSequences))
	// Output:
	// Error: sequences contains only 2 sequences (must have at least 3).
	// true
}
