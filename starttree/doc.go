// SPDX-License-Identifier: MIT

// Package starttree builds phylogenetic trees from distance matrices.
//
// 🚀 What is it?
//
//	A small family of distance-based tree construction algorithms behind one
//	capability interface (Builder), reachable by name through a Registry.
//	Builders take N taxon labels plus a flat, row-major N×N distance buffer
//	and produce a Newick string.
//
// ✨ Algorithms registered in Default:
//   - NJ    - Saitou–Nei neighbour joining, unrooted (trifurcating root)
//   - UPGMA - average-linkage clustering, rooted and ultrametric
//
// ⚙️ Usage:
//
//	b, ok := starttree.Default.New("NJ")
//	if !ok {
//	  // unknown algorithm
//	}
//	b.BeSilent()
//	tree, err := b.ConstructTreeString([]string{"A", "B", "C"},
//	  []float64{0, 1, 2, 1, 0, 3, 2, 3, 0})
//	// tree == "(A:0,B:1,C:2);"
//
// Threads:
//
//	Row scans run on WorkerCount() goroutines. The count is process-wide
//	(SetWorkerCount) and is read once at the start of each construction.
//	Output never depends on it: ties are broken by lowest row-major index.
//
// Performance:
//
//   - Time:   O(N³) for both algorithms
//   - Memory: O(N²) working copy of the distance matrix
package starttree
