// SPDX-License-Identifier: MIT
package starttree

import "github.com/katalvlaran/decenttree/newick"

// UPGMAName is the registry name of the UPGMA builder.
const UPGMAName = "UPGMA"

// UPGMA - Unweighted Pair Group Method with Arithmetic mean
//
// Algorithm Outline:
//  1. Pick the closest pair (i, j); the new cluster sits at height D[i][j]/2.
//  2. Each child's branch length is that height minus the child's height.
//  3. D[u][k] = (|i|·D[i][k] + |j|·D[j][k]) / (|i| + |j|); j retires.
//  4. Repeat until a single cluster, the root, remains.
//
// Complexity:
//
//	Time   = O(N³)
//	Memory = O(N²)
type UPGMA struct {
	progress
}

// NewUPGMA returns a fresh UPGMA builder.
func NewUPGMA() Builder {
	return &UPGMA{progress: newProgress(UPGMAName)}
}

// ConstructTreeString implements Builder.
func (u *UPGMA) ConstructTreeString(labels []string, distances []float64) (string, error) {
	w, err := newWorking(labels, distances)
	if err != nil {
		return "", err
	}
	workers := WorkerCount()
	u.report("constructing tree", "taxa", len(labels), "workers", workers)

	n := len(labels)
	height := make([]float64, n)
	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}

	for r := len(w.active); r > 1; r = len(w.active) {
		a, b := w.bestPair(workers, w.dist)
		i, j := w.active[a], w.active[b]
		h := w.d[i][j] / 2

		si, sj := float64(size[i]), float64(size[j])
		for _, k := range w.active {
			if k == i || k == j {
				continue
			}
			duk := (si*w.d[i][k] + sj*w.d[j][k]) / (si + sj)
			w.d[i][k], w.d[k][i] = duk, duk
		}
		w.nodes[i] = newick.Join(
			w.nodes[i].WithLength(h-height[i]),
			w.nodes[j].WithLength(h-height[j]),
		)
		height[i] = h
		size[i] += size[j]
		w.retire(b)
		u.report("joined clusters", "left", i, "right", j, "height", h, "remaining", r-1)
	}

	tree, err := newick.Write(w.nodes[w.active[0]], u.precision)
	if err != nil {
		return "", err
	}
	u.report("tree constructed", "taxa", n)

	return tree, nil
}
