// SPDX-License-Identifier: MIT
package starttree

import (
	"fmt"
	"math"

	"github.com/katalvlaran/decenttree/newick"
)

// working is the mutable state shared by the clustering algorithms: a
// symmetric copy of the distances, the still-active cluster slots and the
// subtree currently held by each slot.
type working struct {
	d      [][]float64
	active []int
	nodes  []*newick.Node
}

// newWorking validates the input and builds the symmetric working copy.
// Stage 1 (Validate): n ≥ 3, len(dist) == n², every entry finite.
// Stage 2 (Prepare): d[i][j] = (dist[i*n+j] + dist[j*n+i]) / 2, zero diagonal.
// Complexity: O(n²) time and memory.
func newWorking(labels []string, dist []float64) (*working, error) {
	n := len(labels)
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewTaxa, n)
	}
	if len(dist) != n*n {
		return nil, fmt.Errorf("%w: %d labels, %d distances", ErrShape, n, len(dist))
	}

	w := &working{
		d:      make([][]float64, n),
		active: make([]int, n),
		nodes:  make([]*newick.Node, n),
	}
	for i := 0; i < n; i++ {
		w.d[i] = make([]float64, n)
		w.active[i] = i
		w.nodes[i] = newick.NewLeaf(labels[i])
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := dist[i*n+j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d column %d", ErrNonFinite, i, j)
			}
			if j < i {
				avg := (v + w.d[j][i]) / 2
				w.d[i][j], w.d[j][i] = avg, avg
			} else if j > i {
				w.d[i][j] = v
			}
		}
	}

	return w, nil
}

// candidate is one chunk's best pair, by positions in active.
type candidate struct {
	score float64
	a, b  int
	found bool
}

// bestPair scans all pairs a<b of active positions and returns the pair
// minimising score(a, b). Rows are split across workers; the reduction keeps
// the first minimum in row-major order, so the result is independent of the
// worker count.
// Complexity: O(r²) for r active clusters.
func (w *working) bestPair(workers int, score func(a, b int) float64) (int, int) {
	r := len(w.active)
	best := make([]candidate, max(workers, 1))
	chunks := forChunks(r, workers, func(c, lo, hi int) {
		local := candidate{}
		for a := lo; a < hi; a++ {
			for b := a + 1; b < r; b++ {
				s := score(a, b)
				if !local.found || s < local.score {
					local = candidate{score: s, a: a, b: b, found: true}
				}
			}
		}
		best[c] = local
	})

	winner := candidate{}
	for c := 0; c < chunks; c++ {
		if best[c].found && (!winner.found || best[c].score < winner.score) {
			winner = best[c]
		}
	}

	return winner.a, winner.b
}

// rowSums returns, per active position, the sum of distances to the other
// active clusters.
func (w *working) rowSums(workers int) []float64 {
	r := len(w.active)
	sums := make([]float64, r)
	forChunks(r, workers, func(_, lo, hi int) {
		for a := lo; a < hi; a++ {
			row := w.d[w.active[a]]
			s := 0.0
			for _, k := range w.active {
				s += row[k]
			}
			sums[a] = s
		}
	})

	return sums
}

// dist returns the distance between the clusters at active positions a and b.
func (w *working) dist(a, b int) float64 {
	return w.d[w.active[a]][w.active[b]]
}

// retire drops active position b; the slot's row is never read again.
func (w *working) retire(b int) {
	w.active = append(w.active[:b], w.active[b+1:]...)
}
