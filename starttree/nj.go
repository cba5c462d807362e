// SPDX-License-Identifier: MIT
package starttree

import "github.com/katalvlaran/decenttree/newick"

// NJName is the registry name of the neighbour-joining builder.
const NJName = "NJ"

// NJ - Neighbour Joining (Saitou & Nei, 1987)
//
// Algorithm Outline:
//  1. r = number of active clusters; S[i] = Σ_k D[i][k].
//  2. Pick the pair minimising Q(i,j) = (r-2)·D[i][j] − S[i] − S[j].
//  3. Branch lengths: li = D[i][j]/2 + (S[i]−S[j]) / (2(r−2)), lj = D[i][j] − li.
//  4. New cluster u replaces i: D[u][k] = (D[i][k] + D[j][k] − D[i][j]) / 2; j retires.
//  5. Repeat while r > 3, then join the last three around a trifurcating root
//     with lx = (Dxy + Dxz − Dyz)/2 and its rotations.
//
// Negative branch lengths are emitted as computed.
//
// Complexity:
//
//	Time   = O(N³)
//	Memory = O(N²)
type NJ struct {
	progress
}

// NewNJ returns a fresh neighbour-joining builder.
func NewNJ() Builder {
	return &NJ{progress: newProgress(NJName)}
}

// ConstructTreeString implements Builder.
func (nj *NJ) ConstructTreeString(labels []string, distances []float64) (string, error) {
	w, err := newWorking(labels, distances)
	if err != nil {
		return "", err
	}
	workers := WorkerCount()
	nj.report("constructing tree", "taxa", len(labels), "workers", workers)

	for r := len(w.active); r > 3; r = len(w.active) {
		sums := w.rowSums(workers)
		scale := float64(r - 2)
		a, b := w.bestPair(workers, func(a, b int) float64 {
			return scale*w.dist(a, b) - sums[a] - sums[b]
		})

		i, j := w.active[a], w.active[b]
		dij := w.d[i][j]
		li := dij/2 + (sums[a]-sums[b])/(2*scale)
		lj := dij - li

		for _, k := range w.active {
			if k == i || k == j {
				continue
			}
			duk := (w.d[i][k] + w.d[j][k] - dij) / 2
			w.d[i][k], w.d[k][i] = duk, duk
		}
		w.nodes[i] = newick.Join(w.nodes[i].WithLength(li), w.nodes[j].WithLength(lj))
		w.retire(b)
		nj.report("joined clusters", "left", i, "right", j, "remaining", r-1)
	}

	x, y, z := w.active[0], w.active[1], w.active[2]
	dxy, dxz, dyz := w.d[x][y], w.d[x][z], w.d[y][z]
	root := newick.Join(
		w.nodes[x].WithLength((dxy+dxz-dyz)/2),
		w.nodes[y].WithLength((dxy+dyz-dxz)/2),
		w.nodes[z].WithLength((dxz+dyz-dxy)/2),
	)
	tree, err := newick.Write(root, nj.precision)
	if err != nil {
		return "", err
	}
	nj.report("tree constructed", "taxa", len(labels))

	return tree, nil
}
