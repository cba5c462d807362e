// SPDX-License-Identifier: MIT

// Package phylip reads square distance matrices in relaxed PHYLIP format.
//
// The input is whitespace separated: the taxon count N, then N rows of a
// label followed by N distances. Rows may wrap across lines. Labels may not
// contain whitespace.
//
//	3
//	A 0 1 2
//	B 1 0 3
//	C 2 3 0
//
// Read returns the distances as an N×N Float64 ndarray.Dense, ready for the
// borrowed path of package boundary.
package phylip

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/decenttree/ndarray"
)

// Sentinel errors.
var (
	// ErrHeader indicates a missing, non-integer or non-positive taxon count.
	ErrHeader = errors.New("phylip: invalid header")

	// ErrRow indicates a truncated row or unexpected trailing data.
	ErrRow = errors.New("phylip: malformed row")

	// ErrValue indicates a distance that is not a number.
	ErrValue = errors.New("phylip: invalid distance")
)

// maxToken bounds a single label or number.
const maxToken = 1 << 20

// Read parses one matrix from r.
// Stage 1 (Header): the first token is N ≥ 1 with N² representable.
// Stage 2 (Rows): N × (label + N floats), appended row-major as tokens arrive,
// so a header larger than the input never allocates N² up front.
// Stage 3 (Finalize): no tokens may follow; wrap the buffer as N×N.
//
// Errors: ErrHeader, ErrRow, ErrValue, or the reader's own error.
// Complexity: O(N²) time and memory.
func Read(r io.Reader) ([]string, *ndarray.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxToken)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool, error) {
		if sc.Scan() {
			return sc.Text(), true, nil
		}

		return "", false, sc.Err()
	}

	tok, ok, err := next()
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, fmt.Errorf("%w: empty input", ErrHeader)
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 {
		return nil, nil, fmt.Errorf("%w: taxon count %q", ErrHeader, tok)
	}
	if n > math.MaxInt/n {
		return nil, nil, fmt.Errorf("%w: taxon count %d overflows the matrix size", ErrHeader, n)
	}

	var (
		labels []string
		data   []float64
	)
	for i := 0; i < n; i++ {
		label, ok, err := next()
		if err != nil {
			return nil, nil, err
		} else if !ok {
			return nil, nil, fmt.Errorf("%w: row %d: missing label", ErrRow, i+1)
		}
		labels = append(labels, label)
		for j := 0; j < n; j++ {
			if tok, ok, err = next(); err != nil {
				return nil, nil, err
			} else if !ok {
				return nil, nil, fmt.Errorf("%w: row %d (%s): %d of %d distances", ErrRow, i+1, labels[i], j, n)
			}
			v, perr := strconv.ParseFloat(tok, 64)
			if perr != nil {
				return nil, nil, fmt.Errorf("%w: row %d (%s) column %d: %q", ErrValue, i+1, labels[i], j+1, tok)
			}
			data = append(data, v)
		}
	}

	if tok, ok, err = next(); err != nil {
		return nil, nil, err
	} else if ok {
		return nil, nil, fmt.Errorf("%w: unexpected %q after %d rows", ErrRow, tok, n)
	}

	dist, err := ndarray.NewFloat64(data, n, n)
	if err != nil {
		return nil, nil, err
	}

	return labels, dist, nil
}
