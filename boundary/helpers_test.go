// SPDX-License-Identifier: MIT
package boundary_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/decenttree/boundary"
	"github.com/katalvlaran/decenttree/logger"
	"github.com/katalvlaran/decenttree/starttree"
	"github.com/stretchr/testify/require"
)

// spyRecord captures what the bridge handed to a spy builder.
type spyRecord struct {
	calls     int
	silent    bool
	precision int
	labels    []string
	distances []float64
}

// spyBuilder is a Builder that records its inputs and returns a canned result.
type spyBuilder struct {
	name string
	rec  *spyRecord
	tree string
	err  error
}

func (s *spyBuilder) Name() string              { return s.name }
func (s *spyBuilder) SetPrecision(digits int)   { s.rec.precision = digits }
func (s *spyBuilder) SetLogger(_ logger.Logger) {}
func (s *spyBuilder) BeSilent()                 { s.rec.silent = true }
func (s *spyBuilder) ConstructTreeString(labels []string, d []float64) (string, error) {
	s.rec.calls++
	s.rec.labels = labels
	s.rec.distances = d

	return s.tree, s.err
}

var errSpyFailure = errors.New("spy: refused")

// spyBridge returns a bridge over a private registry holding TRIVIAL, FAIL
// and EMPTY spy builders, plus the shared record.
func spyBridge(t *testing.T) (*boundary.Bridge, *starttree.Registry, *spyRecord) {
	t.Helper()
	rec := &spyRecord{}
	reg := starttree.NewRegistry()
	add := func(name, tree string, err error) {
		require.NoError(t, reg.Register(name, "spy", func() starttree.Builder {
			return &spyBuilder{name: name, rec: rec, tree: tree, err: err}
		}))
	}
	add("TRIVIAL", "(A,B,C);", nil)
	add("FAIL", "(partial", errSpyFailure)
	add("EMPTY", "", nil)

	return boundary.New(boundary.WithRegistry(reg), boundary.WithLogger(logger.Discard())), reg, rec
}

// abc and abcDistances are the three-taxon fixture used throughout.
var (
	abc          = []string{"A", "B", "C"}
	abcDistances = []float64{0, 1, 2, 1, 0, 3, 2, 3, 0}
)

// requireKind asserts err is a *boundary.Error of the given kind and returns it.
func requireKind(t *testing.T, err error, kind error) *boundary.Error {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	e, ok := boundary.AsError(err)
	require.True(t, ok, "want *boundary.Error, got %T", err)
	require.Contains(t, err.Error(), "Error: ")

	return e
}
