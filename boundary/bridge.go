// SPDX-License-Identifier: MIT
package boundary

import (
	"github.com/katalvlaran/decenttree/ndarray"
	"github.com/katalvlaran/decenttree/starttree"
)

// DefaultPrecision is used when Request.Precision ≤ 0.
const DefaultPrecision = starttree.DefaultPrecision

// minSequences is the smallest number of taxa a tree can be built for.
const minSequences = 3

// Request is one tree-construction call.
type Request struct {
	// Algorithm is the registry name, e.g. "NJ". Required.
	Algorithm string `mapstructure:"algorithm"`

	// Sequences holds N ≥ 3 text-coercible labels. Required.
	Sequences any `mapstructure:"sequences"`

	// Distances is the flat row-major N×N matrix: an ndarray.Array (borrowed)
	// or any sequence of numbers (copied). Required.
	Distances any `mapstructure:"distances"`

	// NumberOfThreads > 0 sets the process-wide worker count; ≤ 0 leaves it.
	NumberOfThreads int `mapstructure:"number_of_threads"`

	// Precision is the number of significant digits in branch lengths.
	Precision int `mapstructure:"precision"`

	// Verbosity 0 silences builder progress reporting.
	Verbosity int `mapstructure:"verbosity"`
}

// Bridge validates requests and dispatches them to registered builders.
// A Bridge holds no per-call state and is safe for concurrent use.
type Bridge struct {
	opts Options
}

// New returns a Bridge configured by opts.
func New(opts ...Option) *Bridge {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Bridge{opts: o}
}

// ConstructTree is New(opts...).ConstructTree(req).
func ConstructTree(req Request, opts ...Option) (string, error) {
	return New(opts...).ConstructTree(req)
}

// validated is a request that passed every check.
type validated struct {
	builder   starttree.Builder
	labels    []string
	distances Buffer
}

// ConstructTree validates req, applies the thread count, runs the builder
// and returns its Newick output. Every failure is an *Error.
func (b *Bridge) ConstructTree(req Request) (string, error) {
	log := b.opts.Logger
	v, err := b.validate(req)
	if err != nil {
		log.Debug("request rejected", "algorithm", req.Algorithm, "err", err)

		return "", err
	}
	log.Debug("request accepted",
		"algorithm", req.Algorithm,
		"taxa", len(v.labels),
		"borrowed", v.distances.Borrowed,
	)

	b.applyThreads(req.NumberOfThreads)

	return b.invoke(req, v)
}

// validate runs the checks in order and returns at the first failure.
// Complexity: O(N²) for the owned path, O(N) for the borrowed one.
func (b *Bridge) validate(req Request) (*validated, error) {
	if req.Algorithm == "" {
		return nil, newError(ErrMissingAlgorithmName, "Algorithm name not specified")
	}
	builder, ok := b.opts.Registry.New(req.Algorithm)
	if !ok {
		return nil, newError(ErrUnknownAlgorithm, "Algorithm %s not found.", req.Algorithm)
	}
	if absent(req.Distances) {
		return nil, newError(ErrMissingDistances, "No distances were supplied")
	}

	if req.Sequences == nil {
		return nil, newError(ErrMissingSequences, "sequences was not supplied.")
	}
	labels, err := Strings("sequences", req.Sequences)
	if err != nil {
		return nil, err
	}
	if len(labels) < minSequences {
		return nil, newError(ErrTooFewSequences,
			"sequences contains only %d sequences (must have at least %d).", len(labels), minSequences)
	}

	buf, err := distancesBuffer(req.Distances)
	if err != nil {
		return nil, err
	}
	n := len(labels)
	if buf.Len() != n*n {
		return nil, newError(ErrDistanceMatrixSizeMismatch,
			"There are %d sequences but the distance matrix contains %d elements (should be %d).",
			n, buf.Len(), n*n)
	}

	return &validated{builder: builder, labels: labels, distances: buf}, nil
}

// absent reports a missing distance argument: nil, or a typed nil array.
func absent(v any) bool {
	if v == nil {
		return true
	}
	if a, ok := v.(ndarray.Array); ok {
		return ndarray.ValidateNotNil(a) != nil
	}

	return false
}

// applyThreads sets the process-wide worker count for n > 0. A count above
// the platform maximum is ignored without error.
func (b *Bridge) applyThreads(n int) {
	if n <= 0 {
		return
	}
	if !starttree.SetWorkerCount(n) {
		b.opts.Logger.Debug("thread count ignored", "requested", n, "max", starttree.MaxWorkers())
	}
}

// invoke runs the builder. A builder error or an empty tree is
// ErrConstructionFailed and no text is returned.
func (b *Bridge) invoke(req Request, v *validated) (string, error) {
	builder := v.builder
	if req.Verbosity == 0 {
		builder.BeSilent()
	}
	builder.SetLogger(b.opts.Logger)
	precision := req.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}
	builder.SetPrecision(precision)

	tree, err := builder.ConstructTreeString(v.labels, v.distances.Data)
	if err != nil || tree == "" {
		e := newError(ErrConstructionFailed, "Call to ConstructTreeString failed for algorithm %s.", req.Algorithm)
		if err != nil {
			e = newError(ErrConstructionFailed, "Call to ConstructTreeString failed for algorithm %s: %v", req.Algorithm, err)
			e.Cause = err
		}
		b.opts.Logger.Debug("construction failed", "algorithm", req.Algorithm, "err", err)

		return "", e
	}

	return tree, nil
}
