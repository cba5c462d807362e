// SPDX-License-Identifier: MIT
package starttree

import (
	"errors"

	"github.com/katalvlaran/decenttree/logger"
)

// DefaultPrecision is the number of significant digits used for branch lengths
// when SetPrecision is never called.
const DefaultPrecision = 6

// Sentinel errors returned by builders and the registry.
var (
	// ErrTooFewTaxa indicates fewer than three labels.
	ErrTooFewTaxa = errors.New("starttree: at least 3 taxa are required")

	// ErrShape indicates a distance buffer whose length is not N*N.
	ErrShape = errors.New("starttree: distance buffer length is not N*N")

	// ErrNonFinite indicates a NaN or ±Inf distance.
	ErrNonFinite = errors.New("starttree: distance is NaN or infinite")

	// ErrEmptyName indicates registration under an empty name.
	ErrEmptyName = errors.New("starttree: algorithm name is empty")

	// ErrDuplicateName indicates a second registration under the same name.
	ErrDuplicateName = errors.New("starttree: algorithm already registered")

	// ErrNilFactory indicates registration of a nil factory.
	ErrNilFactory = errors.New("starttree: nil factory")
)

// Builder is the capability every tree-construction algorithm exposes.
// Instances are cheap and single-use; obtain a fresh one per construction
// from a Registry.
type Builder interface {
	// Name returns the name the builder is registered under.
	Name() string

	// SetPrecision sets the significant digits of branch lengths; values < 1 are ignored.
	SetPrecision(digits int)

	// SetLogger redirects progress reporting; nil is ignored.
	SetLogger(log logger.Logger)

	// BeSilent suppresses progress reporting for the rest of the builder's life.
	BeSilent()

	// ConstructTreeString builds a tree for labels over the flat row-major
	// distance buffer (len == len(labels)²) and returns it in Newick form.
	// The buffer is only read, never retained.
	ConstructTreeString(labels []string, distances []float64) (string, error)
}

// progress carries the state shared by all builders: identity, output
// precision and progress reporting.
type progress struct {
	name      string
	precision int
	log       logger.Logger
	silent    bool
}

func newProgress(name string) progress {
	return progress{name: name, precision: DefaultPrecision, log: logger.GetDefault()}
}

func (p *progress) Name() string { return p.name }

func (p *progress) SetPrecision(digits int) {
	if digits > 0 {
		p.precision = digits
	}
}

func (p *progress) SetLogger(log logger.Logger) {
	if log != nil {
		p.log = log
	}
}

func (p *progress) BeSilent() { p.silent = true }

// report logs one progress step at info level unless silenced.
func (p *progress) report(msg string, keyvals ...any) {
	if p.silent {
		return
	}
	p.log.Info(msg, append([]any{"algorithm", p.name}, keyvals...)...)
}
