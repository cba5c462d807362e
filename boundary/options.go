// SPDX-License-Identifier: MIT
package boundary

import (
	"github.com/katalvlaran/decenttree/logger"
	"github.com/katalvlaran/decenttree/starttree"
)

// Options configures a Bridge.
type Options struct {
	// Registry resolves algorithm names. Default: starttree.Default.
	Registry *starttree.Registry

	// Logger receives the bridge's debug diagnostics and, when verbosity > 0,
	// the builder's progress reports. Default: logger.GetDefault().
	Logger logger.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithRegistry resolves algorithm names against r instead of starttree.Default.
func WithRegistry(r *starttree.Registry) Option {
	return func(o *Options) {
		if r != nil {
			o.Registry = r
		}
	}
}

// WithLogger routes diagnostics and builder progress to log.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// DefaultOptions returns the process-wide defaults.
func DefaultOptions() Options {
	return Options{Registry: starttree.Default, Logger: logger.GetDefault()}
}
