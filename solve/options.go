// SPDX-License-Identifier: MIT

// Package solve: functional configuration for the dense solver entry points.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
package solve

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRefineSteps is the number of iterative-refinement passes run after
	// every substitution. One pass costs one residual evaluation and one extra
	// O(n²) substitution per right-hand-side column.
	DefaultRefineSteps = 1

	// MaxRefineSteps bounds WithRefinement. Past a handful of steps the
	// residual stops moving in working precision.
	MaxRefineSteps = 16
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRefineStepsInvalid = "solve: WithRefinement: steps must be in [0, MaxRefineSteps]"
	panicTraceNil           = "solve: WithTrace: fn must not be nil"
)

// TraceFunc observes refinement. It is called once per right-hand-side column
// with step 0 and the residual norm ‖A·x − b‖₂ of the plain solve, then once
// per accepted refinement step with the new residual norm.
type TraceFunc func(col, step int, residual float64)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the resolved solver configuration.
type Options struct {
	refineSteps int
	trace       TraceFunc
}

// WithRefinement sets the number of refinement passes (0 disables).
// Panics when steps is negative or above MaxRefineSteps.
func WithRefinement(steps int) Option {
	if steps < 0 || steps > MaxRefineSteps {
		panic(panicRefineStepsInvalid)
	}

	return func(o *Options) { o.refineSteps = steps }
}

// WithoutRefinement skips refinement entirely, trading a slightly larger
// residual for one fewer O(n²) pass per column.
func WithoutRefinement() Option {
	return func(o *Options) { o.refineSteps = 0 }
}

// WithTrace installs fn as the refinement observer. Panics on nil fn.
func WithTrace(fn TraceFunc) Option {
	if fn == nil {
		panic(panicTraceNil)
	}

	return func(o *Options) { o.trace = fn }
}

// RefineSteps reports the configured number of refinement passes.
func (o Options) RefineSteps() int { return o.refineSteps }

// gatherOptions applies opts over the defaults. Later options win.
func gatherOptions(opts ...Option) Options {
	o := Options{refineSteps: DefaultRefineSteps}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
