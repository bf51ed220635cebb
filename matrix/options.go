// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for materialization. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective settings.
//
// Design goals:
//   - Deterministic behavior: results never depend on the worker count.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers evaluates on the calling goroutine.
	DefaultWorkers = 1

	// DefaultFiniteCheck leaves NaN/±Inf results untouched: arithmetic edge
	// cases propagate with the element type's native semantics.
	DefaultFiniteCheck = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "matrix: WithWorkers: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	workers     int  // >= 1; DefaultWorkers
	finiteCheck bool // DefaultFiniteCheck
}

// WithWorkers splits materialization by rows across n goroutines.
// Each worker owns a disjoint row band of the output, so no locking is
// needed; the tree itself is only read. Panics when n < 1.
//
// The caller must not mutate any Ref-captured matrix while it runs.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithFiniteCheck makes materialization fail with ErrNaNInf on the first
// NaN or ±Inf result (e.g. a float division by zero). Integer element types
// are unaffected.
func WithFiniteCheck() Option {
	return func(o *Options) { o.finiteCheck = true }
}

// defaultOptions returns the zero-configuration settings.
func defaultOptions() Options {
	return Options{
		workers:     DefaultWorkers,
		finiteCheck: DefaultFiniteCheck,
	}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
