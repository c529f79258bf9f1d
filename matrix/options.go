// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - validateNaNInf is a per-Dense policy: it is captured at construction
//     (NewDense, RowBuilder.Build, FromRows) and carried by Clone/CopyOf.
//   - singularCheck is consumed by Inverse only.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Fill/SetRow.
	// Off by default: cells are plain IEEE-754 doubles.
	DefaultValidateNaNInf = false

	// DefaultSingularCheck makes Inverse verify that the reduced left block is
	// the identity and report ErrSingular otherwise.
	DefaultSingularCheck = true
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	singularCheck  bool // DefaultSingularCheck
}

// ValidateNaNInf reports whether the finite-only numeric policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// SingularCheck reports whether Inverse detects singular input.
func (o Options) SingularCheck() bool { return o.singularCheck }

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation.
// Dense values created under this option reject NaN/±Inf in Set, SetRow and
// Fill with ErrNaNInf.
//
// AI-Hints:
//   - Turn it on at ingestion boundaries (files, network) to fail fast on dirty data.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSingularCheck makes Inverse return ErrSingular when the input has no
// inverse (the default).
func WithSingularCheck() Option {
	return func(o *Options) { o.singularCheck = true }
}

// WithoutSingularCheck makes Inverse skip singularity detection and return
// the right block of the reduced [A | I] as-is. For singular input that block
// is meaningless but well-shaped.
func WithoutSingularCheck() Option {
	return func(o *Options) { o.singularCheck = false }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins semantics; pure function.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		singularCheck:  DefaultSingularCheck,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped so callers may build option slices conditionally.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
