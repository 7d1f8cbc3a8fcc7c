package fold

import (
	"errors"

	"github.com/rnalab/rnafold/energy"
)

// Sentinel errors returned by Fold and FoldBatch.
var (
	// ErrBadTolerance indicates a non-positive floating-point comparison
	// tolerance. The traceback decides control flow by tolerance matching,
	// so a zero or negative value would make tie detection meaningless.
	ErrBadTolerance = errors.New("fold: Tolerance must be positive")

	// ErrBadMaxInterior indicates a negative interior-loop unpaired-base
	// budget.
	ErrBadMaxInterior = errors.New("fold: MaxInterior must be non-negative")

	// ErrTraceback indicates that no recurrence case matched a matrix cell
	// within Tolerance. A correct fill can only trigger this when the
	// energy model and the recurrence disagree or the tolerance is too
	// tight, so it is surfaced as a distinguished fault instead of
	// silently emitting a partially annotated structure.
	ErrTraceback = errors.New("fold: traceback matches no recurrence case")
)

// Structure annotation symbols (dot-bracket notation).
const (
	// Unpaired marks a base with no partner.
	Unpaired = '.'

	// Open marks a base paired with a downstream (higher-index) partner.
	Open = '('

	// Close marks a base paired with an upstream (lower-index) partner.
	Close = ')'
)

// DefaultMaxInterior caps the total unpaired bases of an interior loop.
// Purely a performance bound; see the package doc.
const DefaultMaxInterior = 30

// DefaultTolerance is the absolute tolerance for traceback tie detection.
const DefaultTolerance = 1e-6

// Options configures a fold.
//
// Energy      – energy-model constants, including the minimum loop size
//
//	and the Inf sentinel (see energy.DefaultParams).
//
// MaxInterior – maximum total unpaired bases (k−i−1)+(j−l−1) searched per
//
//	interior loop. Must be ≥ 0. Default 30.
//
// Tolerance   – absolute tolerance used when the traceback compares a
//
//	stored optimum against candidate recurrence terms. Must
//	be > 0. Default 1e-6. Part of the public contract: it
//	decides which of several tied optimal structures is
//	reported.
type Options struct {
	Energy      energy.Params
	MaxInterior int
	Tolerance   float64
}

// Option represents a functional option for configuring Fold.
type Option func(*Options)

// WithEnergy replaces the energy-model constants.
func WithEnergy(p energy.Params) Option {
	return func(o *Options) {
		o.Energy = p
	}
}

// WithMaxInterior sets the interior-loop unpaired-base budget.
func WithMaxInterior(n int) Option {
	return func(o *Options) {
		o.MaxInterior = n
	}
}

// WithTolerance sets the traceback comparison tolerance.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		o.Tolerance = eps
	}
}

// DefaultOptions returns an Options struct initialized with the reference
// defaults, optionally adjusted by functional overrides.
//
// Defaults:
//   - Energy:      energy.DefaultParams() (MinLoop 3, Inf 1e9).
//   - MaxInterior: DefaultMaxInterior (30).
//   - Tolerance:   DefaultTolerance (1e-6).
func DefaultOptions(opts ...Option) Options {
	o := Options{
		Energy:      energy.DefaultParams(),
		MaxInterior: DefaultMaxInterior,
		Tolerance:   DefaultTolerance,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// validate rejects malformed configurations before any matrix fill.
func (o Options) validate() error {
	if o.Tolerance <= 0 {
		return ErrBadTolerance
	}
	if o.MaxInterior < 0 {
		return ErrBadMaxInterior
	}

	return o.Energy.Validate()
}

// Result holds the outcome of one fold.
type Result struct {
	// Structure is the dot-bracket annotation, same length as the input.
	// Properly nested by construction: the recurrence only ever combines
	// nested or disjoint sub-intervals.
	Structure string

	// Energy is the predicted MFE, W[0,n−1] (0 for an empty sequence).
	Energy float64
}
