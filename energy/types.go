package energy

import "errors"

// Sentinel errors returned by Params.Validate.
var (
	// ErrBadMinLoop indicates a negative minimum hairpin loop size.
	ErrBadMinLoop = errors.New("energy: MinLoop must be non-negative")

	// ErrBadInf indicates a non-positive "impossible" sentinel energy.
	// The sentinel must exceed any realizable sum of real loop energies.
	ErrBadInf = errors.New("energy: Inf sentinel must be positive")
)

// Default model constants. Arbitrary units; see the package doc for the
// placeholder-model caveat.
const (
	// DefaultMinLoop is the minimum number of unpaired bases a hairpin
	// loop must enclose. Steric strain makes shorter loops unrealizable
	// in real RNA.
	DefaultMinLoop = 3

	// DefaultInf is the finite "impossible" sentinel. It must dominate
	// any realizable energy sum while staying finite, so that comparing
	// and adding candidate energies never produces NaN or ±Inf.
	DefaultInf = 1e9

	// DefaultHairpinBase is the constant closing penalty of a hairpin.
	DefaultHairpinBase = 1.0

	// DefaultHairpinPerBase is the per-unpaired-base hairpin penalty.
	DefaultHairpinPerBase = 0.1

	// DefaultStackBonus is the flat stabilization of two adjacent
	// nested pairs.
	DefaultStackBonus = -2.0

	// DefaultInteriorBase is the constant interior-loop/bulge penalty.
	DefaultInteriorBase = 1.0

	// DefaultInteriorPerBase is the per-unpaired-base interior penalty.
	DefaultInteriorPerBase = 0.5
)

// Params holds the tunable constants of the simplified energy model.
//
// MinLoop         – minimum hairpin loop size (unpaired bases); pairs
//
//	closing a shorter span are impossible.
//
// Inf             – finite sentinel for impossible conformations.
// HairpinBase     – constant hairpin penalty.
// HairpinPerBase  – additional hairpin penalty per unpaired base.
// StackBonus      – bonus (negative) for two stacked canonical pairs.
// InteriorBase    – constant interior-loop penalty.
// InteriorPerBase – additional interior penalty per unpaired base.
type Params struct {
	MinLoop         int     `yaml:"min_loop"`
	Inf             float64 `yaml:"inf"`
	HairpinBase     float64 `yaml:"hairpin_base"`
	HairpinPerBase  float64 `yaml:"hairpin_per_base"`
	StackBonus      float64 `yaml:"stack_bonus"`
	InteriorBase    float64 `yaml:"interior_base"`
	InteriorPerBase float64 `yaml:"interior_per_base"`
}

// DefaultParams returns the reference constants of the placeholder model.
// Use this as a starting point and override individual fields as needed.
func DefaultParams() Params {
	return Params{
		MinLoop:         DefaultMinLoop,
		Inf:             DefaultInf,
		HairpinBase:     DefaultHairpinBase,
		HairpinPerBase:  DefaultHairpinPerBase,
		StackBonus:      DefaultStackBonus,
		InteriorBase:    DefaultInteriorBase,
		InteriorPerBase: DefaultInteriorPerBase,
	}
}

// Validate checks the structural constraints of the parameter set.
// Returns ErrBadMinLoop or ErrBadInf on the first violation, nil otherwise.
func (p Params) Validate() error {
	if p.MinLoop < 0 {
		return ErrBadMinLoop
	}
	if p.Inf <= 0 {
		return ErrBadInf
	}

	return nil
}
