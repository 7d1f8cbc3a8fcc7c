// Package energy scores the three loop classes of the fold recurrences:
// hairpin loops, stacked pairs and interior loops/bulges.
//
// The model is a deliberately simplified, sequence-composition-agnostic
// placeholder: constant and per-base penalties plus a flat stacking bonus,
// in arbitrary energy units. It is NOT a calibrated thermodynamic set —
// a nearest-neighbor table (see e.g. SantaLucia-style stacking parameters)
// can replace Params without changing the fold contract, as long as every
// scoring function stays pure and total over its domain.
//
// Scoring conventions:
//
//   - Negative values are stabilizing (favorable), positive destabilizing.
//   - Geometrically impossible conformations score Params.Inf, a very
//     large finite sentinel — never an error and never math.Inf, so sums
//     stay finite and comparable.
//   - Hairpin scores grow monotonically with loop length; interior-loop
//     scores grow monotonically with the total unpaired count.
//
// Errors (sentinel):
//
//	– ErrBadMinLoop  if Params.MinLoop is negative.
//	– ErrBadInf      if Params.Inf is not positive.
//
// Both are reported by Params.Validate, which fold.Fold calls before any
// matrix fill so that a malformed configuration is rejected up front.
package energy
