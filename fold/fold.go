package fold

import (
	"github.com/rnalab/rnafold/nucleo"
)

// Fold predicts the MFE secondary structure of seq.
// Returns the dot-bracket annotation and the MFE, W[0,n−1].
//
// A nil opts folds with DefaultOptions(). Malformed options are rejected
// before any work (ErrBadTolerance, ErrBadMaxInterior, energy sentinels).
// An empty sequence yields ("", 0); a sequence with no pairable interval
// yields all dots and energy 0 — neither is an error. Symbols outside
// A/C/G/U are tolerated and simply never pair.
//
// On an internal traceback inconsistency (see ErrTraceback) the partially
// annotated structure and the MFE are still returned alongside the error
// for diagnosis; callers must treat the structure as unreliable.
//
// Example:
//
//	res, err := fold.Fold("GCGCUUCGCC", nil)
//	// res.Structure == "(((...)))."  res.Energy == -2.7
func Fold(seq string, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	n := len(seq)
	if n == 0 {
		return Result{Structure: "", Energy: 0}, nil
	}

	v, w := fillMatrices(seq, &o)
	mfe := w.at(0, n-1)

	structure, err := traceback(seq, &o, v, w)
	res := Result{Structure: string(structure), Energy: mfe}
	if err != nil {
		return res, err
	}

	return res, nil
}

// fillMatrices populates the pair-energy table V and the unconstrained
// table W for seq, in strictly increasing interval length so that every
// recurrence input is finalized before use. Total over well-formed input:
// no error conditions. Time O(n²·MaxInterior²) worst case O(n⁴); memory
// O(n²) per table.
func fillMatrices(seq string, o *Options) (v, w *triMatrix) {
	n := len(seq)
	inf := o.Energy.Inf
	minLoop := o.Energy.MinLoop

	// V starts at the Inf sentinel (pair impossible until proven
	// otherwise); W starts at 0, which already covers the W[i,i] base
	// case and every interval too short to hold a pair.
	v = newTriMatrix(n, inf)
	w = newTriMatrix(n, 0)

	for l := 1; l < n; l++ {
		for i := 0; i+l < n; i++ {
			j := i + l

			// --- V[i,j]: endpoints constrained to pair -------------
			if l > minLoop && nucleo.CanPair(seq[i], seq[j]) {
				// Case 1: i,j close a hairpin with no internal pairs.
				// l−1 ≥ MinLoop holds here, so the hairpin is finite.
				best := o.Energy.Hairpin(l - 1)

				// Case 2: stacking on the directly nested pair. Needs
				// room for an inner pair: i+1 < j−1.
				if l > 2 && nucleo.CanPair(seq[i+1], seq[j-1]) {
					cand := o.Energy.Stacking(seq[i], seq[j], seq[i+1], seq[j-1]) + v.at(i+1, j-1)
					if cand < best {
						best = cand
					}
				}

				// Case 3: interior loop / bulge around an inner pair
				// (k,kj), unpaired budget capped at MaxInterior. For a
				// fixed k the budget grows as kj moves left, so the
				// scan walks kj downward and stops at the cap.
				for k := i + 1; k < j; k++ {
					if k-i-1 > o.MaxInterior {
						break
					}
					for kj := j - 1; kj > k; kj-- {
						if (k-i-1)+(j-kj-1) > o.MaxInterior {
							break
						}
						inner := v.at(k, kj)
						if inner >= inf {
							continue
						}
						cand := inner + o.Energy.Interior(i, j, k, kj)
						if cand < best {
							best = cand
						}
					}
				}

				v.set(i, j, best)
			}

			// --- W[i,j]: unconstrained endpoints -------------------
			best := v.at(i, j) // i and j paired
			if c := w.at(i+1, j); c < best {
				best = c // i unpaired
			}
			if c := w.at(i, j-1); c < best {
				best = c // j unpaired
			}
			for k := i; k < j; k++ { // bifurcation
				if c := w.at(i, k) + w.at(k+1, j); c < best {
					best = c
				}
			}
			w.set(i, j, best)
		}
	}

	return v, w
}
