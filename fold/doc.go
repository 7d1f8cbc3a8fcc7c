// Package fold computes minimum-free-energy (MFE) RNA secondary
// structures with a two-matrix dynamic program and recovers the optimal
// pairing as a dot-bracket annotation.
//
// Algorithm Outline:
//
//  1. Let n = len(seq). Allocate two triangular n×n tables:
//     V[i,j] — minimum energy over [i,j] given that i and j pair;
//     W[i,j] — minimum energy over [i,j] with unconstrained endpoints.
//  2. Fill both tables in strictly increasing interval length l = j−i,
//     so every recurrence input (a shorter interval, or the same
//     interval's V) is finalized before it is read.
//  3. V[i,j] (only when seq[i]/seq[j] pair canonically and l exceeds the
//     minimum loop size; otherwise the Inf sentinel) is the minimum of:
//     – Hairpin(j−i−1)                         i,j close a hairpin;
//     – Stacking(i,j,i+1,j−1) + V[i+1,j−1]     adjacent nested pair;
//     – min over inner pairs (k,l), i<k<l<j, with total unpaired count
//     (k−i−1)+(j−l−1) ≤ MaxInterior:
//     V[k,l] + Interior(i,j,k,l)             interior loop / bulge.
//  4. W[i,j] = min(V[i,j], W[i+1,j], W[i,j−1],
//     min over splits k in [i,j) of W[i,k] + W[k+1,j]).
//  5. The MFE is W[0,n−1]. The traceback replays — never re-derives —
//     each cell's winning case by tolerance comparison, marking one pair
//     per paired cell, and emits '(', ')' and '.' per position.
//
// Tie-breaking:
//
//	Multiple recurrence terms can tie within Tolerance. The traceback
//	resolves ties in a fixed priority order (unpaired-i, unpaired-j,
//	leftmost bifurcation, endpoint pair; hairpin, stacking, interior in
//	fill-enumeration order), so output is reproducible byte for byte.
//
// Complexity:
//
//	Time   = O(n²·L²) where L = MaxInterior+2 bounds the interior-loop
//	         search per cell (worst case O(n⁴) with L unbounded).
//	Memory = O(n²) per table.
//
// The MaxInterior cap truncates the interior-loop candidate space. That is
// a modeling approximation (biological loops are short in practice), not a
// correctness bug; raising the cap can only lower the reported MFE.
//
// Errors (sentinel):
//
//	– ErrBadTolerance   if Tolerance ≤ 0.
//	– ErrBadMaxInterior if MaxInterior < 0.
//	– energy.ErrBadMinLoop / energy.ErrBadInf for malformed Params.
//	– ErrTraceback      if no recurrence case matches a cell within
//	  Tolerance — an internal-consistency fault (energy model and
//	  recurrence disagree, or Tolerance is too tight), reported with the
//	  offending interval rather than silently truncating the structure.
//
// Example usage:
//
//	res, err := fold.Fold("GCGCUUCGCC", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Structure, res.Energy)
package fold
