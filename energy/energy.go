package energy

import "github.com/rnalab/rnafold/nucleo"

// Hairpin scores a hairpin loop of loopLen unpaired bases closed by a
// single pair.
//
// Returns p.Inf when loopLen < p.MinLoop (the loop cannot form), otherwise
// HairpinBase + HairpinPerBase·loopLen — strictly increasing in loopLen,
// so larger loops are always less favorable. Pure and total. O(1).
func (p Params) Hairpin(loopLen int) float64 {
	if loopLen < p.MinLoop {
		return p.Inf
	}

	return p.HairpinBase + p.HairpinPerBase*float64(loopLen)
}

// Stacking scores two directly adjacent nested pairs: an outer pair (a,b)
// and the inner pair (c,d) immediately inside it, with no unpaired bases
// between them.
//
// Returns the flat StackBonus when both pairs are independently canonical,
// p.Inf otherwise. Pure and total. O(1).
func (p Params) Stacking(a, b, c, d byte) float64 {
	if !nucleo.CanPair(a, b) || !nucleo.CanPair(c, d) {
		return p.Inf
	}

	return p.StackBonus
}

// Interior scores an interior loop or bulge: an outer pair (i,j) enclosing
// an inner pair (k,l) with i < k < l < j, separated by unpaired bases on
// one side (bulge) or both sides (interior loop).
//
// The penalty is InteriorBase + InteriorPerBase·u where u is the total
// unpaired count (k−i−1)+(j−l−1) — strictly increasing in u. Geometry is
// the caller's responsibility; the fold recurrence only enumerates valid
// (k,l) nestings. Pure and total. O(1).
func (p Params) Interior(i, j, k, l int) float64 {
	unpaired := (k - i - 1) + (j - l - 1)

	return p.InteriorBase + p.InteriorPerBase*float64(unpaired)
}
