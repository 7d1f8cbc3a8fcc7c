package fold

import (
	"fmt"
	"math"

	"github.com/rnalab/rnafold/nucleo"
)

// frame is one pending traceback interval. paired distinguishes the
// endpoint-constrained walk over V from the unconstrained walk over W.
type frame struct {
	i, j   int
	paired bool
}

// near reports whether a and b agree within the absolute tolerance eps.
// Energies are sums of real-valued penalties, so exact equality is
// unreliable; every traceback decision goes through this comparison.
func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// traceback replays the fill's optimization decisions over the finalized
// matrices and returns the dot-bracket annotation. It never re-derives an
// optimum: each cell is matched against its candidate recurrence terms in
// a fixed priority order, and the first match within o.Tolerance wins, so
// tied optima always resolve the same way.
//
// The walk is iterative over an explicit work stack — a unified form of
// the two mutually recursive recovery procedures — so call-stack depth
// stays O(1) regardless of sequence length. Every transition strictly
// shrinks its interval, so termination is guaranteed.
//
// If no case matches a cell (possible only when the energy model and the
// recurrence disagree, or the tolerance is too tight), the partial
// annotation is returned together with an error wrapping ErrTraceback and
// naming the offending cell.
func traceback(seq string, o *Options, v, w *triMatrix) ([]byte, error) {
	n := len(seq)
	structure := make([]byte, n)
	for i := range structure {
		structure[i] = Unpaired
	}

	eps := o.Tolerance
	stack := make([]frame, 0, n)
	stack = append(stack, frame{i: 0, j: n - 1, paired: false})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.paired {
			var err error
			stack, err = stepPaired(seq, o, v, structure, stack, f)
			if err != nil {
				return structure, err
			}

			continue
		}

		i, j := f.i, f.j
		if i >= j {
			continue // empty or single-base interval
		}
		cur := w.at(i, j)

		// Priority 1: i unpaired.
		if near(cur, w.at(i+1, j), eps) {
			stack = append(stack, frame{i: i + 1, j: j})

			continue
		}
		// Priority 2: j unpaired.
		if near(cur, w.at(i, j-1), eps) {
			stack = append(stack, frame{i: i, j: j - 1})

			continue
		}
		// Priority 3: leftmost bifurcation into independent halves.
		split := -1
		for k := i; k < j; k++ {
			if near(cur, w.at(i, k)+w.at(k+1, j), eps) {
				split = k

				break
			}
		}
		if split >= 0 {
			stack = append(stack, frame{i: split + 1, j: j})
			stack = append(stack, frame{i: i, j: split})

			continue
		}
		// Priority 4: endpoints pair.
		if nucleo.CanPair(seq[i], seq[j]) && near(cur, v.at(i, j), eps) {
			structure[i], structure[j] = Open, Close
			stack = append(stack, frame{i: i, j: j, paired: true})

			continue
		}

		return structure, fmt.Errorf("fold: W[%d,%d]=%g: %w", i, j, cur, ErrTraceback)
	}

	return structure, nil
}

// stepPaired resolves one endpoint-constrained cell: the pair (f.i,f.j) is
// already marked, and the cell's V value is matched against the hairpin,
// stacking and interior-loop cases in that order (mirroring the fill's
// candidate enumeration). Returns the updated work stack.
func stepPaired(seq string, o *Options, v *triMatrix, structure []byte, stack []frame, f frame) ([]frame, error) {
	i, j := f.i, f.j
	cur := v.at(i, j)
	eps := o.Tolerance

	// Terminal: i,j close a hairpin; nothing further to recover.
	if near(cur, o.Energy.Hairpin(j-i-1), eps) {
		return stack, nil
	}

	// Stacking on the directly nested pair. Needs room for an inner
	// pair: i+1 < j−1.
	if j-i > 2 && nucleo.CanPair(seq[i+1], seq[j-1]) {
		cand := o.Energy.Stacking(seq[i], seq[j], seq[i+1], seq[j-1]) + v.at(i+1, j-1)
		if near(cur, cand, eps) {
			structure[i+1], structure[j-1] = Open, Close

			return append(stack, frame{i: i + 1, j: j - 1, paired: true}), nil
		}
	}

	// Interior-loop candidates, in the fill's enumeration order.
	for k := i + 1; k < j; k++ {
		if k-i-1 > o.MaxInterior {
			break
		}
		for kj := j - 1; kj > k; kj-- {
			if (k-i-1)+(j-kj-1) > o.MaxInterior {
				break
			}
			inner := v.at(k, kj)
			if inner >= o.Energy.Inf {
				continue
			}
			if near(cur, inner+o.Energy.Interior(i, j, k, kj), eps) {
				structure[k], structure[kj] = Open, Close

				return append(stack, frame{i: k, j: kj, paired: true}), nil
			}
		}
	}

	// Unreachable for matrices produced by fillMatrices with the same
	// options; reachable only on a model/recurrence mismatch or an overly
	// tight tolerance. Surface it instead of truncating silently.
	return stack, fmt.Errorf("fold: V[%d,%d]=%g: %w", i, j, cur, ErrTraceback)
}
