package fold_test

import (
	"fmt"

	"github.com/rnalab/rnafold/energy"
	"github.com/rnalab/rnafold/fold"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFold
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Fold the 10-base sequence GCGCUUCGCC with the default model.
//	A three-pair G–C stem closes a minimal hairpin; the trailing C
//	stays unpaired.
//
// Options:
//   - defaults (MinLoop 3, MaxInterior 30, Tolerance 1e-6)
//
// Complexity: O(n²·MaxInterior²) time, O(n²) memory
func ExampleFold() {
	res, err := fold.Fold("GCGCUUCGCC", nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("structure=%s\nenergy=%.2f\n", res.Structure, res.Energy)
	// Output:
	// structure=(((...))).
	// energy=-2.70
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFold_options
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Disable the stacking bonus entirely; with nothing stabilizing a
//	stem, the optimal structure is fully unpaired.
//
// Options:
//   - Energy.StackBonus = 0 (stacking no longer favorable)
//
// Use case:
//
//	Sensitivity analysis of the energy constants.
func ExampleFold_options() {
	params := energy.DefaultParams()
	params.StackBonus = 0

	opts := fold.DefaultOptions(fold.WithEnergy(params))
	res, err := fold.Fold("GCGCUUCGCC", &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("structure=%s\nenergy=%.2f\n", res.Structure, res.Energy)
	// Output:
	// structure=..........
	// energy=0.00
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFoldBatch
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Fold three independent sequences across two workers. Results come
//	back in input order regardless of which worker finished first.
func ExampleFoldBatch() {
	seqs := []string{"GGGGAAACCCC", "AAAA", "GCGCUUCGCC"}

	results, err := fold.FoldBatch(seqs, nil, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, res := range results {
		fmt.Printf("%s %s %.2f\n", seqs[i], res.Structure, res.Energy)
	}
	// Output:
	// GGGGAAACCCC ((((...)))) -4.70
	// AAAA .... 0.00
	// GCGCUUCGCC (((...))). -2.70
}
