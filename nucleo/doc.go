// Package nucleo provides the nucleotide alphabet primitives shared by the
// folding packages: the canonical Watson–Crick pairing predicate and input
// normalization helpers.
//
// The predicate is deliberately strict: only the four canonical RNA
// combinations (A–U, U–A, C–G, G–C) pair. Wobble pairs (G–U) and IUPAC
// ambiguity codes are treated as non-pairing, so unknown symbols simply
// fold as permanently unpaired bases rather than erroring out.
//
// Normalization (uppercasing, DNA T→U) is a caller-side concern: the fold
// core consumes sequences as-is, and lowercase letters will not pair.
//
// Complexity: every function in this package is O(1) per base, pure, and
// allocation-free except Normalize, which allocates its result once.
package nucleo
