// Package rnafold predicts minimum-free-energy (MFE) RNA secondary
// structures — from a raw nucleotide string to a dot-bracket annotation
// and its folding energy.
//
// 🚀 What is rnafold?
//
//	A small, focused library implementing the classic two-matrix
//	dynamic-programming fold (Zuker-style recurrences over a simplified
//	energy model):
//		• nucleo/ — alphabet helpers & the Watson–Crick pairing predicate
//		• energy/ — hairpin, stacking and interior-loop scoring functions
//		• fold/   — DP matrix builder, traceback and the public Fold API
//		• fasta/  — minimal FASTA ingestion for the CLI
//		• cmd/rnafold — command-line front end
//
// ✨ Why choose rnafold?
//
//   - Minimal API — one call, Fold(seq, opts), returns structure + energy
//   - Deterministic — fixed tie-breaking order, reproducible output
//   - Tunable — loop-size bounds, tolerance and energy constants via Options
//   - Pure Go — no cgo, no hidden deps in the library packages
//
// Quick ASCII example:
//
//	sequence   G C G C U U C G C C
//	structure  ( ( ( . . . ) ) ) .
//
// The energy model is a deliberately simplified placeholder (constant and
// per-base penalties, a flat stacking bonus); swap energy.Params for a
// nearest-neighbor table without touching the fold recurrences.
//
// See fold/doc.go for the algorithm walkthrough and complexity notes.
package rnafold
