// Rnafold predicts minimum-free-energy RNA secondary structures and
// prints them in dot-bracket notation.
//
// Usage:
//
//	# Fold a literal sequence
//	rnafold fold --seq GCGCUUCGCC
//
//	# Fold every record of a FASTA file (plain or gzip)
//	rnafold fold input.fasta
//
//	# Read FASTA from stdin
//	cat input.fasta | rnafold fold -
//
//	# Override energy-model constants from a YAML file
//	rnafold fold --params model.yaml input.fasta
//
// Input is normalized before folding (uppercased, DNA T mapped to U);
// symbols outside A/C/G/U are tolerated and simply never pair.
package main

import (
	_ "go.uber.org/automaxprocs"
)

func main() {
	Execute()
}
