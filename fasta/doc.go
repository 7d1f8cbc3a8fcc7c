// Package fasta reads nucleotide sequences in FASTA format for the
// rnafold command line.
//
// Deliberately minimal: whole records into memory, no chunking, no
// multi-gigabyte genome streaming — folding is O(n²) memory anyway, so
// inputs are short by construction. Supported inputs:
//
//   - plain FASTA files
//   - gzip-compressed files (detected by magic number or .gz suffix)
//   - "-" for stdin
//   - headerless bare-sequence input, read as one anonymous record
//
// Sequences are returned verbatim; normalization (case, DNA T→U) is the
// caller's responsibility, see nucleo.Normalize.
package fasta
