package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rnalab/rnafold/fasta"
	"github.com/rnalab/rnafold/fold"
	"github.com/rnalab/rnafold/nucleo"
)

var (
	foldSeq         string
	foldWorkers     int
	foldMaxInterior int
	foldTolerance   float64
	foldParamsFile  string
)

var foldCmd = &cobra.Command{
	Use:   "fold [file]",
	Short: "Fold sequences and print dot-bracket structures",
	Long: `Fold reads nucleotide sequences — from --seq, a FASTA file (plain or
gzip-compressed), or stdin ("-") — and prints one predicted structure per
sequence:

  >id            (when the record has one)
  GCGCUUCGCC
  (((...))).    (-2.70)

Sequences are normalized before folding: uppercased, DNA T mapped to U.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFold,
}

func init() {
	foldCmd.Flags().StringVarP(&foldSeq, "seq", "s", "", "fold this literal sequence instead of reading a file")
	foldCmd.Flags().IntVarP(&foldWorkers, "workers", "w", 0, "parallel folds (0 = GOMAXPROCS)")
	foldCmd.Flags().IntVar(&foldMaxInterior, "max-interior", fold.DefaultMaxInterior, "interior-loop unpaired-base budget")
	foldCmd.Flags().Float64Var(&foldTolerance, "tolerance", fold.DefaultTolerance, "traceback comparison tolerance")
	foldCmd.Flags().StringVarP(&foldParamsFile, "params", "p", "", "YAML file with energy-model overrides")

	rootCmd.AddCommand(foldCmd)
}

func runFold(cmd *cobra.Command, args []string) error {
	opts := fold.DefaultOptions(
		fold.WithMaxInterior(foldMaxInterior),
		fold.WithTolerance(foldTolerance),
	)
	if foldParamsFile != "" {
		params, err := loadParams(foldParamsFile, opts.Energy)
		if err != nil {
			return err
		}
		opts.Energy = params
	}

	records, err := collectRecords(args)
	if err != nil {
		return err
	}

	seqs := make([]string, len(records))
	for i, rec := range records {
		seqs[i] = nucleo.Normalize(rec.Seq)
	}

	results, err := fold.FoldBatch(seqs, &opts, foldWorkers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, res := range results {
		if records[i].ID != "" {
			fmt.Fprintf(out, ">%s\n", records[i].ID)
		}
		fmt.Fprintln(out, seqs[i])
		fmt.Fprintf(out, "%s (%.2f)\n", res.Structure, res.Energy)
	}

	return nil
}

// collectRecords resolves the input source: --seq wins, then the path
// argument, then stdin.
func collectRecords(args []string) ([]fasta.Record, error) {
	if foldSeq != "" {
		return []fasta.Record{{Seq: foldSeq}}, nil
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return fasta.ReadAll(rc)
}
