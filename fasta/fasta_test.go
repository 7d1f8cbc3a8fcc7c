package fasta_test

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rnalab/rnafold/fasta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadAll_MultiRecord parses two records with wrapped sequence lines.
func TestReadAll_MultiRecord(t *testing.T) {
	in := strings.NewReader(">seq1 some description\nGCGC\nUUCGCC\n\n>seq2\nAAAA\n")

	recs, err := fasta.ReadAll(in)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, fasta.Record{ID: "seq1", Seq: "GCGCUUCGCC"}, recs[0], "wrapped lines concatenate")
	assert.Equal(t, fasta.Record{ID: "seq2", Seq: "AAAA"}, recs[1])
}

// TestReadAll_Headerless reads a bare pasted sequence as one anonymous
// record.
func TestReadAll_Headerless(t *testing.T) {
	recs, err := fasta.ReadAll(strings.NewReader("GCGCUUCGCC\n"))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, fasta.Record{ID: "", Seq: "GCGCUUCGCC"}, recs[0])
}

// TestReadAll_EmptyInput verifies ErrNoSequences for header-only and
// blank input.
func TestReadAll_EmptyInput(t *testing.T) {
	_, err := fasta.ReadAll(strings.NewReader(""))
	assert.ErrorIs(t, err, fasta.ErrNoSequences, "blank input has no sequences")

	_, err = fasta.ReadAll(strings.NewReader(">only-a-header\n"))
	assert.ErrorIs(t, err, fasta.ErrNoSequences, "a header without sequence is not a record")
}

// TestReadAll_SkipsEmptyRecords drops records whose body is empty but
// keeps the rest.
func TestReadAll_SkipsEmptyRecords(t *testing.T) {
	in := strings.NewReader(">empty\n>real\nACGU\n")

	recs, err := fasta.ReadAll(in)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "real", recs[0].ID)
}

// TestOpen_PlainAndGzip round-trips the same payload through a plain file
// and a gzip file.
func TestOpen_PlainAndGzip(t *testing.T) {
	const payload = ">s\nGCGCUUCGCC\n"
	dir := t.TempDir()

	plain := filepath.Join(dir, "in.fasta")
	require.NoError(t, os.WriteFile(plain, []byte(payload), 0o644))

	gzPath := filepath.Join(dir, "in.fasta.gz")
	fh, err := os.Create(gzPath)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	for _, path := range []string{plain, gzPath} {
		rc, err := fasta.Open(path)
		require.NoError(t, err, "open %s", path)
		recs, err := fasta.ReadAll(rc)
		require.NoError(t, err, "read %s", path)
		require.NoError(t, rc.Close())
		require.Len(t, recs, 1)
		assert.Equal(t, "GCGCUUCGCC", recs[0].Seq, "path %s", path)
	}
}

// TestOpen_Missing propagates the underlying open error.
func TestOpen_Missing(t *testing.T) {
	_, err := fasta.Open(filepath.Join(t.TempDir(), "nope.fasta"))
	assert.Error(t, err)
}
