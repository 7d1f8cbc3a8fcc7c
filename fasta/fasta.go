package fasta

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrNoSequences indicates the input contained no sequence data at all.
var ErrNoSequences = errors.New("fasta: no sequences in input")

// Record is one parsed FASTA sequence.
type Record struct {
	// ID is the first whitespace-delimited token of the header line,
	// without the leading '>'. Empty for headerless input.
	ID string

	// Seq is the concatenated sequence, whitespace stripped, otherwise
	// verbatim (no case normalization).
	Seq string
}

// ReadAll parses every record from r.
//
// Header lines start with '>'; sequence lines in between are concatenated.
// Input with no header at all is read as a single anonymous record, so a
// bare sequence pasted on stdin still folds. Returns ErrNoSequences when
// nothing but headers and blank lines was found.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var (
		records []Record
		id      string
		started bool
		seq     strings.Builder
	)
	flush := func() {
		if seq.Len() == 0 && !started {
			return
		}
		records = append(records, Record{ID: id, Seq: seq.String()})
		seq.Reset()
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if started {
				flush()
			}
			header := strings.TrimPrefix(line, ">")
			if fields := strings.Fields(header); len(fields) > 0 {
				id = fields[0]
			} else {
				id = ""
			}
			started = true

			continue
		}
		started = true
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	valid := records[:0]
	for _, rec := range records {
		if rec.Seq != "" {
			valid = append(valid, rec)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoSequences
	}

	return valid, nil
}

// multiReadCloser closes every wrapped closer when Close is called,
// reporting the first failure.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}

// Open returns a reader for path, handling "-" as stdin and transparently
// decompressing gzip input (detected by the 1F 8B magic number or a .gz
// suffix). The caller owns the returned closer.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()

		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()

			return nil, err
		}

		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}

	return fh, nil
}
