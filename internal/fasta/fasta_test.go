// internal/fasta/fasta_test.go
package fasta

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmap/internal/seq"
)

const plain = `>seq1 first record
ACGT
acgt

>seq2
NNnn
`

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func writeGz(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	fh, err := os.Create(fn)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())
	return fn
}

func TestReadFASTA(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "ref.fa", plain)
	recs, err := ReadFASTA(context.Background(), fn)
	require.NoError(t, err)
	assert.Equal(t, []seq.Record{
		{ID: "seq1", Seq: "ACGTACGT"},
		{ID: "seq2", Seq: "NNNN"},
	}, recs)
}

func TestReadFASTAGzip(t *testing.T) {
	fn := writeGz(t, t.TempDir(), "ref.fa.gz", plain)
	recs, err := ReadFASTA(context.Background(), fn)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "seq1", recs[0].ID)
}

func TestReadFASTAStdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	defer func() { os.Stdin = orig }()
	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	recs, err := ReadFASTA(context.Background(), "-")
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestScanFASTARejectsDataBeforeHeader(t *testing.T) {
	err := ScanFASTA(context.Background(), strings.NewReader("ACGT\n>x\nAC\n"), func(seq.Record) error { return nil })
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestScanFASTACanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	err := ScanFASTA(ctx, strings.NewReader(plain), func(seq.Record) error { n++; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func TestReadFASTAMissingFile(t *testing.T) {
	_, err := ReadFASTA(context.Background(), filepath.Join(t.TempDir(), "nope.fa"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
