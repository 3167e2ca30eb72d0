package appcore

import (
	"bytes"
	"testing"

	"kmap/internal/output"
)

func TestResultWriterFactory(t *testing.T) {
	w := NewResultWriterFactory("bam", true, false, output.Meta{K: 3})
	if w.Format != "bam" || !w.Opts.Sort || w.Opts.Header || w.Opts.Meta.K != 3 {
		t.Fatalf("options not carried: %+v", w.Opts)
	}
}

func TestResultWriterFactoryStart(t *testing.T) {
	var buf bytes.Buffer
	in, done := NewResultWriterFactory("csv", false, true, output.Meta{}).Start(&buf, 1)
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("read_id,aligned")) {
		t.Fatalf("missing header: %q", buf.String())
	}
}

func TestResultWriterFactoryWithPretty(t *testing.T) {
	w := NewResultWriterFactory("tsv", false, true, output.Meta{}).WithPretty("ACGT")
	if !w.Opts.Pretty || w.Opts.Reference != "ACGT" {
		t.Fatalf("pretty not set: %+v", w.Opts)
	}
}
