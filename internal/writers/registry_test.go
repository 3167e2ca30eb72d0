package writers

import (
	"bytes"
	"strings"
	"testing"
)

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartResultWriter(&b, "nope-format", Options{}, 1)
	close(in) // no payload; writer should error out immediately on dispatch
	err := <-done
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestFormatsRegistered(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "bam,csv,json,jsonl,sam,tsv" {
		t.Fatalf("formats = %s", got)
	}
	if !Supported(FormatJSONL) || Supported("fasta") {
		t.Fatalf("Supported mismatch")
	}
}
