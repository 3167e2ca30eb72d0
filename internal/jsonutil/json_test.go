package jsonutil

import (
	"bytes"
	"testing"
)

func TestEncodePretty(t *testing.T) {
	var b bytes.Buffer
	if err := EncodePretty(&b, map[string]int{"k": 5}); err != nil {
		t.Fatal(err)
	}
	if b.String() != "{\n  \"k\": 5\n}\n" {
		t.Fatalf("got %q", b.String())
	}
}
