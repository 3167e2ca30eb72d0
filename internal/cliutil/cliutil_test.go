package cliutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fq")
	b := filepath.Join(dir, "b.fq")
	_ = os.WriteFile(a, []byte("@a\nA\n+\nI\n"), 0o644)
	_ = os.WriteFile(b, []byte("@b\nA\n+\nI\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fq"), "-", dir})
	if err != nil || len(got) != 4 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if got[0] != a || got[1] != b || got[2] != "-" || got[3] != dir {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestExpandPositionalsNoMatch(t *testing.T) {
	if _, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.fa")}); err == nil {
		t.Fatal("want error for empty glob")
	}
}
