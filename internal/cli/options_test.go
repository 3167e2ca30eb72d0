// internal/cli/options_test.go
package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func mustMap(t *testing.T, args ...string) MapOptions {
	t.Helper()
	var o MapOptions
	cmd := &cobra.Command{Use: "map"}
	BindMap(cmd, &o)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if err := o.Resolve(cmd.Flags().Args()); err != nil {
		t.Fatalf("resolve err: %v", err)
	}
	return o
}

func mapErr(t *testing.T, args ...string) error {
	t.Helper()
	var o MapOptions
	cmd := &cobra.Command{Use: "map"}
	BindMap(cmd, &o)
	if err := cmd.Flags().Parse(args); err != nil {
		return err
	}
	return o.Resolve(cmd.Flags().Args())
}

func TestMapDefaults(t *testing.T) {
	o := mustMap(t, "--reference", "ref.fa", "reads/")
	if o.K != 15 || o.Format != "tsv" || !o.Header || o.NoMatchExitCode != 0 {
		t.Errorf("bad defaults %+v", o)
	}
	if len(o.Reads) != 1 || o.Reads[0] != "reads/" {
		t.Errorf("reads = %v", o.Reads)
	}
}

func TestMapReferenceAsPositional(t *testing.T) {
	o := mustMap(t, "ref.fa", "reads/", "more.fq")
	if o.Reference != "ref.fa" || len(o.Reads) != 2 {
		t.Errorf("positional parse %+v", o)
	}
}

func TestMapExpandsGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.fq", "b.fq"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("@r\nA\n+\nI\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	o := mustMap(t, "-r", "ref.fa", filepath.Join(dir, "*.fq"))
	if len(o.Reads) != 2 {
		t.Errorf("glob expansion: %v", o.Reads)
	}
}

func TestMapNoHeaderAndFormat(t *testing.T) {
	o := mustMap(t, "-r", "ref.fa", "--no-header", "--format", "jsonl", "-k", "5", "x.fa")
	if o.Header || o.Format != "jsonl" || o.K != 5 {
		t.Errorf("bad parse %+v", o)
	}
}

func TestMapErrors(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"-r", "ref.fa"}, "reads"},
		{[]string{}, "reference"},
		{[]string{"-r", "ref.fa", "--format", "xml", "x"}, "--format"},
		{[]string{"-r", "ref.fa", "--k", "0", "x"}, "--k"},
		{[]string{"-r", "ref.fa", "--profile", "block", "x"}, "--profile"},
		{[]string{"-r", "ref.fa", "--bins", "0", "x"}, "--bins"},
		{[]string{"-r", "ref.fa", "--pretty", "--format", "json", "x"}, "--pretty"},
		{[]string{"-r", "ref.fa", "--no-match-exit-code", "300", "x"}, "exit-code"},
	}
	for _, tc := range cases {
		err := mapErr(t, tc.args...)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%v: want error mentioning %q, got %v", tc.args, tc.want, err)
		}
	}
}

func TestMapExamplesSkipsValidation(t *testing.T) {
	o := mustMap(t, "--examples")
	if !o.Examples {
		t.Fatal("examples flag not set")
	}
}

func TestLookupResolve(t *testing.T) {
	var o LookupOptions
	cmd := &cobra.Command{Use: "lookup"}
	BindLookup(cmd, &o)
	if err := cmd.Flags().Parse([]string{"-r", "ref.fa", "-k", "3", "--pos", "1", "--pos", "4", "ACG"}); err != nil {
		t.Fatal(err)
	}
	if err := o.Resolve(cmd.Flags().Args()); err != nil {
		t.Fatal(err)
	}
	if len(o.Positions) != 2 || o.Kmers[0] != "ACG" {
		t.Errorf("bad lookup parse %+v", o)
	}

	bad := func() *LookupOptions {
		o := &LookupOptions{}
		o.Reference, o.K = "ref.fa", 3
		return o
	}
	if err := bad().Resolve([]string{"ACGT"}); err == nil || !strings.Contains(err.Error(), "length 4") {
		t.Errorf("want length error, got %v", err)
	}
	if err := bad().Resolve(nil); err == nil || !strings.Contains(err.Error(), "nothing to look up") {
		t.Errorf("want nothing-to-do error, got %v", err)
	}
}

func TestServeResolve(t *testing.T) {
	o := ServeOptions{Port: DefaultPort}
	o.Reference, o.K = "ref.fa", 15
	if err := o.Resolve(nil); err != nil {
		t.Fatal(err)
	}
	o.Port = 0
	if err := o.Resolve(nil); err == nil {
		t.Error("want port error")
	}
	o.Port = DefaultPort
	if err := o.Resolve([]string{"extra"}); err == nil {
		t.Error("want unexpected-arguments error")
	}
}
