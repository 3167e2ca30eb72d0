// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kmap/internal/app"
	"kmap/internal/seq"
)

const acRef = "ACCAACCCACAAAACACCCCAACAACACCAAACCACCCAAACAACCCCACCACACAAC"

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

// fixture lays out a reference and a reads directory with one FASTQ, one
// FASTA and one file of unknown format.
func fixture(t *testing.T) (ref, reads string) {
	t.Helper()
	dir := t.TempDir()
	ref = write(t, filepath.Join(dir, "ref.fa"), ">chr\n"+acRef[:30]+"\n"+acRef[30:]+"\n")
	reads = filepath.Join(dir, "reads")
	if err := os.Mkdir(reads, 0o755); err != nil {
		t.Fatal(err)
	}
	q := strings.Repeat("I", 20)
	write(t, filepath.Join(reads, "a.fq"),
		"@r1\n"+acRef[5:25]+"\n+\n"+q+"\n"+
			"@r2\n"+seq.RevComp(acRef[10:30])+"\n+\n"+q+"\n")
	write(t, filepath.Join(reads, "b.fa"), ">r3\nGAGAGAGAGAGA\n")
	write(t, filepath.Join(reads, "notes.txt"), "hello\n")
	return ref, reads
}

func TestEndToEnd(t *testing.T) {
	ref, reads := fixture(t)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"map", "--reference", ref, "-k", "8", reads}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	lines := strings.Split(out.String(), "\n")
	if lines[0] != "read_id\taligned\tstrand\tstart\tend\talignment_pct\tvariation\tvariation_pos" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "r1\ttrue\t+\t5\t24\t100.00\tnone\tnone" {
		t.Errorf("r1 row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "r2\ttrue\t-\t") {
		t.Errorf("r2 row = %q", lines[2])
	}
	if lines[3] != "r3\tfalse\tNA\tunmapped\tunmapped\t0.00\tNA\tnone" {
		t.Errorf("r3 row = %q", lines[3])
	}
	if !strings.Contains(out.String(), "# mapped_reads\t2\n") {
		t.Errorf("missing summary:\n%s", out.String())
	}
	if !strings.Contains(errBuf.String(), "unknown format, ignored") {
		t.Errorf("expected warning for notes.txt, got %q", errBuf.String())
	}
}

func TestOriginalPositionalUsage(t *testing.T) {
	ref, reads := fixture(t)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"map", "-k", "8", "--quiet", "--format", "csv", ref, reads}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if errBuf.Len() != 0 {
		t.Errorf("--quiet should silence warnings, got %q", errBuf.String())
	}
	if !strings.Contains(out.String(), "r1,true,+,5,24,100.00,none,none\n") {
		t.Errorf("unexpected csv:\n%s", out.String())
	}
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	dir := t.TempDir()
	ref := write(t, filepath.Join(dir, "ref.fa"), ">chr\n"+acRef+"\n")
	var fq strings.Builder
	for i := 0; i+20 <= len(acRef); i++ {
		r := acRef[i : i+20]
		if i%3 == 0 {
			r = r[:10] + "GG" + r[12:]
		}
		fmt.Fprintf(&fq, "@read%02d\n%s\n+\n%s\n", i, r, strings.Repeat("5", len(r)))
	}
	reads := write(t, filepath.Join(dir, "reads.fq"), fq.String())

	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			"map", "-r", ref, "-k", "8",
			"--threads", fmt.Sprint(threads),
			"--format", "jsonl",
			reads,
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return out.String()
	}

	serial := run(1)
	parallel := run(4)

	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
	if strings.Count(serial, "\n") != len(acRef)-19 {
		t.Fatalf("expected one line per read:\n%s", serial)
	}
}

func TestNoMatchExitCode(t *testing.T) {
	dir := t.TempDir()
	ref := write(t, filepath.Join(dir, "ref.fa"), ">chr\n"+acRef+"\n")
	reads := write(t, filepath.Join(dir, "r.fa"), ">x\nGAGAGAGAGAGAGA\n")

	var out, errB bytes.Buffer
	if code := app.Run([]string{"map", "-r", ref, "-k", "8", reads}, &out, &errB); code != 0 {
		t.Fatalf("default no-match exit = %d", code)
	}
	out.Reset()
	if code := app.Run([]string{"map", "-r", ref, "-k", "8", "--no-match-exit-code", "1", reads}, &out, &errB); code != 1 {
		t.Fatalf("--no-match-exit-code 1 gave %d", code)
	}
}

func TestSAMAndHistogramFiles(t *testing.T) {
	ref, reads := fixture(t)
	dir := t.TempDir()
	samPath := filepath.Join(dir, "run.sam")
	pngPath := filepath.Join(dir, "pct.png")

	var out, errB bytes.Buffer
	code := app.Run([]string{
		"map", "-r", ref, "-k", "8", "--format", "sam", "--sort",
		"--out", samPath, "--histogram", pngPath, reads,
	}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
	if out.Len() != 0 {
		t.Errorf("stdout should be empty with --out, got %q", out.String())
	}
	sam, err := os.ReadFile(samPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(sam), "@SQ\tSN:chr\tLN:58") {
		t.Errorf("missing @SQ line:\n%s", sam)
	}
	if !strings.Contains(string(sam), "r1\t0\tchr\t6\t255\t20M\t") {
		t.Errorf("missing r1 record:\n%s", sam)
	}
	png, err := os.ReadFile(pngPath)
	if err != nil || !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("histogram not written: %v", err)
	}
}

func TestMissingReadsIsIOError(t *testing.T) {
	ref, _ := fixture(t)
	var out, errB bytes.Buffer
	code := app.Run([]string{"map", "-r", ref, "-k", "8", filepath.Join(t.TempDir(), "missing.fq")}, &out, &errB)
	if code != 3 {
		t.Fatalf("want exit 3, got %d (%s)", code, errB.String())
	}
}
