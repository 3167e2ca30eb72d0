// internal/clibase/examples.go
package clibase

import (
	"fmt"
	"io"

	"kmap/internal/version"
)

// Banner is the long description shown above the root command's help.
func Banner(name string) string {
	return fmt.Sprintf("%s – k-mer voting read mapper\n\nLicense: MIT\nVersion: %s", name, version.Version)
}

// Quickstart snippets shown in each command's help.
const (
	MapExamples = `  kmap map --reference ref.fa reads/
  kmap map -r ref.fa -k 11 --format json --out run.json sample1.fq sample2.fq.gz
  kmap map ref.fa reads/                          # reference as first positional
  kmap map -r ref.fa --format sam reads/ | samtools view -b -o run.bam -`

	LookupExamples = `  kmap lookup -r ref.fa -k 5 ACGTA TTTTT
  kmap lookup -r ref.fa -k 5 --pos 0 --pos 12
  kmap lookup -r ref.fa -k 5 --dump | head`

	ServeExamples = `  kmap serve -r ref.fa -k 15 --port 8080
  curl localhost:8080/kmers/ACGTACGTACGTACG`
)

// PrintExamples prints a small quickstart header and body, followed by a
// one-line tip to discover full help.
func PrintExamples(out io.Writer, name string, body string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s – quickstart\n\n%s\n", name, body)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
