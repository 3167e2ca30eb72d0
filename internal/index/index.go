// internal/index/index.go
package index

import (
	"fmt"
	"io"
	"sort"

	"kmap/internal/seq"
)

// Strand is the orientation of a k-mer hit.
type Strand string

const (
	Forward  Strand = "+"
	Reverse  Strand = "-"
	NoStrand Strand = "NA"
)

// Index maps each k-mer of the reference to its 0-based start positions,
// in left-to-right scan order.
type Index struct {
	k     int
	ref   string
	table map[string][]int
}

// Build indexes every k-mer of ref. A reference shorter than k (or k < 1)
// yields an empty index rather than an error.
func Build(ref string, k int) *Index {
	ix := &Index{k: k, ref: ref, table: make(map[string][]int)}
	if k < 1 {
		return ix
	}
	for i := 0; i <= len(ref)-k; i++ {
		km := ref[i : i+k]
		ix.table[km] = append(ix.table[km], i)
	}
	return ix
}

// K is the k-mer length the index was built with.
func (ix *Index) K() int { return ix.k }

// Len is the length of the indexed reference.
func (ix *Index) Len() int { return len(ix.ref) }

// Reference returns the indexed text.
func (ix *Index) Reference() string { return ix.ref }

// Size is the number of distinct k-mers.
func (ix *Index) Size() int { return len(ix.table) }

// Lookup returns the positions of an exact forward match, or nil.
// The returned slice is shared with the index and must not be modified.
func (ix *Index) Lookup(kmer string) []int {
	return ix.table[kmer]
}

// LookupStrand tries kmer on the forward strand first and falls back to its
// reverse complement. Palindromic k-mers therefore always report Forward.
func (ix *Index) LookupStrand(kmer string) ([]int, Strand) {
	if pos := ix.Lookup(kmer); len(pos) > 0 {
		return pos, Forward
	}
	if pos := ix.Lookup(seq.RevComp(kmer)); len(pos) > 0 {
		return pos, Reverse
	}
	return nil, NoStrand
}

// KmerAt returns the k-mer of the reference starting at pos.
func (ix *Index) KmerAt(pos int) (string, bool) {
	if ix.k < 1 || pos < 0 || pos > len(ix.ref)-ix.k {
		return "", false
	}
	return ix.ref[pos : pos+ix.k], true
}

// Stats summarizes the table.
type Stats struct {
	Distinct     int // distinct k-mers
	Positions    int // total indexed positions
	Multiplicity int // largest position list
}

// Stats walks the table once; it is meant for logging, not hot paths.
func (ix *Index) Stats() Stats {
	st := Stats{Distinct: len(ix.table)}
	for _, pos := range ix.table {
		st.Positions += len(pos)
		if len(pos) > st.Multiplicity {
			st.Multiplicity = len(pos)
		}
	}
	return st
}

// Dump writes one "kmer -> p0 p1 ..." line per k-mer, sorted by k-mer.
func (ix *Index) Dump(w io.Writer) error {
	keys := make([]string, 0, len(ix.table))
	for km := range ix.table {
		keys = append(keys, km)
	}
	sort.Strings(keys)
	for _, km := range keys {
		if _, err := fmt.Fprintf(w, "%s ->", km); err != nil {
			return err
		}
		for _, p := range ix.table[km] {
			if _, err := fmt.Fprintf(w, " %d", p); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
