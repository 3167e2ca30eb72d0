// internal/seq/record.go
package seq

import "fmt"

// Record is one sequence handed over by a parser: an identifier, the
// nucleotides, and an optional quality string of the same length.
// Records are values and are never modified after construction.
type Record struct {
	ID   string
	Seq  string
	Qual string
}

// New returns a Record, rejecting a quality string whose length differs from seq.
func New(id, s, qual string) (Record, error) {
	if qual != "" && len(qual) != len(s) {
		return Record{}, fmt.Errorf("record %q: quality length %d != sequence length %d", id, len(qual), len(s))
	}
	return Record{ID: id, Seq: s, Qual: qual}, nil
}

func (r Record) HasQuality() bool { return r.Qual != "" }

// MeanQuality returns the mean Phred+33 score of the quality string.
func (r Record) MeanQuality() (float64, bool) {
	if r.Qual == "" {
		return 0, false
	}
	sum := 0
	for i := 0; i < len(r.Qual); i++ {
		sum += int(r.Qual[i]) - 33
	}
	return float64(sum) / float64(len(r.Qual)), true
}
