// internal/output/sam.go
package output

import (
	"fmt"
	"io"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"kmap/internal/index"
	"kmap/internal/mapper"
	"kmap/internal/seq"
)

// Item pairs a read with its result. Alignment formats need the bases.
type Item struct {
	Read   seq.Record
	Result mapper.Result
}

var variationTag = sam.NewTag("XV")

// recordWriter is satisfied by *sam.Writer and *bam.Writer.
type recordWriter interface {
	Write(*sam.Record) error
}

// Alignments writes SAM or BAM records against a single reference.
type Alignments struct {
	ref    *sam.Reference
	w      recordWriter
	closer io.Closer
}

func samHeader(m Meta) (*sam.Header, *sam.Reference, error) {
	name := m.RefName
	if name == "" {
		name = "reference"
	}
	length := m.RefLen
	if length < 1 {
		length = 1
	}
	ref, err := sam.NewReference(name, "", "", length, nil, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("sam reference: %w", err)
	}
	h, err := sam.NewHeader(nil, []*sam.Reference{ref})
	if err != nil {
		return nil, nil, fmt.Errorf("sam header: %w", err)
	}
	return h, ref, nil
}

// NewSAM writes a SAM header and returns a record writer.
func NewSAM(w io.Writer, m Meta) (*Alignments, error) {
	h, ref, err := samHeader(m)
	if err != nil {
		return nil, err
	}
	sw, err := sam.NewWriter(w, h, sam.FlagDecimal)
	if err != nil {
		return nil, err
	}
	return &Alignments{ref: ref, w: sw}, nil
}

// NewBAM writes a BAM header; Close must be called to flush the BGZF stream.
func NewBAM(w io.Writer, m Meta) (*Alignments, error) {
	h, ref, err := samHeader(m)
	if err != nil {
		return nil, err
	}
	bw, err := bam.NewWriter(w, h, 0)
	if err != nil {
		return nil, err
	}
	return &Alignments{ref: ref, w: bw, closer: bw}, nil
}

// Write emits one record. Reads whose start falls outside the reference
// are written as unmapped.
func (a *Alignments) Write(it Item) error {
	rec, err := a.record(it)
	if err != nil {
		return fmt.Errorf("read %s: %w", it.Read.ID, err)
	}
	return a.w.Write(rec)
}

func (a *Alignments) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *Alignments) record(it Item) (*sam.Record, error) {
	r := it.Result
	bases := it.Read.Seq
	qual := phred(it.Read.Qual)
	if !r.Aligned || r.Start < 0 || r.Start >= a.ref.Len() {
		rec, err := sam.NewRecord(it.Read.ID, nil, nil, -1, -1, 0, 0, nil, []byte(bases), qual, nil)
		if err != nil {
			return nil, err
		}
		rec.Flags = sam.Unmapped
		return rec, nil
	}

	var flags sam.Flags
	if r.Strand == index.Reverse {
		flags |= sam.Reverse
		bases = seq.RevComp(bases)
		reverse(qual)
	}
	aux, err := sam.NewAux(variationTag, string(r.Variation))
	if err != nil {
		return nil, err
	}
	cigar := []sam.CigarOp{sam.NewCigarOp(sam.CigarMatch, len(bases))}
	rec, err := sam.NewRecord(it.Read.ID, a.ref, nil, r.Start, -1, 0, 255, cigar, []byte(bases), qual, []sam.Aux{aux})
	if err != nil {
		return nil, err
	}
	rec.Flags = flags
	return rec, nil
}

func phred(q string) []byte {
	if q == "" {
		return nil
	}
	out := make([]byte, len(q))
	for i := 0; i < len(q); i++ {
		out[i] = q[i] - 33
	}
	return out
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// WriteSAM writes a complete SAM document.
func WriteSAM(w io.Writer, m Meta, items []Item) error {
	a, err := NewSAM(w, m)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := a.Write(it); err != nil {
			return err
		}
	}
	return a.Close()
}

// WriteBAM writes a complete BAM document.
func WriteBAM(w io.Writer, m Meta, items []Item) error {
	a, err := NewBAM(w, m)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := a.Write(it); err != nil {
			a.Close()
			return err
		}
	}
	return a.Close()
}
