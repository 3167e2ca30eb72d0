// internal/mapper/mapper.go
package mapper

import (
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"kmap/internal/index"
	"kmap/internal/seq"
)

// Mapper owns the reference index and analyzes reads against it.
type Mapper struct {
	k   int
	idx *index.Index
	log logrus.FieldLogger
}

type Option func(*Mapper)

// WithLogger routes progress messages to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Mapper) { m.log = l }
}

// New returns a Mapper for k-mers of length k. It maps nothing until a
// reference is loaded.
func New(k int, opts ...Option) *Mapper {
	m := &Mapper{k: k, log: discardLogger()}
	for _, o := range opts {
		o(m)
	}
	m.idx = index.Build("", k)
	return m
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func (m *Mapper) K() int { return m.k }

// Index exposes the built index for diagnostics.
func (m *Mapper) Index() *index.Index { return m.idx }

// LoadReference indexes text, replacing any earlier reference.
func (m *Mapper) LoadReference(text string) {
	m.idx = index.Build(text, m.k)
	st := m.idx.Stats()
	m.log.WithFields(logrus.Fields{
		"k":         m.k,
		"bases":     humanize.Comma(int64(len(text))),
		"kmers":     humanize.Comma(int64(st.Distinct)),
		"max_multi": st.Multiplicity,
	}).Info("indexed reference")
}

// LoadReferenceRecords concatenates records in order and indexes the result.
func (m *Mapper) LoadReferenceRecords(recs []seq.Record) {
	var sb strings.Builder
	n := 0
	for _, r := range recs {
		n += len(r.Seq)
	}
	sb.Grow(n)
	for _, r := range recs {
		sb.WriteString(r.Seq)
	}
	m.LoadReference(sb.String())
}

// AnalyzeRead estimates the alignment of a single read.
func (m *Mapper) AnalyzeRead(read seq.Record) Result {
	n := len(read.Seq)
	if m.k < 1 || n < m.k {
		res := unaligned(read.ID, n, 0)
		attachQuality(&res, read)
		return res
	}
	windows := n - m.k + 1

	votes := make(map[int]int)
	var offsets []int
	strand := index.NoStrand
	first := true
	for i := 0; i < windows; i++ {
		pos, st := m.idx.LookupStrand(read.Seq[i : i+m.k])
		if len(pos) == 0 {
			continue
		}
		for _, p := range pos {
			votes[p-i]++
		}
		offsets = append(offsets, i)
		if first {
			strand = st
			first = false
		} else if st != strand {
			strand = index.NoStrand
		}
	}

	if len(votes) == 0 {
		res := unaligned(read.ID, n, windows)
		attachQuality(&res, read)
		return res
	}

	start, count := bestStart(votes)
	res := Result{
		ReadID:         read.ID,
		ReadLen:        n,
		Windows:        windows,
		Aligned:        true,
		Strand:         strand,
		Start:          start,
		End:            start + n - 1,
		Votes:          count,
		AlignedOffsets: offsets,
		Variation:      classify(len(offsets), windows),
	}
	attachQuality(&res, read)
	return res
}

// bestStart picks the most voted start; equal counts resolve to the smallest start.
func bestStart(votes map[int]int) (int, int) {
	starts := make([]int, 0, len(votes))
	for s := range votes {
		starts = append(starts, s)
	}
	sort.Ints(starts)
	best, bestCount := starts[0], votes[starts[0]]
	for _, s := range starts[1:] {
		if c := votes[s]; c > bestCount {
			best, bestCount = s, c
		}
	}
	return best, bestCount
}

func classify(matched, total int) Variation {
	switch {
	case matched == total:
		return VariationNone
	case float64(matched) >= float64(total)*0.5:
		return VariationMutation
	default:
		return VariationError
	}
}

func attachQuality(res *Result, read seq.Record) {
	if q, ok := read.MeanQuality(); ok {
		res.HasQuality = true
		res.MeanQuality = q
	}
}

// MapAll analyzes every read in order. A repeated read id keeps the last result.
func (m *Mapper) MapAll(reads []seq.Record) map[string]Result {
	out := make(map[string]Result, len(reads))
	for _, r := range reads {
		out[r.ID] = m.AnalyzeRead(r)
	}
	return out
}
