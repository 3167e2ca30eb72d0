// internal/output/summary.go
package output

import (
	"sort"

	"kmap/internal/index"
	"kmap/internal/mapper"
	"kmap/pkg/api"
)

// Summary accumulates run-level statistics one result at a time.
type Summary struct {
	total, mapped int
	strands       map[index.Strand]int
	variations    map[mapper.Variation]int
	qualAll       []float64
	qualMapped    []float64
}

func NewSummary() *Summary {
	return &Summary{
		strands:    make(map[index.Strand]int),
		variations: make(map[mapper.Variation]int),
	}
}

func (s *Summary) Add(r mapper.Result) {
	s.total++
	if r.HasQuality {
		s.qualAll = append(s.qualAll, r.MeanQuality)
	}
	if !r.Aligned {
		return
	}
	s.mapped++
	s.strands[r.Strand]++
	s.variations[r.Variation]++
	if r.HasQuality {
		s.qualMapped = append(s.qualMapped, r.MeanQuality)
	}
}

func (s *Summary) Total() int  { return s.total }
func (s *Summary) Mapped() int { return s.mapped }

func (s *Summary) MappedPct() float64 {
	if s.total == 0 {
		return 0
	}
	return 100 * float64(s.mapped) / float64(s.total)
}

// API converts the summary to the wire schema. Strand and variation counts
// cover mapped reads only; Quality is set when any read carried qualities.
func (s *Summary) API() api.SummaryV1 {
	out := api.SummaryV1{
		TotalReads:  s.total,
		MappedReads: s.mapped,
		MappedPct:   s.MappedPct(),
		Strands:     map[string]int{},
		Variations:  map[string]int{},
	}
	for _, st := range []index.Strand{index.Forward, index.Reverse, index.NoStrand} {
		out.Strands[string(st)] = s.strands[st]
	}
	for _, v := range []mapper.Variation{mapper.VariationNone, mapper.VariationMutation, mapper.VariationError} {
		out.Variations[string(v)] = s.variations[v]
	}
	if len(s.qualAll) > 0 {
		out.Quality = &api.QualityV1{
			MeanAll:      mean(s.qualAll),
			MedianAll:    median(s.qualAll),
			MeanMapped:   mean(s.qualMapped),
			MedianMapped: median(s.qualMapped),
		}
	}
	return out
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

func median(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	s := append([]float64(nil), v...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}
