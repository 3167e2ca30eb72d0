// internal/output/json.go
package output

import (
	"io"

	"kmap/internal/jsonutil"
	"kmap/internal/mapper"
	"kmap/pkg/api"
)

// ToAPIResult converts a mapper.Result to the stable wire schema (v1).
func ToAPIResult(r mapper.Result) api.ResultV1 {
	v := api.ResultV1{
		ReadID:         r.ReadID,
		ReadLength:     r.ReadLen,
		Aligned:        r.Aligned,
		Strand:         string(r.Strand),
		Start:          r.Start,
		End:            r.End,
		Votes:          r.Votes,
		AlignmentPct:   r.AlignmentPercent(),
		Variation:      string(r.Variation),
		AlignedOffsets: append([]int(nil), r.AlignedOffsets...),
	}
	if off, ok := r.FirstMismatch(); ok && r.Aligned {
		v.VariationPos = &off
	}
	if r.HasQuality {
		q := r.MeanQuality
		v.MeanQuality = &q
	}
	return v
}

// ToAPIRun builds the single-document representation of a run.
func ToAPIRun(m Meta, list []mapper.Result) api.RunV1 {
	sum := NewSummary()
	res := make([]api.ResultV1, 0, len(list))
	for _, r := range list {
		sum.Add(r)
		res = append(res, ToAPIResult(r))
	}
	return api.RunV1{
		RunID:           m.RunID,
		Version:         m.Version,
		K:               m.K,
		ReferenceLength: m.RefLen,
		Summary:         sum.API(),
		Results:         res,
	}
}

// WriteJSON writes one pretty-indented JSON document for the run.
func WriteJSON(w io.Writer, m Meta, list []mapper.Result) error {
	return jsonutil.EncodePretty(w, ToAPIRun(m, list))
}
