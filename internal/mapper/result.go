// internal/mapper/result.go
package mapper

import "kmap/internal/index"

// Unmapped is the Start/End sentinel of a read without a consensus position.
const Unmapped = -1

// Variation classifies how much of a mapped read agreed with the reference.
// Unaligned results leave it empty.
type Variation string

const (
	VariationNone     Variation = "none"
	VariationMutation Variation = "mutation"
	VariationError    Variation = "error"
)

// Result is the alignment estimate for one read.
type Result struct {
	ReadID  string
	ReadLen int
	Windows int // k-mer windows in the read (0 when shorter than k)

	Aligned        bool
	Strand         index.Strand
	Start          int
	End            int
	Votes          int   // votes behind Start
	AlignedOffsets []int // ascending read offsets whose k-mer matched
	Variation      Variation

	HasQuality  bool
	MeanQuality float64
}

func unaligned(id string, readLen, windows int) Result {
	return Result{
		ReadID:  id,
		ReadLen: readLen,
		Windows: windows,
		Strand:  index.NoStrand,
		Start:   Unmapped,
		End:     Unmapped,
	}
}

// AlignmentPercent is 100 * matched windows / total windows.
func (r Result) AlignmentPercent() float64 {
	if r.Windows <= 0 {
		return 0
	}
	return 100 * float64(len(r.AlignedOffsets)) / float64(r.Windows)
}

// FirstMismatch returns the smallest window offset that did not match, i.e.
// where the consensus first breaks.
func (r Result) FirstMismatch() (int, bool) {
	next := 0
	for _, off := range r.AlignedOffsets {
		if off != next {
			break
		}
		next++
	}
	if next < r.Windows {
		return next, true
	}
	return 0, false
}
