// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"

	"kmap/internal/seq"
)

// EffectiveThreads resolves --threads: 0 (or less) means all CPUs.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// ValidateK returns warnings for k values that make mapping pointless.
// Neither case is an error: reads simply come out unaligned.
func ValidateK(k, refLen int) []string {
	var warns []string
	if refLen == 0 {
		warns = append(warns, "reference is empty; no read can map")
	} else if k > refLen {
		warns = append(warns, fmt.Sprintf("--k (%d) exceeds reference length (%d); no read can map", k, refLen))
	}
	return warns
}

// ReadStats reports reads shorter than k and repeated ids. Repeated ids are
// tracked in a bounded set so huge inputs do not hold every id in memory.
func ReadStats(reads []seq.Record, k, idCap int) (short int, dupIDs []string) {
	seen := NewLRUSet[string](idCap)
	for _, r := range reads {
		if len(r.Seq) < k {
			short++
		}
		if seen.Add(r.ID) {
			dupIDs = append(dupIDs, r.ID)
		}
	}
	return short, dupIDs
}
