// internal/common/sort.go
package common

import "kmap/internal/mapper"

// LessResult defines a stable order for results (for --sort): read id first,
// then placement, so repeated ids still come out in a fixed order.
func LessResult(a, b mapper.Result) bool {
	if a.ReadID != b.ReadID {
		return a.ReadID < b.ReadID
	}
	if a.Aligned != b.Aligned {
		return a.Aligned
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.Strand != b.Strand {
		return a.Strand < b.Strand
	}
	return a.ReadLen < b.ReadLen
}
