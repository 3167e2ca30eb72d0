// internal/output/rows.go
package output

import (
	"strconv"

	"kmap/internal/mapper"
)

const (
	unmappedCell = "unmapped"
	noneCell     = "none"
	naCell       = "NA"
)

// FormatRow returns the Header columns for one result.
func FormatRow(r mapper.Result) []string {
	start, end := unmappedCell, unmappedCell
	variation, varPos := naCell, noneCell
	if r.Aligned {
		start = strconv.Itoa(r.Start)
		end = strconv.Itoa(r.End)
		variation = string(r.Variation)
		if off, ok := r.FirstMismatch(); ok {
			varPos = strconv.Itoa(off)
		}
	}
	return []string{
		r.ReadID,
		strconv.FormatBool(r.Aligned),
		string(r.Strand),
		start,
		end,
		strconv.FormatFloat(r.AlignmentPercent(), 'f', 2, 64),
		variation,
		varPos,
	}
}
