// internal/output/common.go
package output

// Header is the canonical column list for CSV/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
var Header = []string{
	"read_id", "aligned", "strand", "start", "end",
	"alignment_pct", "variation", "variation_pos",
}

// Meta describes the run a set of results belongs to.
type Meta struct {
	RunID   string
	Version string
	K       int
	RefName string
	RefLen  int
}
