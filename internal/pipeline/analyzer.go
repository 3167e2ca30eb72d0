// internal/pipeline/analyzer.go
package pipeline

import (
	"kmap/internal/mapper"
	"kmap/internal/seq"
)

// Analyzer is the minimal capability the pipeline needs.
// Any mapper (including fakes in tests) can satisfy this.
type Analyzer interface {
	AnalyzeRead(read seq.Record) mapper.Result
}
