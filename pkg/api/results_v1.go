// pkg/api/results_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for one read.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Start/End are -1 for reads that did not map.
type ResultV1 struct {
	ReadID         string   `json:"read_id"`
	ReadLength     int      `json:"read_length"`
	Aligned        bool     `json:"aligned"`
	Strand         string   `json:"strand"` // "+" | "-" | "NA"
	Start          int      `json:"start"`
	End            int      `json:"end"`
	Votes          int      `json:"votes,omitempty"`
	AlignmentPct   float64  `json:"alignment_pct"`
	Variation      string   `json:"variation,omitempty"` // "none" | "mutation" | "error"; empty when unaligned
	VariationPos   *int     `json:"variation_pos,omitempty"`
	AlignedOffsets []int    `json:"aligned_offsets,omitempty"`
	MeanQuality    *float64 `json:"mean_quality,omitempty"`
}

// QualityV1 aggregates per-read mean Phred qualities.
type QualityV1 struct {
	MeanAll      float64 `json:"mean_all"`
	MedianAll    float64 `json:"median_all"`
	MeanMapped   float64 `json:"mean_mapped"`
	MedianMapped float64 `json:"median_mapped"`
}

// SummaryV1 aggregates a mapping run.
type SummaryV1 struct {
	TotalReads  int            `json:"total_reads"`
	MappedReads int            `json:"mapped_reads"`
	MappedPct   float64        `json:"mapped_pct"`
	Strands     map[string]int `json:"strands"`
	Variations  map[string]int `json:"variations"`
	Quality     *QualityV1     `json:"quality,omitempty"`
}

// RunV1 is the single-document JSON output and the HTTP /map response.
type RunV1 struct {
	RunID           string     `json:"run_id"`
	Version         string     `json:"version,omitempty"`
	K               int        `json:"k"`
	ReferenceLength int        `json:"reference_length"`
	Summary         SummaryV1  `json:"summary"`
	Results         []ResultV1 `json:"results"`
}

// ReadV1 is one read submitted to the HTTP /map endpoint.
type ReadV1 struct {
	ID   string `json:"id"`
	Seq  string `json:"seq"`
	Qual string `json:"qual,omitempty"`
}

// MapRequestV1 is the HTTP /map request body.
type MapRequestV1 struct {
	Reads []ReadV1 `json:"reads"`
}

// KmerV1 is the HTTP /kmers/:kmer response.
type KmerV1 struct {
	Kmer      string `json:"kmer"`
	Positions []int  `json:"positions"`
	Strand    string `json:"strand"`
}

// PositionV1 is the HTTP /positions/:pos response.
type PositionV1 struct {
	Position int    `json:"position"`
	Kmer     string `json:"kmer"`
}
