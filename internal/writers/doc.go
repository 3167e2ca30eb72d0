// Package writers turns mapping results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (CSV/TSV, JSON/JSONL, SAM/BAM).
//   - The mapper stays domain-only; the pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
