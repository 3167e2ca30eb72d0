// Package pipeline fans reads out to worker goroutines that analyze them
// against a shared, read-only mapper, and gathers the results.
//
// The only contract to implement is Analyzer (AnalyzeRead).
package pipeline
