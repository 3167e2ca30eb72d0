// Package index builds an exact-match table of every overlapping k-mer of a
// reference sequence and answers forward and strand-aware lookups.
//
// An Index is built once and never mutated afterwards, so a single Index may
// be shared by any number of goroutines.
package index
