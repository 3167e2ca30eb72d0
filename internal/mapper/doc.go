// Package mapper estimates where each read sits on the reference by letting
// every k-mer window of the read vote for a start position.
//
// A k-mer found at reference position p from read offset i votes for start
// p-i. The start with the most votes wins (ties go to the smallest start),
// strand comes from the forward/reverse-complement lookup of each window, and
// the share of matching windows classifies the read as clean, mutation-like or
// error-like. Reads are analyzed independently against a read-only index.
package mapper
