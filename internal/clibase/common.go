// internal/clibase/common.go
package clibase

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// DefaultK is the k-mer length used when --k is not given.
const DefaultK = 15

// Common holds CLI fields shared by the map, lookup and serve commands.
type Common struct {
	// Input
	Reference string
	K         int

	// Performance
	Threads int

	// Misc
	Quiet   bool
	Verbose bool
}

// Register wires shared flags onto cmd.
func Register(cmd *cobra.Command, c *Common) {
	fs := cmd.Flags()
	fs.StringVarP(&c.Reference, "reference", "r", "", "reference FASTA (plain or gzip, '-' for STDIN)")
	fs.IntVarP(&c.K, "k", "k", DefaultK, "k-mer length")
	fs.IntVarP(&c.Threads, "threads", "t", 0, "worker threads (0=all CPUs)")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "suppress non-essential warnings")
	fs.BoolVar(&c.Verbose, "verbose", false, "log progress messages")
}

// Validate applies shared CLI invariants used by all commands.
func Validate(c *Common) error {
	if c.Reference == "" {
		return errors.New("a reference FASTA is required (--reference)")
	}
	if c.K < 1 {
		return fmt.Errorf("--k must be ≥ 1 (got %d)", c.K)
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}
