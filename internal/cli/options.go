// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"kmap/internal/clibase"
	"kmap/internal/cliutil"
)

// Defaults.
const (
	DefaultFormat = "tsv"
	DefaultPort   = 8080
	DefaultBins   = 20
)

// Formats accepted by --format.
var Formats = []string{"csv", "tsv", "json", "jsonl", "sam", "bam"}

// Profiling modes accepted by --profile.
const (
	ProfileCPU = "cpu"
	ProfileMem = "mem"
)

// MapOptions holds the flags and arguments of `kmap map`.
type MapOptions struct {
	clibase.Common

	Reads []string

	// Output
	Format          string
	OutPath         string
	Histogram       string
	Bins            int
	Sort            bool
	Pretty          bool
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Misc
	Progress bool
	Profile  string
	Examples bool

	noHeader bool
}

// BindMap registers the map flags on cmd.
func BindMap(cmd *cobra.Command, o *MapOptions) {
	clibase.Register(cmd, &o.Common)
	fs := cmd.Flags()
	fs.StringVarP(&o.Format, "format", "f", DefaultFormat, "output: csv | tsv | json | jsonl | sam | bam")
	fs.StringVarP(&o.OutPath, "out", "o", "", "write results to file instead of STDOUT")
	fs.StringVar(&o.Histogram, "histogram", "", "write a PNG histogram of alignment percentages")
	fs.IntVar(&o.Bins, "bins", DefaultBins, "histogram bins")
	fs.BoolVar(&o.Sort, "sort", false, "sort results by read id")
	fs.BoolVar(&o.Pretty, "pretty", false, "ASCII alignment block after each row (csv/tsv)")
	fs.BoolVar(&o.noHeader, "no-header", false, "suppress header line (csv/tsv)")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no read maps")
	fs.BoolVar(&o.Progress, "progress", false, "show a progress bar on STDERR")
	fs.StringVar(&o.Profile, "profile", "", "write a cpu or mem profile to the working directory")
	fs.BoolVar(&o.Examples, "examples", false, "print usage examples and exit")
}

// Resolve finalizes options after flag parsing. When --reference is omitted
// the first positional is taken as the reference, so `kmap map ref.fa reads/`
// works. Globs among the read paths are expanded.
func (o *MapOptions) Resolve(args []string) error {
	o.Header = !o.noHeader
	if o.Examples {
		return nil
	}
	if o.Reference == "" && len(args) > 0 {
		o.Reference, args = args[0], args[1:]
	}
	if len(args) > 0 {
		exp, err := cliutil.ExpandPositionals(args)
		if err != nil {
			return err
		}
		o.Reads = append(o.Reads, exp...)
	}
	return o.Validate()
}

// Validate applies map invariants on top of the shared ones.
func (o *MapOptions) Validate() error {
	if err := clibase.Validate(&o.Common); err != nil {
		return err
	}
	if len(o.Reads) == 0 {
		return errors.New("at least one reads file or directory is required")
	}
	if !validFormat(o.Format) {
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	if o.Pretty && o.Format != "csv" && o.Format != "tsv" {
		return fmt.Errorf("--pretty needs --format csv or tsv (got %q)", o.Format)
	}
	if o.Bins < 1 {
		return errors.New("--bins must be ≥ 1")
	}
	switch o.Profile {
	case "", ProfileCPU, ProfileMem:
	default:
		return fmt.Errorf("invalid --profile %q (cpu | mem)", o.Profile)
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}

func validFormat(f string) bool {
	for _, x := range Formats {
		if f == x {
			return true
		}
	}
	return false
}

// LookupOptions holds the flags and arguments of `kmap lookup`.
type LookupOptions struct {
	clibase.Common

	Kmers     []string
	Positions []int
	Dump      bool
	Examples  bool
}

// BindLookup registers the lookup flags on cmd.
func BindLookup(cmd *cobra.Command, o *LookupOptions) {
	clibase.Register(cmd, &o.Common)
	fs := cmd.Flags()
	fs.IntSliceVar(&o.Positions, "pos", nil, "print the reference k-mer at position (repeatable)")
	fs.BoolVar(&o.Dump, "dump", false, "print the whole index as kmer -> positions")
	fs.BoolVar(&o.Examples, "examples", false, "print usage examples and exit")
}

// Resolve collects k-mer positionals and validates.
func (o *LookupOptions) Resolve(args []string) error {
	if o.Examples {
		return nil
	}
	o.Kmers = append(o.Kmers, args...)
	if err := clibase.Validate(&o.Common); err != nil {
		return err
	}
	if len(o.Kmers) == 0 && len(o.Positions) == 0 && !o.Dump {
		return errors.New("nothing to look up: give k-mers, --pos or --dump")
	}
	for _, km := range o.Kmers {
		if len(km) != o.K {
			return fmt.Errorf("k-mer %q has length %d, want %d", km, len(km), o.K)
		}
	}
	return nil
}

// ServeOptions holds the flags of `kmap serve`.
type ServeOptions struct {
	clibase.Common

	Port     int
	Examples bool
}

// BindServe registers the serve flags on cmd.
func BindServe(cmd *cobra.Command, o *ServeOptions) {
	clibase.Register(cmd, &o.Common)
	fs := cmd.Flags()
	fs.IntVarP(&o.Port, "port", "p", DefaultPort, "HTTP service port")
	fs.BoolVar(&o.Examples, "examples", false, "print usage examples and exit")
}

// Resolve validates serve options; positionals are not accepted.
func (o *ServeOptions) Resolve(args []string) error {
	if o.Examples {
		return nil
	}
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	if err := clibase.Validate(&o.Common); err != nil {
		return err
	}
	if o.Port < 1 || o.Port > 65535 {
		return fmt.Errorf("--port must be between 1 and 65535 (got %d)", o.Port)
	}
	return nil
}
