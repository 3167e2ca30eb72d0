// internal/app/lookup.go
package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"kmap/internal/clibase"
	"kmap/internal/cli"
	"kmap/internal/cmdutil"
	"kmap/internal/common"
	"kmap/internal/mapper"
	"kmap/internal/writers"
)

func newLookupCmd(stdout, stderr io.Writer) *cobra.Command {
	var o cli.LookupOptions
	cmd := &cobra.Command{
		Use:     "lookup [flags] <kmer>...",
		Short:   "inspect the reference index",
		Example: clibase.LookupExamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Resolve(args); err != nil {
				return usageError{err}
			}
			if o.Examples {
				clibase.PrintExamples(stdout, "kmap lookup", clibase.LookupExamples)
				return nil
			}
			log := cmdutil.NewLogger(stderr, o.Quiet, o.Verbose)
			m, _, err := loadMapper(cmd.Context(), o.Common, log)
			if err != nil {
				return err
			}
			return runLookup(stdout, o, m, func(format string, a ...any) {
				cmdutil.Warnf(log, o.Quiet, format, a...)
			})
		},
	}
	cli.BindLookup(cmd, &o)
	return cmd
}

// runLookup prints one "kmer<TAB>strand<TAB>positions" line per k-mer, one
// "pos<TAB>kmer" line per --pos, then the index dump when requested.
func runLookup(stdout io.Writer, o cli.LookupOptions, m *mapper.Mapper, warnf func(string, ...any)) error {
	w := bufio.NewWriter(stdout)
	ix := m.Index()

	for _, km := range common.UniqueUpper(o.Kmers) {
		pos, strand := ix.LookupStrand(km)
		fmt.Fprintf(w, "%s\t%s\t%s\n", km, strand, joinInts(pos))
	}
	for _, p := range o.Positions {
		km, ok := ix.KmerAt(p)
		if !ok {
			warnf("position %d is outside [0, %d]", p, ix.Len()-ix.K())
			continue
		}
		fmt.Fprintf(w, "%d\t%s\n", p, km)
	}
	if o.Dump {
		if err := ix.Dump(w); err != nil && !writers.IsBrokenPipe(err) {
			return ioError{err}
		}
	}
	if err := w.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		return ioError{err}
	}
	return nil
}

func joinInts(v []int) string {
	if len(v) == 0 {
		return "-"
	}
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = strconv.Itoa(x)
	}
	return strings.Join(s, ",")
}
