// internal/app/map.go
package app

import (
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"kmap/internal/appcore"
	"kmap/internal/clibase"
	"kmap/internal/cli"
	"kmap/internal/cmdutil"
)

func newMapCmd(stdout, stderr io.Writer) *cobra.Command {
	var o cli.MapOptions
	cmd := &cobra.Command{
		Use:     "map [flags] [reference.fa] <reads files or dirs>...",
		Short:   "map FASTA/FASTQ reads against a reference",
		Example: clibase.MapExamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Resolve(args); err != nil {
				return usageError{err}
			}
			if o.Examples {
				clibase.PrintExamples(stdout, "kmap map", clibase.MapExamples)
				return nil
			}
			return runMap(cmd, o, stdout, stderr)
		},
	}
	cli.BindMap(cmd, &o)
	return cmd
}

func runMap(cmd *cobra.Command, o cli.MapOptions, stdout, stderr io.Writer) error {
	ctx := cmd.Context()
	log := cmdutil.NewLogger(stderr, o.Quiet, o.Verbose)

	switch o.Profile {
	case cli.ProfileCPU:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	case cli.ProfileMem:
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	m, refName, err := loadMapper(ctx, o.Common, log)
	if err != nil {
		return err
	}

	out := stdout
	if o.OutPath != "" {
		f, err := os.Create(o.OutPath)
		if err != nil {
			return ioError{err}
		}
		defer f.Close()
		out = f
	}

	wf := appcore.NewResultWriterFactory(o.Format, o.Sort, o.Header, runMeta(m, refName))
	if o.Pretty {
		wf = wf.WithPretty(m.Index().Reference())
	}
	code := appcore.Run(ctx, out, stderr, log, appcore.Options{
		ReadPaths:       o.Reads,
		Threads:         o.Threads,
		Histogram:       o.Histogram,
		Bins:            o.Bins,
		Progress:        o.Progress,
		Quiet:           o.Quiet,
		NoMatchExitCode: o.NoMatchExitCode,
	}, m, wf)
	if code != 0 {
		return exitCode(code)
	}
	return nil
}
