// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"kmap/internal/cmdutil"
	"kmap/internal/fasta"
	"kmap/internal/mapper"
	"kmap/internal/output"
	"kmap/internal/pipeline"
	"kmap/internal/runutil"
	"kmap/internal/writers"
)

// Options configure one mapping run.
type Options struct {
	ReadPaths []string

	Threads   int
	DedupeCap int // bound on ids remembered for duplicate detection

	Histogram string // PNG path, empty = none
	Bins      int
	Progress  bool

	Quiet           bool
	NoMatchExitCode int
}

// WriterFactory starts the consumer of mapped items.
type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- output.Item, <-chan error)
}

// maxDupWarnings caps how many duplicate ids are named individually.
const maxDupWarnings = 5

// Run loads reads, maps them against m and streams items to the writer.
// The return value is the process exit code.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	log logrus.FieldLogger,
	o Options,
	m *mapper.Mapper,
	wf WriterFactory,
) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	reads, err := fasta.LoadReads(ctx, o.ReadPaths, log)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}

	k := m.K()
	for _, w := range runutil.ValidateK(k, m.Index().Len()) {
		cmdutil.Warnf(log, o.Quiet, "%s", w)
	}
	short, dups := runutil.ReadStats(reads, k, o.DedupeCap)
	if short > 0 {
		cmdutil.Warnf(log, o.Quiet, "%s of %s reads are shorter than k=%d and cannot map",
			humanize.Comma(int64(short)), humanize.Comma(int64(len(reads))), k)
	}
	for i, id := range dups {
		if i == maxDupWarnings {
			cmdutil.Warnf(log, o.Quiet, "%d more duplicate read ids", len(dups)-i)
			break
		}
		cmdutil.Warnf(log, o.Quiet, "duplicate read id %q", id)
	}

	thr := runutil.EffectiveThreads(o.Threads)
	cfg := pipeline.Config{Threads: thr}

	var bar *pb.ProgressBar
	if o.Progress {
		bar = pb.New(len(reads))
		bar.SetWriter(stderr)
		bar.Start()
		cfg.OnResult = func() { bar.Increment() }
	}

	outw := bufio.NewWriter(stdout)
	inCh, writeErr := wf.Start(outw, thr*4)

	var hist []mapper.Result
	mapped, i := 0, 0
	perr := pipeline.ForEachResult(ctx, cfg, m, reads, func(r mapper.Result) error {
		it := output.Item{Read: reads[i], Result: r}
		i++
		if r.Aligned {
			mapped++
		}
		if o.Histogram != "" {
			hist = append(hist, r)
		}
		select {
		case inCh <- it:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)
	if bar != nil {
		bar.Finish()
	}

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}

	log.WithFields(logrus.Fields{
		"reads":  humanize.Comma(int64(len(reads))),
		"mapped": humanize.Comma(int64(mapped)),
	}).Info("mapping finished")

	if o.Histogram != "" {
		if err := writeHistogram(o.Histogram, hist, o.Bins); errors.Is(err, output.ErrNoResults) {
			cmdutil.Warnf(log, o.Quiet, "no reads; histogram %s not written", o.Histogram)
		} else if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if mapped == 0 {
		return o.NoMatchExitCode
	}
	return 0
}

func writeHistogram(path string, list []mapper.Result, bins int) error {
	if len(list) == 0 {
		return output.ErrNoResults
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.WriteHistogram(f, list, bins); err != nil {
		f.Close()
		return fmt.Errorf("histogram %s: %w", path, err)
	}
	return f.Close()
}
