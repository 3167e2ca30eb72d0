// internal/writers/writer.go
package writers

import (
	"io"
	"sort"

	"kmap/internal/common"
	"kmap/internal/output"
)

// StartResultWriter spins up a writer goroutine for one output format.
// Items are written as they arrive unless o.Sort is set, in which case they
// are buffered and ordered by read id.
func StartResultWriter(out io.Writer, format string, o Options, bufSize int) (chan<- output.Item, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Item, bufSize)
	errCh := make(chan error, 1)

	go func() {
		sink, err := New(format, out, o)
		if err != nil {
			drain(in)
			errCh <- err
			return
		}
		if o.Sort {
			var buf []output.Item
			for it := range in {
				buf = append(buf, it)
			}
			SortItems(buf)
			err = writeAll(sink, buf)
		} else {
			err = stream(sink, in)
		}
		errCh <- err
	}()

	return in, errCh
}

// SortItems orders items by common.LessResult.
func SortItems(items []output.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return common.LessResult(items[i].Result, items[j].Result)
	})
}

func writeAll(s Sink, items []output.Item) error {
	for _, it := range items {
		if err := s.Write(it); err != nil {
			_ = s.Close()
			return err
		}
	}
	return s.Close()
}

func stream(s Sink, in <-chan output.Item) error {
	for it := range in {
		if err := s.Write(it); err != nil {
			_ = s.Close()
			drain(in)
			return err
		}
	}
	return s.Close()
}

// drain keeps producers from blocking after the writer has failed.
func drain(in <-chan output.Item) {
	for range in {
	}
}
