// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"kmap/internal/output"
)

// Sink consumes items in order. Close flushes anything buffered.
type Sink interface {
	Write(output.Item) error
	Close() error
}

// Options are shared by every sink factory.
type Options struct {
	Meta   output.Meta
	Header bool // CSV/TSV header row
	Sort   bool // order results by read id before writing

	// Pretty appends an ASCII alignment block after each CSV/TSV row;
	// Reference is the text the blocks are drawn against.
	Pretty    bool
	Reference string
}

// Factory builds a sink for one output stream.
type Factory func(w io.Writer, o Options) (Sink, error)

// Writer registry (format → factory). Formats register in init() blocks.
var registry = map[string]Factory{}

// Register adds or replaces (last wins) the factory for format.
func Register(format string, f Factory) { registry[format] = f }

// Formats lists registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Supported reports whether format has a registered writer.
func Supported(format string) bool {
	_, ok := registry[format]
	return ok
}

// New dispatches to the factory registered for format.
func New(format string, w io.Writer, o Options) (Sink, error) {
	f, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return f(w, o)
}
