// internal/appcore/writer_factories.go
package appcore

import (
	"io"

	"kmap/internal/output"
	"kmap/internal/writers"
)

// ResultWriterFactory starts a registry-backed writer for one format.
type ResultWriterFactory struct {
	Format string
	Opts   writers.Options
}

func NewResultWriterFactory(format string, sort, header bool, meta output.Meta) ResultWriterFactory {
	return ResultWriterFactory{
		Format: format,
		Opts:   writers.Options{Meta: meta, Header: header, Sort: sort},
	}
}

// WithPretty enables ASCII alignment blocks drawn against ref.
func (w ResultWriterFactory) WithPretty(ref string) ResultWriterFactory {
	w.Opts.Pretty = true
	w.Opts.Reference = ref
	return w
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Item, <-chan error) {
	return writers.StartResultWriter(out, w.Format, w.Opts, bufSize)
}
