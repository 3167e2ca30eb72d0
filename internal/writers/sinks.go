// internal/writers/sinks.go
package writers

import (
	"io"

	"kmap/internal/mapper"
	"kmap/internal/output"
	"kmap/internal/pretty"
)

// Output formats.
const (
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatSAM   = "sam"
	FormatBAM   = "bam"
)

func init() {
	Register(FormatCSV, delimitedFactory(','))
	Register(FormatTSV, delimitedFactory('\t'))
	Register(FormatJSON, func(w io.Writer, o Options) (Sink, error) {
		return &jsonSink{w: w, meta: o.Meta}, nil
	})
	Register(FormatJSONL, func(w io.Writer, o Options) (Sink, error) {
		return newJSONLSink(w, 64), nil
	})
	Register(FormatSAM, func(w io.Writer, o Options) (Sink, error) {
		return output.NewSAM(w, o.Meta)
	})
	Register(FormatBAM, func(w io.Writer, o Options) (Sink, error) {
		return output.NewBAM(w, o.Meta)
	})
}

type delimitedSink struct {
	d      *output.Delimited
	pretty bool
	ref    string
}

func delimitedFactory(sep rune) Factory {
	return func(w io.Writer, o Options) (Sink, error) {
		d, err := output.NewDelimited(w, sep, o.Header)
		if err != nil {
			return nil, err
		}
		return delimitedSink{d: d, pretty: o.Pretty, ref: o.Reference}, nil
	}
}

func (s delimitedSink) Write(it output.Item) error {
	if err := s.d.Write(it.Result); err != nil {
		return err
	}
	if !s.pretty {
		return nil
	}
	return s.d.WriteComment(pretty.RenderResult(it.Result, it.Read, s.ref, pretty.DefaultOptions))
}

func (s delimitedSink) Close() error { return s.d.Close() }

// jsonSink buffers results; the document is written on Close.
type jsonSink struct {
	w    io.Writer
	meta output.Meta
	buf  []mapper.Result
}

func (s *jsonSink) Write(it output.Item) error {
	s.buf = append(s.buf, it.Result)
	return nil
}

func (s *jsonSink) Close() error { return output.WriteJSON(s.w, s.meta, s.buf) }
