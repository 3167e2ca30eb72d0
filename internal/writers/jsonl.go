// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"kmap/internal/jsonlutil"
	"kmap/internal/mapper"
	"kmap/internal/output"
)

// StartResultJSONLWriter streams each mapper.Result as one JSON line (v1).
func StartResultJSONLWriter(out io.Writer, bufSize int) (chan<- mapper.Result, <-chan error) {
	return jsonlutil.Start[mapper.Result](out, bufSize,
		func(enc *json.Encoder, r mapper.Result) error {
			return enc.Encode(output.ToAPIResult(r))
		},
		IsBrokenPipe,
	)
}

type jsonlSink struct {
	in   chan<- mapper.Result
	done <-chan error
	err  error
}

func newJSONLSink(w io.Writer, bufSize int) *jsonlSink {
	in, done := StartResultJSONLWriter(w, bufSize)
	return &jsonlSink{in: in, done: done}
}

func (s *jsonlSink) Write(it output.Item) error {
	if s.err != nil {
		return s.err
	}
	select {
	case s.in <- it.Result:
		return nil
	case err := <-s.done:
		// Encoder stopped early; remember why and refuse further writes.
		if err == nil {
			err = io.ErrClosedPipe
		}
		s.err = err
		return err
	}
}

func (s *jsonlSink) Close() error {
	close(s.in)
	if s.err != nil {
		return s.err
	}
	return <-s.done
}
