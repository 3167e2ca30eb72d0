// internal/fasta/fasta.go
package fasta

import (
	"context"
	"fmt"
	"io"
	"strings"

	"kmap/internal/seq"
)

// ScanFASTA parses FASTA from r and calls emit once per record. Sequence
// lines are joined and upper-cased; blank lines are skipped. Cancellation via
// ctx is checked between lines.
func ScanFASTA(ctx context.Context, r io.Reader, emit func(seq.Record) error) error {
	sc := newScanner(r)
	var (
		id   string
		seen bool
		sb   strings.Builder
	)
	flush := func() error {
		if !seen {
			return nil
		}
		rec := seq.Record{ID: id, Seq: strings.ToUpper(sb.String())}
		sb.Reset()
		return emit(rec)
	}
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			seen = true
			continue
		}
		if !seen {
			return fmt.Errorf("%w: sequence data before first '>' header", ErrMalformed)
		}
		sb.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadFASTA loads every record of a FASTA file ("-" for stdin, gzip allowed).
func ReadFASTA(ctx context.Context, path string) ([]seq.Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var out []seq.Record
	err = ScanFASTA(ctx, rc, func(r seq.Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
