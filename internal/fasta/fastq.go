// internal/fasta/fastq.go
package fasta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"kmap/internal/seq"
)

var (
	ErrMalformed        = errors.New("malformed input")
	ErrMissingHeader    = errors.New("expected '@' header")
	ErrMissingSequence  = errors.New("missing sequence")
	ErrMissingSeparator = errors.New("missing '+' separator")
	ErrMissingQuality   = errors.New("missing quality string")
	ErrQualityLength    = errors.New("quality length does not match sequence length")
)

// RecordError describes a FASTQ entry that was skipped.
type RecordError struct {
	ID   string
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("line %d: %v; entry ignored", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v; entry ignored", e.Line, e.ID, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// ScanFASTQ parses four-line FASTQ entries. Malformed entries are reported to
// warn (which may be nil) and skipped; they never abort the scan.
func ScanFASTQ(ctx context.Context, r io.Reader, warn func(error), emit func(seq.Record) error) error {
	if warn == nil {
		warn = func(error) {}
	}
	sc := newScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimRight(sc.Text(), "\r"), true
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] != '@' {
			warn(&RecordError{Line: lineNo, Err: ErrMissingHeader})
			continue
		}
		id := parseHeaderID(line[1:])
		at := lineNo

		s, ok := next()
		if !ok || s == "" {
			warn(&RecordError{ID: id, Line: at, Err: ErrMissingSequence})
			continue
		}
		sep, ok := next()
		if !ok || sep == "" || sep[0] != '+' {
			warn(&RecordError{ID: id, Line: at, Err: ErrMissingSeparator})
			continue
		}
		q, ok := next()
		if !ok || q == "" {
			warn(&RecordError{ID: id, Line: at, Err: ErrMissingQuality})
			continue
		}
		if len(q) != len(s) {
			warn(&RecordError{ID: id, Line: at, Err: ErrQualityLength})
			continue
		}
		if err := emit(seq.Record{ID: id, Seq: strings.ToUpper(s), Qual: q}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fastq scan: %w", err)
	}
	return nil
}

// ReadFASTQ loads the valid entries of a FASTQ file.
func ReadFASTQ(ctx context.Context, path string, warn func(error)) ([]seq.Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var out []seq.Record
	err = ScanFASTQ(ctx, rc, warn, func(r seq.Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
