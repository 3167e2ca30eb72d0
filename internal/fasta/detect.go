// internal/fasta/detect.go
package fasta

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"kmap/internal/seq"
)

// Format is a sequence file format sniffed from the first non-empty line.
type Format string

const (
	FormatFASTA   Format = "fasta"
	FormatFASTQ   Format = "fastq"
	FormatUnknown Format = "unknown"
)

// DetectFormat reports FASTA for a leading '>' and FASTQ for a leading '@'.
func DetectFormat(path string) (Format, error) {
	rc, err := openReader(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer rc.Close()
	return sniff(bufio.NewReader(rc))
}

// sniff consumes leading whitespace from br and peeks at the first byte of
// the first non-empty line. The byte itself stays in br.
func sniff(br *bufio.Reader) (Format, error) {
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return FormatUnknown, nil
		}
		if err != nil {
			return FormatUnknown, err
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return FormatUnknown, err
		}
		switch c {
		case '>':
			return FormatFASTA, nil
		case '@':
			return FormatFASTQ, nil
		}
		return FormatUnknown, nil
	}
}

// ListFiles returns the regular files directly inside dir, sorted by name.
func ListFiles(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	var out []string
	for _, e := range ents {
		if e.Type().IsRegular() {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

// ScanAny sniffs r and parses it as FASTA or FASTQ from the same stream,
// so it works on pipes. Nothing is emitted for FormatUnknown.
func ScanAny(ctx context.Context, r io.Reader, warn func(error), emit func(seq.Record) error) (Format, error) {
	br := bufio.NewReader(r)
	f, err := sniff(br)
	if err != nil {
		return FormatUnknown, err
	}
	switch f {
	case FormatFASTA:
		return f, ScanFASTA(ctx, br, emit)
	case FormatFASTQ:
		return f, ScanFASTQ(ctx, br, warn, emit)
	}
	return FormatUnknown, nil
}

// ReadAny opens path once ("-" for stdin) and parses it with ScanAny.
func ReadAny(ctx context.Context, path string, log logrus.FieldLogger) ([]seq.Record, Format, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, FormatUnknown, err
	}
	defer rc.Close()

	var recs []seq.Record
	f, err := ScanAny(ctx, rc, func(e error) {
		log.WithField("file", path).Warn(e)
	}, func(r seq.Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, f, fmt.Errorf("%s: %w", path, err)
	}
	return recs, f, nil
}

// LoadReads collects reads from files and directories. Directories are
// scanned one level deep. Files of unknown format, or without any valid
// read, are skipped with a warning; I/O errors are returned.
func LoadReads(ctx context.Context, paths []string, log logrus.FieldLogger) ([]seq.Record, error) {
	var files []string
	for _, p := range paths {
		if p == "-" {
			files = append(files, p)
			continue
		}
		st, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !st.IsDir() {
			files = append(files, p)
			continue
		}
		fs, err := ListFiles(p)
		if err != nil {
			return nil, err
		}
		files = append(files, fs...)
	}

	var reads []seq.Record
	for _, fn := range files {
		recs, f, err := ReadAny(ctx, fn, log)
		if err != nil {
			return nil, err
		}
		if f == FormatUnknown {
			log.WithField("file", fn).Warn("unknown format, ignored")
			continue
		}
		if len(recs) == 0 {
			log.WithField("file", fn).Warn("no valid reads, ignored")
			continue
		}
		log.WithFields(logrus.Fields{"file": fn, "format": f, "reads": len(recs)}).Debug("loaded reads")
		reads = append(reads, recs...)
	}
	return reads, nil
}
