// internal/output/text.go
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"kmap/internal/mapper"
)

// Delimited writes CSV or TSV rows followed by a summary block.
type Delimited struct {
	out io.Writer
	w   *csv.Writer
	sum *Summary
}

// NewDelimited writes the header row (when header is set) and returns a
// writer for result rows. sep is ',' for CSV and '\t' for TSV.
func NewDelimited(w io.Writer, sep rune, header bool) (*Delimited, error) {
	cw := csv.NewWriter(w)
	cw.Comma = sep
	if header {
		if err := cw.Write(Header); err != nil {
			return nil, err
		}
	}
	return &Delimited{out: w, w: cw, sum: NewSummary()}, nil
}

func (d *Delimited) Write(r mapper.Result) error {
	d.sum.Add(r)
	return d.w.Write(FormatRow(r))
}

// WriteComment flushes pending rows and writes s verbatim.
func (d *Delimited) WriteComment(s string) error {
	d.w.Flush()
	if err := d.w.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(d.out, s)
	return err
}

// Close appends the summary block (a blank line, then "# key" / value rows)
// and flushes.
func (d *Delimited) Close() error {
	s := d.sum.API()
	num := func(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
	rows := [][]string{
		{"# total_reads", strconv.Itoa(s.TotalReads)},
		{"# mapped_reads", strconv.Itoa(s.MappedReads)},
		{"# mapped_pct", num(s.MappedPct)},
		{"# strand_+", strconv.Itoa(s.Strands["+"])},
		{"# strand_-", strconv.Itoa(s.Strands["-"])},
		{"# strand_NA", strconv.Itoa(s.Strands["NA"])},
		{"# variation_none", strconv.Itoa(s.Variations["none"])},
		{"# variation_mutation", strconv.Itoa(s.Variations["mutation"])},
		{"# variation_error", strconv.Itoa(s.Variations["error"])},
	}
	if q := s.Quality; q != nil {
		rows = append(rows,
			[]string{"# quality_mean_all", num(q.MeanAll)},
			[]string{"# quality_median_all", num(q.MedianAll)},
			[]string{"# quality_mean_mapped", num(q.MeanMapped)},
			[]string{"# quality_median_mapped", num(q.MedianMapped)},
		)
	}
	d.w.Flush()
	if err := d.w.Error(); err != nil {
		return err
	}
	if _, err := io.WriteString(d.out, "\n"); err != nil {
		return err
	}
	return d.w.WriteAll(rows)
}

// WriteDelimited writes a complete CSV/TSV report for list.
func WriteDelimited(w io.Writer, list []mapper.Result, sep rune, header bool) error {
	d, err := NewDelimited(w, sep, header)
	if err != nil {
		return err
	}
	for _, r := range list {
		if err := d.Write(r); err != nil {
			return err
		}
	}
	return d.Close()
}
