// internal/output/histogram.go
package output

import (
	"errors"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"kmap/internal/mapper"
)

// ErrNoResults is returned when there is nothing to plot.
var ErrNoResults = errors.New("no results to plot")

// WriteHistogram renders the distribution of per-read alignment percentages
// as a PNG.
func WriteHistogram(w io.Writer, list []mapper.Result, bins int) error {
	if len(list) == 0 {
		return ErrNoResults
	}
	if bins < 1 {
		bins = 20
	}
	vals := make(plotter.Values, len(list))
	for i, r := range list {
		vals[i] = r.AlignmentPercent()
	}

	p := plot.New()
	p.Title.Text = "Alignment percentage"
	p.X.Label.Text = "alignment %"
	p.Y.Label.Text = "reads"
	p.X.Min, p.X.Max = 0, 100

	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return err
	}
	p.Add(h)

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
