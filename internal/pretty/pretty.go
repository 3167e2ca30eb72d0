package pretty

import (
	"fmt"
	"strings"

	"kmap/internal/index"
	"kmap/internal/mapper"
	"kmap/internal/seq"
)

// Options control the ASCII rendering.
type Options struct {
	// Bases per wrapped block. If <=0, use default (60).
	Width int

	// Glyphs
	MatchGlyph    byte // default '|'
	MismatchGlyph byte // default '.'
	GapGlyph      byte // default '-', reference bases outside the reference
}

// DefaultOptions keeps the current look & feel.
var DefaultOptions = Options{
	Width:         60,
	MatchGlyph:    '|',
	MismatchGlyph: '.',
	GapGlyph:      '-',
}

const linePrefix = "# "

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.MatchGlyph == 0 {
		o.MatchGlyph = DefaultOptions.MatchGlyph
	}
	if o.MismatchGlyph == 0 {
		o.MismatchGlyph = DefaultOptions.MismatchGlyph
	}
	if o.GapGlyph == 0 {
		o.GapGlyph = DefaultOptions.GapGlyph
	}
	return o
}

// RenderResult draws the read under the reference span it was placed on.
// Reads on the '-' strand are shown reverse-complemented so both lines run
// along the reference. Every line starts with "# ".
func RenderResult(r mapper.Result, read seq.Record, ref string, opt Options) string {
	opt = opt.withDefaults()
	var b strings.Builder
	if !r.Aligned {
		fmt.Fprintf(&b, "%s%s unmapped\n\n", linePrefix, r.ReadID)
		return b.String()
	}
	fmt.Fprintf(&b, "%s%s %s start=%d end=%d votes=%d variation=%s\n",
		linePrefix, r.ReadID, r.Strand, r.Start, r.End, r.Votes, r.Variation)

	bases := read.Seq
	label := "read"
	if r.Strand == index.Reverse {
		bases = seq.RevComp(bases)
		label = "rc"
	}
	refRow := make([]byte, len(bases))
	bars := make([]byte, len(bases))
	for i := range bases {
		p := r.Start + i
		if p < 0 || p >= len(ref) {
			refRow[i] = opt.GapGlyph
			bars[i] = ' '
			continue
		}
		refRow[i] = ref[p]
		if ref[p] == bases[i] {
			bars[i] = opt.MatchGlyph
		} else {
			bars[i] = opt.MismatchGlyph
		}
	}

	w := len(fmt.Sprint(r.Start + len(bases)))
	for lo := 0; lo < len(bases); lo += opt.Width {
		hi := lo + opt.Width
		if hi > len(bases) {
			hi = len(bases)
		}
		fmt.Fprintf(&b, "%sref  %*d %s %d\n", linePrefix, w, r.Start+lo, refRow[lo:hi], r.Start+hi-1)
		fmt.Fprintf(&b, "%s     %*s %s\n", linePrefix, w, "", bars[lo:hi])
		fmt.Fprintf(&b, "%s%-4s %*d %s %d\n", linePrefix, label, w, lo, bases[lo:hi], hi-1)
	}
	b.WriteByte('\n')
	return b.String()
}

// Identity returns matched/compared bases over the part of the read that
// lies inside the reference.
func Identity(r mapper.Result, read seq.Record, ref string) (matched, compared int) {
	if !r.Aligned {
		return 0, 0
	}
	bases := read.Seq
	if r.Strand == index.Reverse {
		bases = seq.RevComp(bases)
	}
	for i := range bases {
		p := r.Start + i
		if p < 0 || p >= len(ref) {
			continue
		}
		compared++
		if ref[p] == bases[i] {
			matched++
		}
	}
	return matched, compared
}
