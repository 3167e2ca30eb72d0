package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmap/internal/mapper"
	"kmap/internal/seq"
)

// Compile-time check: the concrete mapper satisfies the minimal contract.
var _ Analyzer = (*mapper.Mapper)(nil)

type fakeAnalyzer struct{ calls atomic.Int64 }

func (f *fakeAnalyzer) AnalyzeRead(r seq.Record) mapper.Result {
	f.calls.Add(1)
	return mapper.Result{ReadID: r.ID, ReadLen: len(r.Seq)}
}

func makeReads(n int) []seq.Record {
	out := make([]seq.Record, n)
	for i := range out {
		out[i] = seq.Record{ID: fmt.Sprintf("r%03d", i), Seq: "ACGTACGT"[:1+i%8]}
	}
	return out
}

func TestForEachResult_PreservesInputOrder(t *testing.T) {
	reads := makeReads(200)
	for _, thr := range []int{0, 1, 4, 16} {
		var got []string
		var progress int
		err := ForEachResult(context.Background(), Config{Threads: thr, OnResult: func() { progress++ }},
			&fakeAnalyzer{}, reads, func(r mapper.Result) error {
				got = append(got, r.ReadID)
				return nil
			})
		require.NoError(t, err)
		require.Len(t, got, len(reads))
		for i, r := range reads {
			assert.Equal(t, r.ID, got[i])
		}
		assert.Equal(t, len(reads), progress)
	}
}

func TestForEachResult_StopsOnVisitError(t *testing.T) {
	boom := errors.New("boom")
	n := 0
	err := ForEachResult(context.Background(), Config{Threads: 4}, &fakeAnalyzer{}, makeReads(100),
		func(mapper.Result) error {
			n++
			if n == 3 {
				return boom
			}
			return nil
		})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, n)
}

func TestForEachResult_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachResult(ctx, Config{Threads: 2}, &fakeAnalyzer{}, makeReads(10), func(mapper.Result) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMapShardedEqualsSequential(t *testing.T) {
	m := mapper.New(4)
	m.LoadReference("ACGTACGTACGGTTACCAGT")
	reads := []seq.Record{
		{ID: "a", Seq: "ACGTAC"},
		{ID: "b", Seq: "GGTTACC"},
		{ID: "c", Seq: "TT"},
		{ID: "d", Seq: "ACTGGTAACC"},
		{ID: "a", Seq: "CCAGT"},
	}
	want := m.MapAll(reads)
	for _, thr := range []int{1, 2, 3, 8} {
		got, err := MapSharded(context.Background(), Config{Threads: thr}, m, reads)
		require.NoError(t, err)
		assert.Equal(t, want, got, "threads=%d", thr)
	}
}

func TestMapShardedEmptyAndCanceled(t *testing.T) {
	got, err := MapSharded(context.Background(), Config{Threads: 4}, &fakeAnalyzer{}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = MapSharded(ctx, Config{Threads: 4}, &fakeAnalyzer{}, makeReads(10))
	assert.ErrorIs(t, err, context.Canceled)
}
