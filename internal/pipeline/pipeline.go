// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"kmap/internal/mapper"
	"kmap/internal/seq"
)

// Config controls the worker pool.
type Config struct {
	Threads  int    // number of worker goroutines (>=1)
	OnResult func() // optional progress hook; MapSharded calls it from several goroutines
}

func (c Config) threads(n int) int {
	t := c.Threads
	if t < 1 {
		t = 1
	}
	if n > 0 && t > n {
		t = n
	}
	return t
}

// ForEachResult analyzes reads on cfg.Threads workers and calls visit once
// per read, in input order, from a single goroutine. It returns the first
// visit error or ctx.Err() when canceled.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	a Analyzer,
	reads []seq.Record,
	visit func(mapper.Result) error,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		i    int
		read seq.Record
	}
	type done struct {
		i   int
		res mapper.Result
	}
	thr := cfg.threads(len(reads))
	jobs := make(chan job, thr*2)
	results := make(chan done, thr*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(thr)
	for w := 0; w < thr; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					select {
					case results <- done{i: j.i, res: a.AnalyzeRead(j.read)}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: restores input order before visiting.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]mapper.Result)
		next := 0
		for d := range results {
			if cerr != nil {
				continue
			}
			pending[d.i] = d.res
			for {
				r, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if cfg.OnResult != nil {
					cfg.OnResult()
				}
				if err := visit(r); err != nil {
					cerr = err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
feed:
	for i, r := range reads {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{i: i, read: r}:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	return ctx.Err()
}

// MapSharded splits reads into one contiguous shard per worker, builds an
// independent partial map per shard and merges them in shard order, so a
// repeated read id keeps its last result exactly like mapper.MapAll.
func MapSharded(ctx context.Context, cfg Config, a Analyzer, reads []seq.Record) (map[string]mapper.Result, error) {
	thr := cfg.threads(len(reads))
	size := (len(reads) + thr - 1) / thr
	parts := make([]map[string]mapper.Result, thr)

	var wg sync.WaitGroup
	for s := 0; s < thr; s++ {
		lo := s * size
		hi := lo + size
		if lo > len(reads) {
			lo = len(reads)
		}
		if hi > len(reads) {
			hi = len(reads)
		}
		wg.Add(1)
		go func(s int, shard []seq.Record) {
			defer wg.Done()
			part := make(map[string]mapper.Result, len(shard))
			for _, r := range shard {
				if ctx.Err() != nil {
					return
				}
				part[r.ID] = a.AnalyzeRead(r)
				if cfg.OnResult != nil {
					cfg.OnResult()
				}
			}
			parts[s] = part
		}(s, reads[lo:hi])
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(map[string]mapper.Result, len(reads))
	for _, part := range parts {
		for id, r := range part {
			out[id] = r
		}
	}
	return out, nil
}
