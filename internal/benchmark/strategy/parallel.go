package strategy

import (
	"context"

	"github.com/Jeffail/tunny"
	"golang.org/x/sync/errgroup"

	"github.com/wesleyorama2/primebench/internal/benchmark/prime"
)

// spansPerWorker controls how many partitions each pool worker gets on
// average. More than one keeps workers busy when spans finish unevenly
// (candidates near the bound cost more per primality test).
const spansPerWorker = 4

// span is a contiguous run of odd candidates [Lo, Hi), advancing by 2.
type span struct {
	Lo, Hi int64
}

// spanResult is the partial result of filtering one span.
type spanResult struct {
	count  int64
	primes []int64
	err    error
}

// filterSpan applies the predicate to every candidate in the span,
// polling ctx on a stride so a cancelled run stops mid-span.
func filterSpan(ctx context.Context, sp span, collect bool) spanResult {
	const cancelStride = 1 << 13

	var r spanResult
	var seen int64
	for n := sp.Lo; n < sp.Hi; n += 2 {
		if seen%cancelStride == 0 {
			if err := ctx.Err(); err != nil {
				r.err = err
				return r
			}
		}
		seen++

		if prime.IsPrime(n) {
			r.count++
			if collect {
				r.primes = append(r.primes, n)
			}
		}
	}
	return r
}

// partitionCandidates splits the candidate sequence for bound into at most
// parts contiguous spans of near-equal length.
func partitionCandidates(bound int64, parts int) []span {
	total := prime.CandidateCount(bound)
	if total == 0 || parts < 1 {
		return nil
	}
	if int64(parts) > total {
		parts = int(total)
	}

	spans := make([]span, 0, parts)
	per := total / int64(parts)
	rem := total % int64(parts)

	lo := int64(3)
	for i := 0; i < parts; i++ {
		n := per
		if int64(i) < rem {
			n++
		}
		hi := lo + 2*n
		spans = append(spans, span{Lo: lo, Hi: hi})
		lo = hi
	}
	return spans
}

// Parallel fans contiguous partitions of the candidate sequence out over a
// fixed-size worker pool and merges the partial results in submission
// order. The caller has no visibility into individual workers; it blocks
// until every partition completes.
type Parallel struct{}

// NewParallel creates a new data-parallel strategy.
func NewParallel() *Parallel {
	return &Parallel{}
}

// Type returns the strategy type.
func (s *Parallel) Type() Type {
	return TypeParallel
}

// Run partitions the sequence and filters the partitions on a worker pool.
func (s *Parallel) Run(ctx context.Context, cfg *Config) (*Result, error) {
	res, err := s.run(ctx, cfg)
	if err != nil {
		return nil, err
	}
	res.Strategy = TypeParallel
	return res, nil
}

// run is shared with SingleTask, which wraps the same filter in one task.
func (s *Parallel) run(ctx context.Context, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workers := cfg.workerCount()
	spans := partitionCandidates(cfg.Bound, workers*spansPerWorker)

	res := &Result{Tasks: int64(len(spans))}
	if len(spans) == 0 {
		return res, nil
	}

	g, gctx := errgroup.WithContext(ctx)

	pool := tunny.NewFunc(workers, func(payload interface{}) interface{} {
		return filterSpan(gctx, payload.(span), cfg.CollectResults)
	})
	// Close waits for busy workers, so no partition outlives this call.
	defer pool.Close()

	out := make([]spanResult, len(spans))

	for i, sp := range spans {
		g.Go(func() error {
			v, err := pool.ProcessCtx(gctx, sp)
			if err != nil {
				return err
			}
			sr := v.(spanResult)
			if sr.err != nil {
				return sr.err
			}
			out[i] = sr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge in submission order; spans are contiguous so the primes come
	// out ascending.
	for _, sr := range out {
		res.Count += sr.count
		if cfg.CollectResults {
			res.Primes = append(res.Primes, sr.primes...)
		}
	}
	return res, nil
}

var _ Strategy = (*Parallel)(nil)
