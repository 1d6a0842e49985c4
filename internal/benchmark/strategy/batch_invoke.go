package strategy

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/wesleyorama2/primebench/internal/benchmark/prime"
)

// BatchInvoke submits one task per candidate as a single batch and waits on
// all of them collectively. Each task independently tests its candidate and
// records its outcome into a submission-order slot, so individual outcomes
// stay retrievable after the collective wait.
type BatchInvoke struct{}

// NewBatchInvoke creates a new batch-invoke strategy.
func NewBatchInvoke() *BatchInvoke {
	return &BatchInvoke{}
}

// Type returns the strategy type.
func (s *BatchInvoke) Type() Type {
	return TypeBatchInvoke
}

// Run submits one task per candidate and waits for the whole batch.
func (s *BatchInvoke) Run(ctx context.Context, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Strategy: TypeBatchInvoke}

	// Submission-order slots. Zero means "not prime"; 0 is never a
	// candidate, so it is a safe sentinel.
	var slots []int64
	if cfg.CollectResults {
		slots = make([]int64, prime.CandidateCount(cfg.Bound))
	}

	var count atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	// Submission blocks here once the in-flight bound is reached.
	g.SetLimit(cfg.inFlightLimit())

	var submitted int64
	for candidate := range prime.Candidates(cfg.Bound) {
		if gctx.Err() != nil {
			break
		}
		slot := submitted
		submitted++

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if prime.IsPrime(candidate) {
				count.Add(1)
				if slots != nil {
					slots[slot] = candidate
				}
			}
			return nil
		})
	}
	res.Tasks = submitted

	// Collective wait for everything submitted, on every path.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		// Submission stopped early; the partial batch was still drained.
		return nil, err
	}

	res.Count = count.Load()
	if slots != nil {
		res.Primes = make([]int64, 0, res.Count)
		for _, v := range slots {
			if v != 0 {
				res.Primes = append(res.Primes, v)
			}
		}
	}
	return res, nil
}

var _ Strategy = (*BatchInvoke)(nil)
