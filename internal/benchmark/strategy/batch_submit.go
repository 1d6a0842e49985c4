package strategy

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/wesleyorama2/primebench/internal/benchmark/prime"
)

// futureOutcome is what a per-candidate task resolves its handle with.
type futureOutcome struct {
	candidate int64
	prime     bool
}

// BatchSubmit submits one task per candidate individually, collecting a
// future handle for each in submission order. The handles are always
// drained before Run returns - that drain is both the batch wait and the
// guarantee that no task outlives the call. Whether the drained outcomes
// are kept is controlled by Config.CollectResults.
type BatchSubmit struct{}

// NewBatchSubmit creates a new batch-submit strategy.
func NewBatchSubmit() *BatchSubmit {
	return &BatchSubmit{}
}

// Type returns the strategy type.
func (s *BatchSubmit) Type() Type {
	return TypeBatchSubmit
}

// Run submits per-candidate tasks one at a time and drains their handles.
func (s *BatchSubmit) Run(ctx context.Context, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Strategy: TypeBatchSubmit}
	sem := semaphore.NewWeighted(int64(cfg.inFlightLimit()))
	handles := make([]chan futureOutcome, 0, prime.CandidateCount(cfg.Bound))

	var submitErr error
	for candidate := range prime.Candidates(cfg.Bound) {
		// Acquire is the submission point; it also observes cancellation.
		if err := sem.Acquire(ctx, 1); err != nil {
			submitErr = err
			break
		}

		handle := make(chan futureOutcome, 1)
		handles = append(handles, handle)
		go func() {
			defer sem.Release(1)
			handle <- futureOutcome{candidate: candidate, prime: prime.IsPrime(candidate)}
		}()
	}
	res.Tasks = int64(len(handles))

	// Every handle is buffered and resolves exactly once, so this drain
	// cannot block forever and nothing submitted is left running.
	for _, handle := range handles {
		o := <-handle
		if submitErr != nil || !o.prime {
			continue
		}
		res.Count++
		if cfg.CollectResults {
			res.Primes = append(res.Primes, o.candidate)
		}
	}

	if submitErr != nil {
		return nil, submitErr
	}
	return res, nil
}

var _ Strategy = (*BatchSubmit)(nil)
