package strategy

import (
	"context"

	"github.com/wesleyorama2/primebench/internal/benchmark/prime"
)

// Serial filters the candidate sequence synchronously on the calling
// goroutine, in order. It is the correctness reference and the baseline
// every concurrent strategy is measured against.
type Serial struct{}

// NewSerial creates a new serial strategy.
func NewSerial() *Serial {
	return &Serial{}
}

// Type returns the strategy type.
func (s *Serial) Type() Type {
	return TypeSerial
}

// Run filters the sequence in order on the calling goroutine.
func (s *Serial) Run(ctx context.Context, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Strategy: TypeSerial}

	// Cancellation is polled on a stride so the hot loop stays hot.
	const cancelStride = 1 << 13
	var seen int64

	for candidate := range prime.Candidates(cfg.Bound) {
		if seen%cancelStride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		seen++

		if prime.IsPrime(candidate) {
			res.Count++
			if cfg.CollectResults {
				res.Primes = append(res.Primes, candidate)
			}
		}
	}

	return res, nil
}

var _ Strategy = (*Serial)(nil)
