package strategy

import (
	"context"
)

// SingleTask submits the entire parallel filter as one task and blocks on
// that task's single future. It exists to measure what one extra scheduling
// hop costs over the plain parallel strategy, nothing more.
type SingleTask struct{}

// NewSingleTask creates a new single-task strategy.
func NewSingleTask() *SingleTask {
	return &SingleTask{}
}

// Type returns the strategy type.
func (s *SingleTask) Type() Type {
	return TypeSingleTask
}

// Run wraps the parallel filter in one task and waits for its result.
func (s *SingleTask) Run(ctx context.Context, cfg *Config) (*Result, error) {
	type outcome struct {
		res *Result
		err error
	}

	future := make(chan outcome, 1)
	go func() {
		r, err := (&Parallel{}).run(ctx, cfg)
		future <- outcome{res: r, err: err}
	}()

	// Single blocking wait. The inner run observes ctx itself, so on
	// cancellation the future still resolves and nothing is leaked.
	o := <-future
	if o.err != nil {
		return nil, o.err
	}

	o.res.Strategy = TypeSingleTask
	o.res.Tasks++ // the wrapping task
	return o.res, nil
}

var _ Strategy = (*SingleTask)(nil)
