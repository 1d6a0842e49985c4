// Package engine orchestrates benchmark runs across strategies.
package engine

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/wesleyorama2/primebench/internal/benchmark/config"
	"github.com/wesleyorama2/primebench/internal/benchmark/metrics"
	"github.com/wesleyorama2/primebench/internal/benchmark/strategy"
)

// Engine runs the configured strategies sequentially against the shared
// prime workload, timing every run.
//
// Failures are strategy-local: a strategy that errors, times out, or
// disagrees with the others is recorded as failed and the engine moves on
// to the next one. Only cancellation of the parent context stops the whole
// run, in which case the remaining strategies are reported as skipped.
//
// Example usage:
//
//	cfg, _ := config.LoadConfig("bench.yaml")
//	eng, _ := engine.NewEngine(cfg)
//	result, _ := eng.Run(context.Background())
type Engine struct {
	config     *config.BenchConfig
	strategies []strategy.Strategy
	timeout    time.Duration

	// OnStrategyStart, when set, is invoked before each strategy is
	// measured. Skipped strategies do not trigger it.
	OnStrategyStart func(t strategy.Type)

	mu      sync.Mutex
	running bool
}

// StrategyResult contains the outcome of one strategy's measurement.
type StrategyResult struct {
	// Strategy is the type that was measured.
	Strategy strategy.Type `json:"strategy"`

	// Runs is the number of measured (non-warm-up) runs completed.
	Runs int `json:"runs"`

	// Elapsed is the total wall-clock time across measured runs.
	Elapsed time.Duration `json:"elapsed"`

	// Timing is the distribution of per-run wall times.
	Timing *metrics.Stats `json:"timing,omitempty"`

	// Primes is the number of primes the strategy found per run.
	Primes int64 `json:"primes"`

	// Tasks is the number of scheduling units per run.
	Tasks int64 `json:"tasks"`

	// PrimeList holds the collected primes when the run collects results.
	PrimeList []int64 `json:"primeList,omitempty"`

	// Error describes why the strategy's measurement is unavailable.
	Error string `json:"error,omitempty"`

	// Skipped is set when the run was cancelled before this strategy
	// started.
	Skipped bool `json:"skipped,omitempty"`
}

// Failed reports whether the strategy produced no usable measurement.
func (r *StrategyResult) Failed() bool {
	return r.Error != "" || r.Skipped
}

// Result contains the complete benchmark results.
type Result struct {
	// Run metadata
	Name        string    `json:"name"`
	PID         int       `json:"pid"`
	Parallelism int       `json:"parallelism"`
	Bound       int64     `json:"bound"`
	Repetitions int       `json:"repetitions"`
	Warmup      int       `json:"warmup"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`

	// Duration is the wall-clock time for the whole benchmark.
	Duration time.Duration `json:"duration"`

	// Strategies holds per-strategy results in execution order.
	Strategies []*StrategyResult `json:"strategies"`
}

// NewEngine creates a new benchmark engine.
func NewEngine(cfg *config.BenchConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	config.ApplyDefaults(cfg)

	types, err := strategy.ParseTypes(cfg.Strategies)
	if err != nil {
		return nil, err
	}

	strategies := make([]strategy.Strategy, 0, len(types))
	for _, typ := range types {
		st, err := strategy.New(typ)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, st)
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	return &Engine{
		config:     cfg,
		strategies: strategies,
		timeout:    timeout,
	}, nil
}

// Run executes all configured strategies and returns the results.
//
// The returned error is non-nil only when the parent context was cancelled;
// per-strategy failures live on the individual StrategyResult entries.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return nil, fmt.Errorf("engine is already running")
	}
	e.running = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}()

	result := &Result{
		Name:        e.config.Name,
		PID:         os.Getpid(),
		Parallelism: runtime.GOMAXPROCS(0),
		Bound:       e.config.Bound,
		Repetitions: e.config.Repetitions,
		Warmup:      e.config.Warmup,
		StartTime:   time.Now(),
	}

	scfg := e.config.StrategyConfig()

	// referenceCount is the prime count of the first successful strategy;
	// every later one must agree with it.
	referenceCount := int64(-1)
	var referenceType strategy.Type

	for _, st := range e.strategies {
		if ctx.Err() != nil {
			result.Strategies = append(result.Strategies, &StrategyResult{
				Strategy: st.Type(),
				Skipped:  true,
			})
			continue
		}

		if e.OnStrategyStart != nil {
			e.OnStrategyStart(st.Type())
		}

		sr := e.runStrategy(ctx, st, scfg)

		if sr.Error == "" {
			if referenceCount == -1 {
				referenceCount = sr.Primes
				referenceType = sr.Strategy
			} else if sr.Primes != referenceCount {
				sr.Error = fmt.Sprintf("found %d primes, but %s found %d", sr.Primes, referenceType, referenceCount)
			}
		}

		result.Strategies = append(result.Strategies, sr)
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// IsRunning returns true if the engine is currently running.
func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// runStrategy measures a single strategy: warm-up runs first, then the
// configured repetitions, each individually timed.
func (e *Engine) runStrategy(ctx context.Context, st strategy.Strategy, scfg *strategy.Config) *StrategyResult {
	sr := &StrategyResult{Strategy: st.Type()}
	collector := metrics.NewCollector()

	for i := 0; i < e.config.Warmup; i++ {
		if _, _, err := e.timedRun(ctx, st, scfg); err != nil {
			sr.Error = fmt.Sprintf("warm-up run %d: %v", i+1, err)
			return sr
		}
	}

	for i := 0; i < e.config.Repetitions; i++ {
		elapsed, res, err := e.timedRun(ctx, st, scfg)
		if err != nil {
			sr.Error = err.Error()
			return sr
		}

		collector.Record(elapsed)
		sr.Elapsed += elapsed
		sr.Runs++
		sr.Primes = res.Count
		sr.Tasks = res.Tasks
		if res.Primes != nil {
			sr.PrimeList = res.Primes
		}
	}

	stats := collector.Stats()
	sr.Timing = &stats
	return sr
}

// timedRun runs one strategy pass under the per-run timeout, if any, and
// returns its wall-clock duration.
func (e *Engine) timedRun(ctx context.Context, st strategy.Strategy, scfg *strategy.Config) (time.Duration, *strategy.Result, error) {
	runCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := st.Run(runCtx, scfg)
	return time.Since(start), res, err
}
