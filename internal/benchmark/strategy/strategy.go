// Package strategy provides the concurrency strategies benchmarked against
// the shared prime workload.
package strategy

import (
	"context"
	"runtime"
)

// Type identifies the type of strategy.
type Type string

const (
	// TypeSerial filters the candidate sequence on the calling goroutine.
	TypeSerial Type = "serial"

	// TypeParallel fans contiguous partitions of the sequence out over a
	// fixed worker pool and merges the partial results.
	TypeParallel Type = "parallel"

	// TypeSingleTask submits the whole parallel filter as one task and
	// blocks on its single future.
	TypeSingleTask Type = "single-task"

	// TypeBatchInvoke submits one task per candidate as a batch and waits
	// on all of them collectively.
	TypeBatchInvoke Type = "batch-invoke"

	// TypeBatchSubmit submits one task per candidate individually, each
	// resolving its own future handle; handles are collected in submission
	// order.
	TypeBatchSubmit Type = "batch-submit"
)

// DefaultBound is the candidate upper bound used when none is configured,
// matching the original experiment.
const DefaultBound int64 = 10_000_000

// defaultMaxInFlight bounds concurrently running per-candidate tasks.
// Submission blocks once the bound is reached, so the one-task-per-candidate
// model survives bounds in the millions without exhausting memory.
const defaultMaxInFlight = 8192

// Strategy defines the interface for benchmark execution strategies.
//
// Strategies control HOW the candidate sequence is scheduled - on the
// calling goroutine, over a partitioned worker pool, or as per-candidate
// tasks. Every strategy applies the same generator and predicate and must
// find the same set of primes for a given bound.
type Strategy interface {
	// Type returns the strategy type.
	Type() Type

	// Run filters the candidate sequence under this strategy's scheduling
	// model and blocks until complete. Cancelling the context aborts the
	// run; no task may outlive the call's return.
	Run(ctx context.Context, cfg *Config) (*Result, error)
}

// Config contains configuration shared by all strategies.
type Config struct {
	// Bound is the exclusive upper bound of the candidate sequence.
	Bound int64 `json:"bound" yaml:"bound"`

	// Workers is the partition pool size for the parallel strategies.
	// Zero means GOMAXPROCS.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`

	// MaxInFlight caps concurrently running tasks for the per-candidate
	// strategies. Zero means the default bound.
	MaxInFlight int `json:"maxInFlight,omitempty" yaml:"maxInFlight,omitempty"`

	// CollectResults makes strategies retain the primes they find, in
	// submission order. When false only the count is kept; tasks are
	// still waited on before Run returns.
	CollectResults bool `json:"collectResults,omitempty" yaml:"collectResults,omitempty"`
}

// Validate validates the strategy configuration.
func (c *Config) Validate() error {
	if c.Bound < 0 {
		return &ValidationError{Field: "bound", Message: "bound must be >= 0"}
	}
	if c.Workers < 0 {
		return &ValidationError{Field: "workers", Message: "workers must be >= 0"}
	}
	if c.MaxInFlight < 0 {
		return &ValidationError{Field: "maxInFlight", Message: "maxInFlight must be >= 0"}
	}
	return nil
}

// workerCount resolves the configured worker count.
func (c *Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// inFlightLimit resolves the configured in-flight task bound.
func (c *Config) inFlightLimit() int {
	if c.MaxInFlight > 0 {
		return c.MaxInFlight
	}
	return defaultMaxInFlight
}

// Result contains what a single strategy run found.
type Result struct {
	// Strategy is the type that produced this result.
	Strategy Type `json:"strategy"`

	// Count is the number of primes found.
	Count int64 `json:"count"`

	// Tasks is the number of scheduling units the run created.
	Tasks int64 `json:"tasks"`

	// Primes holds the primes found, ascending, when CollectResults is set.
	Primes []int64 `json:"primes,omitempty"`
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error on field '" + e.Field + "': " + e.Message
}
