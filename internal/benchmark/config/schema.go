// Package config provides configuration parsing and validation for the
// benchmark harness.
package config

import (
	"time"

	"github.com/wesleyorama2/primebench/internal/benchmark/strategy"
)

// BenchConfig is the root configuration for a benchmark run.
//
// Example YAML:
//
//	name: "Prime Strategies"
//	bound: 10000000
//	strategies: [serial, parallel]
//	repetitions: 5
//	warmup: 1
//	timeout: 2m
type BenchConfig struct {
	// Name of the benchmark (for reporting)
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Bound is the exclusive upper bound of the candidate sequence.
	// Zero means the default (10,000,000).
	Bound int64 `json:"bound,omitempty" yaml:"bound,omitempty"`

	// Strategies names the strategy types to run, in order.
	// Empty means all five, in canonical order.
	Strategies []string `json:"strategies,omitempty" yaml:"strategies,omitempty"`

	// Repetitions is the number of measured runs per strategy.
	// Zero means 1.
	Repetitions int `json:"repetitions,omitempty" yaml:"repetitions,omitempty"`

	// Warmup is the number of unmeasured runs per strategy before the
	// measured ones.
	Warmup int `json:"warmup,omitempty" yaml:"warmup,omitempty"`

	// Workers is the worker pool size for the parallel strategies.
	// Zero means GOMAXPROCS.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`

	// MaxInFlight caps concurrently running per-candidate tasks.
	MaxInFlight int `json:"maxInFlight,omitempty" yaml:"maxInFlight,omitempty"`

	// CollectResults makes every strategy retain the primes it finds.
	CollectResults bool `json:"collectResults,omitempty" yaml:"collectResults,omitempty"`

	// Timeout bounds each strategy run (e.g. "2m"). A run that exceeds it
	// is aborted and reported as failed; the remaining strategies still
	// run. Empty means no bound.
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// jsonSchema is the schema JSON config documents are validated against.
const jsonSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"bound": {"type": "integer", "minimum": 0},
		"strategies": {"type": "array", "items": {"type": "string"}},
		"repetitions": {"type": "integer", "minimum": 0},
		"warmup": {"type": "integer", "minimum": 0},
		"workers": {"type": "integer", "minimum": 0},
		"maxInFlight": {"type": "integer", "minimum": 0},
		"collectResults": {"type": "boolean"},
		"timeout": {"type": "string"}
	},
	"additionalProperties": false
}`

// ApplyDefaults fills in default values for unset fields.
func ApplyDefaults(c *BenchConfig) {
	if c.Name == "" {
		c.Name = "Prime Strategies"
	}
	if c.Bound == 0 {
		c.Bound = strategy.DefaultBound
	}
	if c.Repetitions == 0 {
		c.Repetitions = 1
	}
}

// StrategyConfig converts the benchmark configuration into the per-run
// strategy configuration.
func (c *BenchConfig) StrategyConfig() *strategy.Config {
	return &strategy.Config{
		Bound:          c.Bound,
		Workers:        c.Workers,
		MaxInFlight:    c.MaxInFlight,
		CollectResults: c.CollectResults,
	}
}

// TimeoutDuration parses the per-strategy timeout. Zero means unbounded.
func (c *BenchConfig) TimeoutDuration() (time.Duration, error) {
	return ParseDurationString(c.Timeout)
}
