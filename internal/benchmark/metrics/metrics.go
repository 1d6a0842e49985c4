// Package metrics collects wall-clock timing distributions for benchmark
// runs using HDR histograms.
package metrics

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Collector records per-run wall times for one strategy.
//
// Percentiles come from an HDR histogram, so repeated-run statistics stay
// O(1) to compute regardless of repetition count.
//
// # Thread Safety
//
// Collector is safe for concurrent use. HDR histogram RecordValue is not
// thread-safe, so all access is mutex-guarded.
type Collector struct {
	mu     sync.Mutex
	hist   *hdrhistogram.Histogram
	config Config
}

// Config contains configuration for a Collector.
type Config struct {
	// Min is the minimum recordable value in microseconds (default: 1)
	Min int64

	// Max is the maximum recordable value in microseconds (default: 1 hour)
	Max int64

	// SigFigs is the number of significant figures (default: 3)
	SigFigs int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Min:     1,
		Max:     3600000000, // 1 hour in microseconds
		SigFigs: 3,
	}
}

// NewCollector creates a collector with the default configuration.
func NewCollector() *Collector {
	return NewCollectorWithConfig(DefaultConfig())
}

// NewCollectorWithConfig creates a collector with a custom configuration.
func NewCollectorWithConfig(config Config) *Collector {
	return &Collector{
		hist:   hdrhistogram.New(config.Min, config.Max, config.SigFigs),
		config: config,
	}
}

// Record records one run's wall-clock duration.
func (c *Collector) Record(d time.Duration) {
	micros := d.Microseconds()

	// Clamp to the recordable range.
	if micros < c.config.Min {
		micros = c.config.Min
	}
	if micros > c.config.Max {
		micros = c.config.Max
	}

	c.mu.Lock()
	c.hist.RecordValue(micros)
	c.mu.Unlock()
}

// Count returns the number of recorded runs.
func (c *Collector) Count() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hist.TotalCount()
}

// Stats returns a point-in-time snapshot of the timing distribution.
func (c *Collector) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Min:    time.Duration(c.hist.Min()) * time.Microsecond,
		Max:    time.Duration(c.hist.Max()) * time.Microsecond,
		Mean:   time.Duration(c.hist.Mean()) * time.Microsecond,
		StdDev: time.Duration(c.hist.StdDev()) * time.Microsecond,
		P50:    time.Duration(c.hist.ValueAtQuantile(50)) * time.Microsecond,
		P90:    time.Duration(c.hist.ValueAtQuantile(90)) * time.Microsecond,
		P95:    time.Duration(c.hist.ValueAtQuantile(95)) * time.Microsecond,
		P99:    time.Duration(c.hist.ValueAtQuantile(99)) * time.Microsecond,
		Count:  c.hist.TotalCount(),
	}
}

// Reset clears all recorded runs.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hist.Reset()
}

// Stats contains wall-time statistics for a set of runs.
type Stats struct {
	Min    time.Duration `json:"min"`
	Max    time.Duration `json:"max"`
	Mean   time.Duration `json:"mean"`
	StdDev time.Duration `json:"stdDev"`
	P50    time.Duration `json:"p50"`
	P90    time.Duration `json:"p90"`
	P95    time.Duration `json:"p95"`
	P99    time.Duration `json:"p99"`
	Count  int64         `json:"count"`
}
