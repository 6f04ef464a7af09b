// Package benchmark times function calls and keeps the returned value next
// to the measured duration.
//
// MedExecTime runs a function several times and reports the median sample,
// which is less sensitive to a cold cache or a scheduler hiccup than a single
// run. It complements testing.B for quick command-line reports.
package benchmark

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// DefaultSamples is the number of runs MedExecTime makes unless WithSamples
// overrides it.
const DefaultSamples = 15

// Benchmark is one timed call: how long it took and what it returned.
type Benchmark[T any] struct {
	Time   time.Duration
	Result T
}

// String renders "Returned '<result>' in <duration>.".
func (b Benchmark[T]) String() string {
	return fmt.Sprintf("Returned '%v' in %v.", b.Result, b.Time)
}

// Msg prefixes String with a label: "<label>: Returned '...' in ...".
func (b Benchmark[T]) Msg(label string) string {
	return label + ": " + b.String()
}

// Option customizes MedExecTime.
type Option func(*config)

type config struct {
	samples int
	now     func() time.Time
}

// WithSamples sets the number of runs. Panics if n < 1.
func WithSamples(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("benchmark: WithSamples(%d): need at least one sample", n))
	}
	return func(c *config) { c.samples = n }
}

// WithClock replaces time.Now as the time source. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("benchmark: WithClock(nil)")
	}
	return func(c *config) { c.now = now }
}

// ExecTime calls f once and returns its result with the elapsed time.
func ExecTime[T any](f func() T) Benchmark[T] {
	return execTime(f, time.Now)
}

func execTime[T any](f func() T, now func() time.Time) Benchmark[T] {
	start := now()
	result := f()

	return Benchmark[T]{Time: now().Sub(start), Result: result}
}

// MedExecTime calls f the configured number of times, sorts the samples by
// duration, and returns the median one.
//
// Implementation:
//   - Stage 1: collect n samples sequentially.
//   - Stage 2: stable sort by Time, so equal durations keep run order.
//   - Stage 3: return index n/2. For even n this is the upper median.
//
// Complexity: n calls of f plus O(n log n) for the sort.
func MedExecTime[T any](f func() T, opts ...Option) Benchmark[T] {
	cfg := config{samples: DefaultSamples, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	runs := make([]Benchmark[T], cfg.samples)
	for i := range runs {
		runs[i] = execTime(f, cfg.now)
	}
	slices.SortStableFunc(runs, func(a, b Benchmark[T]) int {
		return cmp.Compare(a.Time, b.Time)
	})

	return runs[cfg.samples/2]
}
