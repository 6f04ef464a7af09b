package benchmark_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algraphs/benchmark"
)

// fakeClock advances by the next step on every second call, so each
// ExecTime sample measures exactly one step.
type fakeClock struct {
	t     time.Time
	steps []time.Duration
	calls int
}

func (c *fakeClock) now() time.Time {
	if c.calls%2 == 1 {
		c.t = c.t.Add(c.steps[c.calls/2])
	}
	c.calls++
	return c.t
}

func TestMedExecTime_PicksMedianSample(t *testing.T) {
	clock := &fakeClock{steps: []time.Duration{50, 10, 40, 20, 30}}
	run := 0
	b := benchmark.MedExecTime(func() int {
		run++
		return run
	}, benchmark.WithSamples(5), benchmark.WithClock(clock.now))

	// Sorted durations 10,20,30,40,50: the median 30 came from run 5.
	assert.Equal(t, time.Duration(30), b.Time)
	assert.Equal(t, 5, b.Result)
	assert.Equal(t, 5, run)
}

func TestMedExecTime_DefaultSamples(t *testing.T) {
	calls := 0
	b := benchmark.MedExecTime(func() string {
		calls++
		return "ok"
	})
	require.Equal(t, benchmark.DefaultSamples, calls)
	assert.Equal(t, "ok", b.Result)
	assert.GreaterOrEqual(t, b.Time, time.Duration(0))
}

func TestMedExecTime_SingleSample(t *testing.T) {
	b := benchmark.MedExecTime(func() bool { return true }, benchmark.WithSamples(1))
	assert.True(t, b.Result)
}

func TestExecTime(t *testing.T) {
	b := benchmark.ExecTime(func() []int { return []int{1, 2} })
	assert.Equal(t, []int{1, 2}, b.Result)
	assert.GreaterOrEqual(t, b.Time, time.Duration(0))
}

func TestStringAndMsg(t *testing.T) {
	b := benchmark.Benchmark[int]{Time: 1500 * time.Nanosecond, Result: 4}
	assert.Equal(t, "Returned '4' in 1.5µs.", b.String())
	assert.Equal(t, "maxdeg: Returned '4' in 1.5µs.", b.Msg("maxdeg"))
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { benchmark.WithSamples(0) })
	assert.Panics(t, func() { benchmark.WithClock(nil) })
}
