// Package stats collects call latency metrics for a seeding run.
// The driver issues one call at a time, so recording is not guarded by locks;
// the histogram exists to surface percentiles in the final run summary.
package stats

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// CallStats aggregates outbound call counts and latencies for one run.
type CallStats struct {
	calls     int64
	successes int64
	failures  int64

	// latencies in microseconds, 1us..10min, 3 significant figures
	latency *hdrhistogram.Histogram
}

// NewCallStats creates an empty stats collector.
func NewCallStats() *CallStats {
	return &CallStats{
		latency: hdrhistogram.New(1, int64(10*time.Minute/time.Microsecond), 3),
	}
}

// Record adds one completed call. Latencies outside the histogram bounds are
// clamped by hdrhistogram; the counters are always updated.
func (s *CallStats) Record(success bool, latency time.Duration) {
	s.calls++
	if success {
		s.successes++
	} else {
		s.failures++
	}
	_ = s.latency.RecordValue(latency.Microseconds())
}

// Snapshot returns an immutable copy of the collected metrics.
func (s *CallStats) Snapshot() Snapshot {
	return Snapshot{
		Calls:     s.calls,
		Successes: s.successes,
		Failures:  s.failures,
		P50:       time.Duration(s.latency.ValueAtQuantile(50)) * time.Microsecond,
		P90:       time.Duration(s.latency.ValueAtQuantile(90)) * time.Microsecond,
		P99:       time.Duration(s.latency.ValueAtQuantile(99)) * time.Microsecond,
		Max:       time.Duration(s.latency.Max()) * time.Microsecond,
		Mean:      time.Duration(s.latency.Mean()) * time.Microsecond,
	}
}

// Snapshot is a point-in-time view of call metrics.
type Snapshot struct {
	Calls     int64
	Successes int64
	Failures  int64
	P50       time.Duration
	P90       time.Duration
	P99       time.Duration
	Max       time.Duration
	Mean      time.Duration
}
