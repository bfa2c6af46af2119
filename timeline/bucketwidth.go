package timeline

import (
	"math"
	"sync/atomic"
	"time"
)

// TicksPerSecond is the number of source clock ticks (picoseconds) per second.
const TicksPerSecond int64 = 1_000_000_000_000

// TicksPerNanosecond is the number of ticks per nanosecond.
const TicksPerNanosecond int64 = 1_000

// DefaultBucketSeconds is the default bucket duration.
const DefaultBucketSeconds = 1.0

// minBucketSeconds is the smallest accepted bucket duration; smaller values
// reset the setting to DefaultBucketSeconds.
const minBucketSeconds = 1e-9

// bucketSeconds holds the process-wide bucket duration as float64 bits.
// Written rarely, read on every ingestion; atomic without a lock.
var bucketSeconds atomic.Uint64

func init() {
	bucketSeconds.Store(math.Float64bits(DefaultBucketSeconds))
}

// SetBucketDuration sets the process-wide default bucket duration in
// seconds. Values not above 1ns reset it to DefaultBucketSeconds.
//
// Ingestion calls read this value only when no explicit width is passed.
func SetBucketDuration(seconds float64) {
	if !(seconds > minBucketSeconds) {
		seconds = DefaultBucketSeconds
	}
	bucketSeconds.Store(math.Float64bits(seconds))
}

// BucketDuration returns the process-wide default bucket duration in seconds.
func BucketDuration() float64 {
	return math.Float64frombits(bucketSeconds.Load())
}

// BucketWidth returns the process-wide default bucket width in ticks.
func BucketWidth() int64 {
	return SecondsToTicks(BucketDuration())
}

// SecondsToTicks converts seconds to ticks, rounding to the nearest tick.
func SecondsToTicks(seconds float64) int64 {
	return int64(math.Round(seconds * float64(TicksPerSecond)))
}

// TicksToDuration converts a tick span to a time.Duration, truncating
// sub-nanosecond remainders.
func TicksToDuration(ticks int64) time.Duration {
	return time.Duration(ticks / TicksPerNanosecond)
}

// BucketIndex returns floor(offset / width) for a tick offset from the
// ingestion origin. Out-of-order records may yield negative offsets, which
// floor towards the lower bucket. width must be positive.
func BucketIndex(offset, width int64) int64 {
	q := offset / width
	if offset%width != 0 && offset < 0 {
		q--
	}

	return q
}
