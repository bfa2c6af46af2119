package analysis

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/arloliu/coinc/errs"
	"github.com/arloliu/coinc/timeline"
)

// Config parameterizes ScanBuckets and FixedDelayReport.
// All times are ticks (picoseconds).
type Config struct {
	Window     int64
	DelayStart int64
	DelayEnd   int64
	DelayStep  int64

	// FirstBucket and LastBucket bound the processed buckets, inclusive.
	// They are clamped to the extent of the data.
	FirstBucket int64
	LastBucket  int64

	// Workers caps the number of pairs processed concurrently.
	// Zero means GOMAXPROCS.
	Workers int

	// CollectEvents makes FixedDelayReport record the matched timestamps.
	CollectEvents bool

	// CenterPeak makes FixedDelayReport use the centre of the maximal
	// plateau instead of its lowest delay.
	CenterPeak bool

	Logger *slog.Logger
}

// Validate checks the configuration. DelayEnd < DelayStart is valid and
// yields empty scans.
func (c Config) Validate() error {
	if c.Window <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidWindow, c.Window)
	}
	if c.DelayStep <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidDelayStep, c.DelayStep)
	}
	if c.FirstBucket > c.LastBucket {
		return fmt.Errorf("%w: [%d, %d]", errs.ErrInvalidBucketRange, c.FirstBucket, c.LastBucket)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", errs.ErrInvalidArgument, c.Workers)
	}

	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.GOMAXPROCS(0)
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return slog.New(slog.DiscardHandler)
}

// ClampBuckets restricts [first, last] to the bucket extent of set.
//
// Returns:
//   - int64, int64: The clamped range
//   - error: errs.ErrNoData when set holds no buckets, errs.ErrNoOverlap when
//     the range lies outside the data
func ClampBuckets(set timeline.ChannelSet, first, last int64) (int64, int64, error) {
	earliest, latest, ok := set.Extent()
	if !ok {
		return 0, 0, errs.ErrNoData
	}

	first = max(first, earliest)
	last = min(last, latest)
	if first > last {
		return 0, 0, fmt.Errorf("%w: available buckets %d-%d", errs.ErrNoOverlap, earliest, latest)
	}

	return first, last, nil
}
