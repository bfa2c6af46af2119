package ingest

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/arloliu/coinc/endian"
	"github.com/arloliu/coinc/errs"
	"github.com/arloliu/coinc/format"
	"github.com/arloliu/coinc/internal/options"
	"github.com/arloliu/coinc/metrics"
	"github.com/arloliu/coinc/timeline"
)

// Default ingestion settings.
const (
	DefaultHeaderSize = 40
	DefaultMinChannel = 1
	DefaultMaxChannel = 8
)

// minExposureSeconds is the smallest exposure that overrides the default width.
const minExposureSeconds = 1e-9

// Config holds the settings of one ingestion call.
type Config struct {
	bucketWidth int64
	exposure    float64
	minChannel  int
	maxChannel  int
	anyChannel  bool
	headerSize  int
	engine      endian.EndianEngine
	format      format.SourceFormat
	compression format.CompressionType
	logger      *slog.Logger
	metrics     *metrics.IngestMetrics
}

// Option represents a functional option for configuring ingestion.
type Option = options.Option[*Config]

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{
		minChannel: DefaultMinChannel,
		maxChannel: DefaultMaxChannel,
		headerSize: DefaultHeaderSize,
		engine:     endian.GetLittleEndianEngine(),
		logger:     slog.New(slog.DiscardHandler),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// BucketWidth returns the bucket width in ticks this configuration resolves to.
func (c *Config) BucketWidth() int64 {
	if c.bucketWidth > 0 {
		return c.bucketWidth
	}
	if c.exposure > minExposureSeconds {
		if w := timeline.SecondsToTicks(c.exposure); w > 0 {
			return w
		}
	}

	return timeline.BucketWidth()
}

func (c *Config) acceptsChannel(ch int) bool {
	return c.anyChannel || (ch >= c.minChannel && ch <= c.maxChannel)
}

// WithBucketWidth sets an explicit bucket width in ticks.
// It takes precedence over WithExposure and the process-wide default.
func WithBucketWidth(ticks int64) Option {
	return options.New(func(c *Config) error {
		if ticks <= 0 {
			return fmt.Errorf("%w: %d ticks", errs.ErrInvalidBucketWidth, ticks)
		}
		c.bucketWidth = ticks

		return nil
	})
}

// WithBucketDuration sets an explicit bucket width in seconds.
func WithBucketDuration(seconds float64) Option {
	return options.New(func(c *Config) error {
		ticks := timeline.SecondsToTicks(seconds)
		if !(seconds > 0) || math.IsInf(seconds, 0) || ticks <= 0 {
			return fmt.Errorf("%w: %g seconds", errs.ErrInvalidBucketWidth, seconds)
		}
		c.bucketWidth = ticks

		return nil
	})
}

// WithExposure sets the per-bucket exposure in seconds.
// Values not above 1ns are ignored, leaving the process-wide default in effect.
func WithExposure(seconds float64) Option {
	return options.NoError(func(c *Config) {
		c.exposure = seconds
	})
}

// WithChannelRange sets the inclusive range of accepted channel identifiers.
func WithChannelRange(minChannel, maxChannel int) Option {
	return options.New(func(c *Config) error {
		if minChannel > maxChannel {
			return fmt.Errorf("%w: [%d, %d]", errs.ErrInvalidChannelRange, minChannel, maxChannel)
		}
		c.minChannel, c.maxChannel = minChannel, maxChannel
		c.anyChannel = false

		return nil
	})
}

// WithAnyChannel accepts every channel identifier.
func WithAnyChannel() Option {
	return options.NoError(func(c *Config) {
		c.anyChannel = true
	})
}

// WithHeaderSize sets the number of bytes skipped before the first binary record.
func WithHeaderSize(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidHeaderSize, n)
		}
		c.headerSize = n

		return nil
	})
}

// WithLittleEndian decodes binary records as little-endian. It is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian decodes binary records as big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithFormat forces the source layout used by ReadFile instead of deriving
// it from the file name.
func WithFormat(f format.SourceFormat) Option {
	return options.NoError(func(c *Config) {
		c.format = f
	})
}

// WithCompression forces the decompressor used by ReadFile instead of
// detecting it from the file name or leading bytes.
func WithCompression(comp format.CompressionType) Option {
	return options.NoError(func(c *Config) {
		c.compression = comp
	})
}

// WithLogger sets the logger used for read summaries.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithMetrics reports record outcomes to m.
func WithMetrics(m *metrics.IngestMetrics) Option {
	return options.NoError(func(c *Config) {
		c.metrics = m
	})
}
