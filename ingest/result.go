package ingest

import (
	"log/slog"
	"time"

	"github.com/arloliu/coinc/timeline"
)

// Stats counts the records seen by one read.
type Stats struct {
	Records      int // Non-blank rows or complete binary records
	Accepted     int
	ChannelRange int // Dropped: channel outside the accepted range
	ZeroTick     int // Dropped: zero raw timestamp
	Malformed    int // Dropped: unparsable CSV row
}

// Result is the outcome of one ingestion call.
type Result struct {
	// Channels holds every channel with at least one accepted timestamp.
	Channels timeline.ChannelSet
	// Origin is the raw tick of the first accepted record.
	Origin int64
	// Span is the raw tick distance between the earliest and latest record.
	Span int64
	// Duration is Span as a time.Duration.
	Duration time.Duration
	// BucketWidth is the width in ticks the read used.
	BucketWidth int64
	Stats       Stats
}

// builder accumulates accepted records into a ChannelSet.
type builder struct {
	cfg     *Config
	width   int64
	set     timeline.ChannelSet
	started bool
	origin  int64
	minTick int64
	maxTick int64
	last    *timeline.Timeline
	stats   Stats
}

func newBuilder(cfg *Config) *builder {
	return &builder{
		cfg:   cfg,
		width: cfg.BucketWidth(),
		set:   make(timeline.ChannelSet),
	}
}

func (b *builder) malformed() {
	b.stats.Records++
	b.stats.Malformed++
}

func (b *builder) add(tick int64, channel int) {
	b.stats.Records++

	if !b.cfg.acceptsChannel(channel) {
		b.stats.ChannelRange++
		return
	}
	if tick == 0 {
		b.stats.ZeroTick++
		return
	}

	if !b.started {
		b.started = true
		b.origin, b.minTick, b.maxTick = tick, tick, tick
	}
	b.minTick = min(b.minTick, tick)
	b.maxTick = max(b.maxTick, tick)

	offset := tick - b.origin
	tl := b.last
	if tl == nil || tl.Channel != timeline.ChannelID(channel) {
		tl = b.set.Ensure(timeline.ChannelID(channel))
		b.last = tl
	}
	tl.Insert(timeline.BucketIndex(offset, b.width), offset)
	b.stats.Accepted++
}

func (b *builder) result(source string) *Result {
	res := &Result{
		Channels:    b.set,
		Origin:      b.origin,
		BucketWidth: b.width,
		Stats:       b.stats,
	}
	if b.maxTick > b.minTick {
		res.Span = b.maxTick - b.minTick
		res.Duration = timeline.TicksToDuration(res.Span)
	}

	m := b.cfg.metrics
	m.ObserveRecords(b.stats.Accepted, b.stats.ChannelRange, b.stats.ZeroTick, b.stats.Malformed)
	for _, id := range b.set.IDs() {
		m.ObserveChannel(int(id), b.set.Get(id).Events())
	}

	b.cfg.logger.Debug("ingested time tags",
		slog.String("source", source),
		slog.Int("records", b.stats.Records),
		slog.Int("accepted", b.stats.Accepted),
		slog.Int("channels", len(b.set)),
		slog.Duration("duration", res.Duration),
	)

	return res
}
