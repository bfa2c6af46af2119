package rolling

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/arloliu/coinc/errs"
	"github.com/arloliu/coinc/internal/options"
	"github.com/arloliu/coinc/metrics"
	"github.com/arloliu/coinc/timeline"
)

// DefaultWindow is the default retention length in buckets.
const DefaultWindow = 200

// Window retains the most recent buckets of every channel.
type Window struct {
	window    int64
	watermark int64
	seen      bool
	channels  timeline.ChannelSet
	latest    timeline.ChannelSet
	logger    *slog.Logger
	metrics   *metrics.WindowMetrics
}

// Option represents a functional option for configuring a Window.
type Option = options.Option[*Window]

// WithLogger sets the logger used for retention events.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(w *Window) {
		if logger != nil {
			w.logger = logger
		}
	})
}

// WithMetrics reports retention state to m.
func WithMetrics(m *metrics.WindowMetrics) Option {
	return options.NoError(func(w *Window) {
		w.metrics = m
	})
}

// New creates a Window retaining window buckets per channel.
//
// Parameters:
//   - window: Retention length in buckets, must be positive
//   - opts: Window options
//
// Returns:
//   - *Window: The empty window
//   - error: errs.ErrInvalidArgument if window < 1, or an option error
func New(window int64, opts ...Option) (*Window, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: window must be at least one bucket, got %d", errs.ErrInvalidArgument, window)
	}

	w := &Window{
		window:   window,
		channels: make(timeline.ChannelSet),
		latest:   make(timeline.ChannelSet),
		logger:   slog.New(slog.DiscardHandler),
	}
	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// AppendChunk merges chunk into the window and prunes.
//
// For every non-empty channel of chunk the incoming buckets are accumulated
// into the retained timeline, keeping each bucket sorted and never replacing
// existing timestamps. A copy of the channel's incoming timeline becomes its
// latest snapshot, and the watermark rises to the highest incoming bucket.
// Channels absent from chunk keep their previous snapshot.
func (w *Window) AppendChunk(chunk timeline.ChannelSet) {
	for _, id := range chunk.IDs() {
		incoming := chunk.Get(id)
		if incoming.Empty() {
			continue
		}

		target := w.channels.Ensure(id)
		for idx, bucket := range incoming.Buckets {
			target.MergeBucket(incoming.Base+int64(idx), bucket)
		}
		w.latest[id] = incoming.Clone()

		if !w.seen || incoming.Last() > w.watermark {
			w.watermark = incoming.Last()
			w.seen = true
		}
	}

	w.metrics.ObserveChunk(w.watermark)
	w.Prune()
}

// Prune drops every bucket older than watermark-window+1. A channel lying
// entirely before that bound is cleared. Prune does nothing before the first
// non-empty chunk.
func (w *Window) Prune() {
	if !w.seen {
		return
	}

	minIndex := w.watermark - w.window + 1
	dropped := 0
	for _, id := range w.channels.IDs() {
		tl := w.channels.Get(id)
		dropped += tl.DropBefore(minIndex)
		w.metrics.ObserveRetention(int(id), tl.Len(), tl.Events())
	}
	w.metrics.ObservePruned(dropped)

	if dropped > 0 {
		w.logger.Debug("pruned rolling window",
			slog.Int64("watermark", w.watermark),
			slog.Int64("min_bucket", minIndex),
			slog.Int("dropped_buckets", dropped),
		)
	}
}

// SetWindow changes the retention length and prunes immediately.
// Values below one are raised to one.
func (w *Window) SetWindow(window int64) {
	w.window = max(window, 1)
	w.Prune()
}

// Window returns the retention length in buckets.
func (w *Window) Window() int64 {
	return w.window
}

// Watermark returns the highest bucket index observed. ok is false until
// a non-empty chunk has been appended.
func (w *Window) Watermark() (watermark int64, ok bool) {
	return w.watermark, w.seen
}

// Channel returns the retained timeline of id, or an empty timeline when the
// channel is unknown. The result must not be modified.
func (w *Window) Channel(id timeline.ChannelID) *timeline.Timeline {
	return w.channels.Get(id)
}

// LatestChunk returns the buckets id received in its most recent chunk, or
// an empty timeline when the channel is unknown. The result must not be
// modified.
func (w *Window) LatestChunk(id timeline.ChannelID) *timeline.Timeline {
	return w.latest.Get(id)
}

// Channels returns a shallow copy of the retained channel set. Channels
// cleared by pruning are included with empty timelines.
func (w *Window) Channels() timeline.ChannelSet {
	return maps.Clone(w.channels)
}
