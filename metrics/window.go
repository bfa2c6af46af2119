package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// WindowMetrics tracks the retention state of a rolling window.
type WindowMetrics struct {
	Watermark       prometheus.Gauge
	RetainedBuckets *prometheus.GaugeVec
	RetainedEvents  *prometheus.GaugeVec
	Chunks          prometheus.Counter
	PrunedBuckets   prometheus.Counter
}

// NewWindowMetrics creates unregistered rolling window collectors under
// namespace.
func NewWindowMetrics(namespace string) *WindowMetrics {
	return &WindowMetrics{
		Watermark: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rolling",
			Name:      "watermark_bucket",
			Help:      "Highest bucket index observed by the window.",
		}),
		RetainedBuckets: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rolling",
			Name:      "retained_buckets",
			Help:      "Buckets currently retained, by channel.",
		}, []string{"channel"}),
		RetainedEvents: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rolling",
			Name:      "retained_events",
			Help:      "Timestamps currently retained, by channel.",
		}, []string{"channel"}),
		Chunks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rolling",
			Name:      "chunks_total",
			Help:      "Chunks appended to the window.",
		}),
		PrunedBuckets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rolling",
			Name:      "pruned_buckets_total",
			Help:      "Buckets dropped by retention pruning.",
		}),
	}
}

// Register registers every collector with reg.
func (m *WindowMetrics) Register(reg prometheus.Registerer) error {
	return register(reg, m.Watermark, m.RetainedBuckets, m.RetainedEvents, m.Chunks, m.PrunedBuckets)
}

// ObserveChunk counts one appended chunk and records the new watermark.
func (m *WindowMetrics) ObserveChunk(watermark int64) {
	if m == nil {
		return
	}

	m.Chunks.Inc()
	m.Watermark.Set(float64(watermark))
}

// ObservePruned adds the number of buckets dropped by one prune pass.
func (m *WindowMetrics) ObservePruned(buckets int) {
	if m == nil || buckets <= 0 {
		return
	}

	m.PrunedBuckets.Add(float64(buckets))
}

// ObserveRetention sets the retained bucket and event counts of channel.
func (m *WindowMetrics) ObserveRetention(channel int, buckets, events int) {
	if m == nil {
		return
	}

	label := strconv.Itoa(channel)
	m.RetainedBuckets.WithLabelValues(label).Set(float64(buckets))
	m.RetainedEvents.WithLabelValues(label).Set(float64(events))
}
