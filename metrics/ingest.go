package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Record outcomes reported by IngestMetrics.
const (
	OutcomeAccepted     = "accepted"
	OutcomeChannelRange = "channel_out_of_range"
	OutcomeZeroTick     = "zero_timestamp"
	OutcomeMalformed    = "malformed"
)

// IngestMetrics counts the records seen by ingestion readers.
type IngestMetrics struct {
	Records *prometheus.CounterVec
	Events  *prometheus.CounterVec
}

// NewIngestMetrics creates unregistered ingestion collectors under namespace.
func NewIngestMetrics(namespace string) *IngestMetrics {
	return &IngestMetrics{
		Records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "records_total",
			Help:      "Raw time-tag records read, by outcome.",
		}, []string{"outcome"}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "events_total",
			Help:      "Accepted timestamps stored, by channel.",
		}, []string{"channel"}),
	}
}

// Register registers every collector with reg.
func (m *IngestMetrics) Register(reg prometheus.Registerer) error {
	return register(reg, m.Records, m.Events)
}

// ObserveRecords adds the per-outcome record counts of one read.
func (m *IngestMetrics) ObserveRecords(accepted, channelRange, zeroTick, malformed int) {
	if m == nil {
		return
	}

	m.Records.WithLabelValues(OutcomeAccepted).Add(float64(accepted))
	m.Records.WithLabelValues(OutcomeChannelRange).Add(float64(channelRange))
	m.Records.WithLabelValues(OutcomeZeroTick).Add(float64(zeroTick))
	m.Records.WithLabelValues(OutcomeMalformed).Add(float64(malformed))
}

// ObserveChannel adds the number of timestamps stored for channel.
func (m *IngestMetrics) ObserveChannel(channel int, events int) {
	if m == nil {
		return
	}

	m.Events.WithLabelValues(strconv.Itoa(channel)).Add(float64(events))
}

func register(reg prometheus.Registerer, collectors ...prometheus.Collector) error {
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}
