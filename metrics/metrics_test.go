package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestIngestMetrics(t *testing.T) {
	m := NewIngestMetrics("test")
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	m.ObserveRecords(10, 2, 1, 3)
	m.ObserveRecords(5, 0, 0, 0)
	m.ObserveChannel(1, 7)
	m.ObserveChannel(1, 1)

	require.InDelta(t, 15, testutil.ToFloat64(m.Records.WithLabelValues(OutcomeAccepted)), 0)
	require.InDelta(t, 2, testutil.ToFloat64(m.Records.WithLabelValues(OutcomeChannelRange)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.Records.WithLabelValues(OutcomeZeroTick)), 0)
	require.InDelta(t, 3, testutil.ToFloat64(m.Records.WithLabelValues(OutcomeMalformed)), 0)
	require.InDelta(t, 8, testutil.ToFloat64(m.Events.WithLabelValues("1")), 0)

	require.Error(t, m.Register(reg), "second registration must fail")
}

func TestWindowMetrics(t *testing.T) {
	m := NewWindowMetrics("test")
	require.NoError(t, m.Register(prometheus.NewRegistry()))

	m.ObserveChunk(4)
	m.ObserveChunk(9)
	m.ObservePruned(3)
	m.ObservePruned(0)
	m.ObserveRetention(2, 5, 40)

	require.InDelta(t, 2, testutil.ToFloat64(m.Chunks), 0)
	require.InDelta(t, 9, testutil.ToFloat64(m.Watermark), 0)
	require.InDelta(t, 3, testutil.ToFloat64(m.PrunedBuckets), 0)
	require.InDelta(t, 5, testutil.ToFloat64(m.RetainedBuckets.WithLabelValues("2")), 0)
	require.InDelta(t, 40, testutil.ToFloat64(m.RetainedEvents.WithLabelValues("2")), 0)
}

func TestNilReceiver(t *testing.T) {
	var im *IngestMetrics
	var wm *WindowMetrics

	require.NotPanics(t, func() {
		im.ObserveRecords(1, 1, 1, 1)
		im.ObserveChannel(1, 1)
		wm.ObserveChunk(1)
		wm.ObservePruned(1)
		wm.ObserveRetention(1, 1, 1)
	})
}
