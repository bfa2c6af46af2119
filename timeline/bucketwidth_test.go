package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBucketDuration(t *testing.T) {
	t.Cleanup(func() { SetBucketDuration(DefaultBucketSeconds) })

	require.InDelta(t, DefaultBucketSeconds, BucketDuration(), 0)
	require.Equal(t, TicksPerSecond, BucketWidth())

	SetBucketDuration(0.5)
	require.InDelta(t, 0.5, BucketDuration(), 0)
	require.Equal(t, TicksPerSecond/2, BucketWidth())

	SetBucketDuration(1e-12)
	require.InDelta(t, DefaultBucketSeconds, BucketDuration(), 0)

	SetBucketDuration(-3)
	require.InDelta(t, DefaultBucketSeconds, BucketDuration(), 0)
}

func TestBucketIndex(t *testing.T) {
	tests := []struct {
		offset, width, want int64
	}{
		{0, 10, 0},
		{9, 10, 0},
		{10, 10, 1},
		{25, 10, 2},
		{-1, 10, -1},
		{-10, 10, -1},
		{-11, 10, -2},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, BucketIndex(tt.offset, tt.width), "offset %d", tt.offset)
	}
}

func TestConversions(t *testing.T) {
	require.Equal(t, int64(250_000_000_000), SecondsToTicks(0.25))
	require.Equal(t, time.Second, TicksToDuration(TicksPerSecond))
	require.Equal(t, time.Duration(1), TicksToDuration(1_999))
}
