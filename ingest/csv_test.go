package ingest

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/arloliu/coinc/errs"
	"github.com/arloliu/coinc/timeline"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `timestamp,channel,extra
1000,1,a

1500, 5
2000000000000,1
0,2
1200,9
garbage
`

func TestReadCSV(t *testing.T) {
	res, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.Equal(t, Stats{Records: 7, Accepted: 3, ChannelRange: 1, ZeroTick: 1, Malformed: 2}, res.Stats)
	require.Equal(t, []timeline.ChannelID{1, 5}, res.Channels.IDs())
	require.Equal(t, int64(1000), res.Origin)

	h := res.Channels.Get(1)
	require.Equal(t, timeline.Bucket{0}, h.Bucket(0))
	require.Equal(t, timeline.Bucket{2_000_000_000_000 - 1000}, h.Bucket(1))
	require.Equal(t, timeline.Bucket{500}, res.Channels.Get(5).Bucket(0))

	require.Equal(t, int64(2_000_000_000_000-1000), res.Span)
	require.Equal(t, time.Duration(1_999_999_999), res.Duration)
	require.Equal(t, timeline.TicksPerSecond, res.BucketWidth)
}

func TestReadCSVEmpty(t *testing.T) {
	res, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, res.Channels)
	require.Zero(t, res.Span)
	require.Zero(t, res.Duration)
}

func TestReadCSVFloorIndexing(t *testing.T) {
	res, err := ReadCSV(strings.NewReader("5000,1\n4000,1\n3500,1\n6999,1\n"), WithBucketWidth(1000))
	require.NoError(t, err)

	h := res.Channels.Get(1)
	require.Equal(t, int64(-2), h.First())
	require.Equal(t, int64(1), h.Last())
	require.Equal(t, timeline.Bucket{-1500}, h.Bucket(-2))
	require.Equal(t, timeline.Bucket{-1000}, h.Bucket(-1))
	require.Equal(t, timeline.Bucket{0}, h.Bucket(0))
	require.Equal(t, timeline.Bucket{1999}, h.Bucket(1))
	require.Equal(t, int64(6999-3500), res.Span)
}

func TestReadCSVUnsortedWithinBucket(t *testing.T) {
	res, err := ReadCSV(strings.NewReader("100,1\n400,1\n200,1\n200,1\n"), WithBucketWidth(1000))
	require.NoError(t, err)
	require.Equal(t, timeline.Bucket{0, 100, 100, 300}, res.Channels.Get(1).Bucket(0))
}

func TestReadCSVChannelRange(t *testing.T) {
	input := "10,0\n20,9\n30,12\n"

	res, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, res.Channels)
	require.Equal(t, 3, res.Stats.ChannelRange)

	res, err = ReadCSV(strings.NewReader(input), WithChannelRange(9, 16))
	require.NoError(t, err)
	require.Equal(t, []timeline.ChannelID{9, 12}, res.Channels.IDs())

	res, err = ReadCSV(strings.NewReader(input), WithAnyChannel())
	require.NoError(t, err)
	require.Equal(t, []timeline.ChannelID{0, 9, 12}, res.Channels.IDs())

	_, err = ReadCSV(strings.NewReader(input), WithChannelRange(3, 2))
	require.ErrorIs(t, err, errs.ErrInvalidChannelRange)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestBucketWidthResolution(t *testing.T) {
	t.Cleanup(func() { timeline.SetBucketDuration(timeline.DefaultBucketSeconds) })
	timeline.SetBucketDuration(2)

	read := func(opts ...Option) *Result {
		res, err := ReadCSV(strings.NewReader("1,1\n"), opts...)
		require.NoError(t, err)

		return res
	}

	require.Equal(t, 2*timeline.TicksPerSecond, read().BucketWidth)
	require.Equal(t, timeline.TicksPerSecond/2, read(WithExposure(0.5)).BucketWidth)
	require.Equal(t, 2*timeline.TicksPerSecond, read(WithExposure(1e-12)).BucketWidth)
	require.Equal(t, int64(10), read(WithExposure(0.5), WithBucketWidth(10)).BucketWidth)
	require.Equal(t, timeline.TicksPerSecond/4, read(WithBucketDuration(0.25)).BucketWidth)

	require.InDelta(t, 2.0, timeline.BucketDuration(), 0, "reads must not change the process-wide width")

	_, err := ReadCSV(strings.NewReader(""), WithBucketWidth(0))
	require.ErrorIs(t, err, errs.ErrInvalidBucketWidth)
	_, err = ReadCSV(strings.NewReader(""), WithBucketDuration(-1))
	require.ErrorIs(t, err, errs.ErrInvalidBucketWidth)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestReadCSVSourceError(t *testing.T) {
	_, err := ReadCSV(failingReader{})
	require.ErrorIs(t, err, errs.ErrUnreadableSource)
}

func TestReadCSVOverlongRow(t *testing.T) {
	garbage := bytes.Repeat([]byte{'x'}, 2<<20)

	data := "100,1\n" + string(garbage) + "\n200,2\n"
	res, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, Stats{Records: 3, Accepted: 2, Malformed: 1}, res.Stats)
	require.Equal(t, []int64{0}, []int64(res.Channels.Get(1).Bucket(0)))
	require.Equal(t, []int64{100}, []int64(res.Channels.Get(2).Bucket(0)))

	// Unterminated at EOF.
	res, err = ReadCSV(strings.NewReader("100,1\n" + string(garbage)))
	require.NoError(t, err)
	require.Equal(t, Stats{Records: 2, Accepted: 1, Malformed: 1}, res.Stats)
}
