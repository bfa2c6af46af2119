package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureBucket(t *testing.T) {
	t.Run("first bucket sets base", func(t *testing.T) {
		tl := New(1)
		b := tl.EnsureBucket(5)
		require.NotNil(t, b)
		require.Equal(t, int64(5), tl.Base)
		require.Equal(t, 1, tl.Len())
	})

	t.Run("prepend lowers base", func(t *testing.T) {
		tl := New(1)
		tl.Insert(5, 500)
		tl.EnsureBucket(2)
		require.Equal(t, int64(2), tl.First())
		require.Equal(t, int64(5), tl.Last())
		require.Equal(t, 4, tl.Len())
		require.Equal(t, Bucket{500}, tl.Bucket(5))
		require.Empty(t, tl.Bucket(3))
	})

	t.Run("append extends with empty buckets", func(t *testing.T) {
		tl := New(1)
		tl.Insert(0, 1)
		tl.EnsureBucket(3)
		require.Equal(t, 4, tl.Len())
		require.Empty(t, tl.Bucket(1))
		require.Empty(t, tl.Bucket(2))
	})
}

func TestBucketOutOfRange(t *testing.T) {
	tl := New(1)
	require.Nil(t, tl.Bucket(0))

	tl.Insert(2, 10)
	require.Nil(t, tl.Bucket(1))
	require.Nil(t, tl.Bucket(3))
	require.Equal(t, Bucket{10}, tl.Bucket(2))
}

func TestInsertKeepsOrder(t *testing.T) {
	tl := New(3)
	for _, ts := range []int64{50, 10, 30, 30, 70, 20} {
		tl.Insert(0, ts)
	}

	require.Equal(t, Bucket{10, 20, 30, 30, 50, 70}, tl.Bucket(0))
	require.Equal(t, 6, tl.Events())
}

func TestMergeBucket(t *testing.T) {
	t.Run("append fast path", func(t *testing.T) {
		tl := New(1)
		tl.MergeBucket(0, []int64{1, 2})
		tl.MergeBucket(0, []int64{2, 5})
		require.Equal(t, Bucket{1, 2, 2, 5}, tl.Bucket(0))
	})

	t.Run("interleaved runs", func(t *testing.T) {
		tl := New(1)
		tl.MergeBucket(0, []int64{1, 4, 9})
		tl.MergeBucket(0, []int64{2, 4, 10})
		require.Equal(t, Bucket{1, 2, 4, 4, 9, 10}, tl.Bucket(0))
	})

	t.Run("empty run materializes bucket", func(t *testing.T) {
		tl := New(1)
		tl.MergeBucket(4, nil)
		require.False(t, tl.Empty())
		require.Equal(t, int64(4), tl.First())
		require.Zero(t, tl.Events())
	})
}

func TestDropBefore(t *testing.T) {
	tl := New(1)
	for i := int64(0); i < 5; i++ {
		tl.Insert(i, i*10)
	}

	require.Zero(t, tl.DropBefore(0))
	require.Equal(t, 2, tl.DropBefore(2))
	require.Equal(t, int64(2), tl.First())
	require.Equal(t, int64(4), tl.Last())
	require.Equal(t, Bucket{20}, tl.Bucket(2))

	require.Equal(t, 3, tl.DropBefore(100))
	require.True(t, tl.Empty())
}

func TestCloneIsDeep(t *testing.T) {
	tl := New(2)
	tl.Insert(0, 1)
	tl.Insert(1, 2)

	c := tl.Clone()
	tl.Insert(0, 0)
	tl.EnsureBucket(5)

	require.Equal(t, Bucket{1}, c.Bucket(0))
	require.Equal(t, int64(1), c.Last())
	require.Equal(t, ChannelID(2), c.Channel)
}

func TestFlatten(t *testing.T) {
	tl := New(1)
	tl.Insert(1, 15)
	tl.Insert(0, 3)
	tl.Insert(1, 11)
	tl.Insert(3, 31)

	require.Equal(t, []int64{3, 11, 15, 31}, tl.Flatten())
	require.Empty(t, New(1).Flatten())
}
