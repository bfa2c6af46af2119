package timeline

import (
	"slices"
	"sort"
)

// ChannelID identifies a detector channel. Identifiers are arbitrary; the
// default ingestion range is 1..8.
type ChannelID int

// Bucket is an ascending run of tick timestamps belonging to one
// fixed-duration interval. Duplicates are permitted.
type Bucket []int64

// Timeline stores one channel's timestamps grouped into contiguous buckets.
//
// Buckets[i] holds absolute bucket Base+i. The bucket sequence has no gaps:
// growing at either end inserts empty buckets. A Timeline only shrinks
// through DropBefore and Clear.
//
// A Timeline is not safe for concurrent mutation. Concurrent readers are
// safe when no writer is active.
type Timeline struct {
	Channel ChannelID
	Base    int64
	Buckets []Bucket
}

// New creates an empty timeline for channel.
func New(channel ChannelID) *Timeline {
	return &Timeline{Channel: channel}
}

// Len returns the number of stored buckets, empty ones included.
func (t *Timeline) Len() int {
	return len(t.Buckets)
}

// Empty reports whether the timeline stores no buckets.
func (t *Timeline) Empty() bool {
	return len(t.Buckets) == 0
}

// First returns the lowest stored bucket index.
// The result is meaningless when the timeline is empty.
func (t *Timeline) First() int64 {
	return t.Base
}

// Last returns the highest stored bucket index.
// The result is meaningless when the timeline is empty.
func (t *Timeline) Last() int64 {
	return t.Base + int64(len(t.Buckets)) - 1
}

// Events returns the total number of stored timestamps.
func (t *Timeline) Events() int {
	n := 0
	for _, b := range t.Buckets {
		n += len(b)
	}

	return n
}

// EnsureBucket returns the mutable bucket at index, extending the timeline
// as needed.
//
// When index precedes Base, empty buckets are prepended and Base lowered;
// when it exceeds the extent, empty buckets are appended. The cost is
// proportional to the extension, never to the stored contents (bucket
// headers are moved, timestamps are not).
//
// The returned pointer is valid until the next call that changes the
// timeline's extent.
func (t *Timeline) EnsureBucket(index int64) *Bucket {
	if len(t.Buckets) == 0 {
		t.Base = index
		t.Buckets = append(t.Buckets[:0], nil)

		return &t.Buckets[0]
	}

	if index < t.Base {
		prepend := int(t.Base - index)
		t.Buckets = slices.Insert(t.Buckets, 0, make([]Bucket, prepend)...)
		t.Base = index

		return &t.Buckets[0]
	}

	pos := int(index - t.Base)
	if pos >= len(t.Buckets) {
		t.Buckets = append(t.Buckets, make([]Bucket, pos-len(t.Buckets)+1)...)
	}

	return &t.Buckets[pos]
}

// Bucket returns the bucket at index as a read-only view.
//
// Indices outside the stored range yield an empty view. Bucket never
// allocates and never fails. Callers must not modify the returned slice.
func (t *Timeline) Bucket(index int64) Bucket {
	if len(t.Buckets) == 0 || index < t.Base {
		return nil
	}

	pos := index - t.Base
	if pos >= int64(len(t.Buckets)) {
		return nil
	}

	return t.Buckets[pos]
}

// Insert adds ts to the bucket at index keeping it sorted.
//
// The naturally ordered case (ts >= last value) appends; otherwise ts is
// inserted after any equal values already present.
func (t *Timeline) Insert(index int64, ts int64) {
	b := t.EnsureBucket(index)
	*b = insertSorted(*b, ts)
}

func insertSorted(b Bucket, ts int64) Bucket {
	n := len(b)
	if n == 0 || ts >= b[n-1] {
		return append(b, ts)
	}

	pos := sort.Search(n, func(i int) bool { return b[i] > ts })

	return slices.Insert(b, pos, ts)
}

// MergeBucket accumulates the sorted run values into the bucket at index.
//
// Existing contents are kept; duplicates are retained. When values start at
// or after the bucket's last element they are appended, otherwise the two
// runs are merged so the bucket stays sorted.
func (t *Timeline) MergeBucket(index int64, values []int64) {
	if len(values) == 0 {
		// Still materialize the bucket so the extent covers index.
		t.EnsureBucket(index)
		return
	}

	b := t.EnsureBucket(index)
	cur := *b
	if len(cur) == 0 || values[0] >= cur[len(cur)-1] {
		*b = append(cur, values...)
		return
	}

	merged := make(Bucket, 0, len(cur)+len(values))
	i, j := 0, 0
	for i < len(cur) && j < len(values) {
		if values[j] < cur[i] {
			merged = append(merged, values[j])
			j++
		} else {
			merged = append(merged, cur[i])
			i++
		}
	}
	merged = append(merged, cur[i:]...)
	merged = append(merged, values[j:]...)
	*b = merged
}

// DropBefore removes every bucket with an index lower than minIndex.
//
// When every stored bucket is older than minIndex the timeline is cleared.
// It returns the number of buckets removed.
func (t *Timeline) DropBefore(minIndex int64) int {
	if len(t.Buckets) == 0 || t.Base >= minIndex {
		return 0
	}

	if t.Last() < minIndex {
		n := len(t.Buckets)
		t.Clear()

		return n
	}

	drop := int(minIndex - t.Base)
	clear(t.Buckets[:drop])
	t.Buckets = t.Buckets[drop:]
	t.Base = minIndex

	return drop
}

// Clear removes all buckets.
func (t *Timeline) Clear() {
	t.Buckets = nil
	t.Base = 0
}

// Clone returns a deep copy of the timeline.
func (t *Timeline) Clone() *Timeline {
	c := &Timeline{
		Channel: t.Channel,
		Base:    t.Base,
		Buckets: make([]Bucket, len(t.Buckets)),
	}
	for i, b := range t.Buckets {
		if len(b) > 0 {
			c.Buckets[i] = slices.Clone(b)
		}
	}

	return c
}

// Flatten concatenates all buckets into one ascending sequence.
//
// The result is sorted because bucket indices are derived from timestamps.
func (t *Timeline) Flatten() []int64 {
	out := make([]int64, 0, t.Events())
	for _, b := range t.Buckets {
		out = append(out, b...)
	}

	return out
}
