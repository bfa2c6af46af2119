package timeline

import (
	"maps"
	"slices"
)

// ChannelSet maps channel identifiers to their timelines.
type ChannelSet map[ChannelID]*Timeline

var emptyTimeline = &Timeline{}

// Get returns the timeline for id. Unknown channels yield a shared empty
// timeline that must not be mutated.
func (s ChannelSet) Get(id ChannelID) *Timeline {
	if t, ok := s[id]; ok && t != nil {
		return t
	}

	return emptyTimeline
}

// Has reports whether the set stores a non-empty timeline for id.
func (s ChannelSet) Has(id ChannelID) bool {
	t, ok := s[id]
	return ok && t != nil && !t.Empty()
}

// Ensure returns the timeline for id, creating it when missing.
func (s ChannelSet) Ensure(id ChannelID) *Timeline {
	t, ok := s[id]
	if !ok || t == nil {
		t = New(id)
		s[id] = t
	}

	return t
}

// IDs returns the channel identifiers in ascending order.
func (s ChannelSet) IDs() []ChannelID {
	return slices.Sorted(maps.Keys(s))
}

// Extent returns the earliest and latest bucket index stored by any
// channel. ok is false when no channel stores a bucket.
func (s ChannelSet) Extent() (first, last int64, ok bool) {
	for _, t := range s {
		if t == nil || t.Empty() {
			continue
		}
		if !ok || t.First() < first {
			first = t.First()
		}
		if !ok || t.Last() > last {
			last = t.Last()
		}
		ok = true
	}

	return first, last, ok
}

// Prune removes channels that store no timestamps.
func (s ChannelSet) Prune() {
	maps.DeleteFunc(s, func(_ ChannelID, t *Timeline) bool {
		return t == nil || t.Events() == 0
	})
}

// SinglesRow is the per-bucket event count of every channel.
type SinglesRow struct {
	Bucket int64
	Counts map[ChannelID]int
}

// SinglesPerBucket tabulates event counts per bucket for every channel,
// covering the full extent of the set. Channels without events in a bucket
// report zero.
func (s ChannelSet) SinglesPerBucket() []SinglesRow {
	first, last, ok := s.Extent()
	if !ok {
		return nil
	}

	ids := s.IDs()
	rows := make([]SinglesRow, 0, last-first+1)
	for idx := first; idx <= last; idx++ {
		row := SinglesRow{Bucket: idx, Counts: make(map[ChannelID]int, len(ids))}
		for _, id := range ids {
			row.Counts[id] = len(s.Get(id).Bucket(idx))
		}
		rows = append(rows, row)
	}

	return rows
}
