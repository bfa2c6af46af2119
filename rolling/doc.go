// Package rolling keeps a bounded, continuously updated view of ingested
// time tags for long-running sessions.
//
// A Window accumulates the channel sets of successive chunks. Its watermark
// is the highest bucket index ever observed; after every append, buckets
// older than watermark-window+1 are dropped on every channel, so each
// channel holds at most window buckets ending at the watermark.
//
//	w, err := rolling.New(200)
//	if err != nil {
//		return err
//	}
//	for res := range chunks {
//		w.AppendChunk(res.Channels)
//		counts, _ := coincidence.Count(w.Channel(1).Flatten(), w.Channel(5).Flatten(), 250, delay)
//	}
//
// A Window has a single writer. AppendChunk, Prune and SetWindow must be
// serialized by the caller; readers must not run concurrently with them.
package rolling
