// Package timeline implements canonical per-channel storage of detector
// timestamps grouped into fixed-duration, contiguously indexed buckets.
//
// # Data Model
//
// A Timeline holds one channel. Its Buckets slice is dense: Buckets[i]
// covers absolute bucket Base+i, and empty buckets fill any interior gap.
// Every bucket is kept sorted ascending, which the coincidence sweeps rely on.
//
//	tl := timeline.New(1)
//	tl.Insert(3, 3_000_000_000_250)
//	tl.Insert(1, 1_000_000_000_000) // prepends; Base becomes 1
//	view := tl.Bucket(2)            // empty view, no allocation
//
// A ChannelSet maps channel identifiers to timelines. It is the output of
// ingestion and the input of coincidence analysis.
//
// # Bucket Width
//
// Bucket indices are floor((ts-origin)/width), with width in ticks
// (picoseconds). The process-wide default (one second) is held atomically;
// ingestion prefers a width passed explicitly and only falls back to it.
package timeline
