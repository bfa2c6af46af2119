// Package ingest converts raw time-tag captures into per-channel bucketed
// timelines.
//
// Two source layouts are supported. CSV sources hold one
// "timestamp,channel[,...]" row per event; binary sources hold a fixed-size
// header followed by 10-byte records (uint64 tick, uint16 zero-based
// channel). Either may be compressed with zstd, S2, LZ4 or XZ when read
// through ReadFile.
//
// # Normalization
//
// The first accepted record fixes the origin. Stored timestamps are
// ts-origin, and a record's bucket is floor((ts-origin)/width). Records with
// a zero timestamp or a channel outside the accepted range are dropped and
// counted in Result.Stats; unparsable CSV rows are dropped the same way.
// Only read failures of the source itself are returned as errors.
//
// # Bucket Width
//
// The width is resolved once per read: WithBucketWidth or
// WithBucketDuration first, then WithExposure, then timeline.BucketWidth().
// Reads never change the process-wide setting.
//
//	res, err := ingest.ReadFile("run.bin.zst", ingest.WithExposure(0.5))
//	if err != nil {
//		return err
//	}
//	h := res.Channels.Get(1)
package ingest
