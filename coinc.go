// Package coinc detects temporal coincidences between picosecond time-tag
// streams recorded on multiple detector channels.
//
// Captures are ingested into per-channel timelines of fixed-duration
// buckets, then compared pairwise or N channels at a time. The delay between
// two channels is found as the peak of a delay scan, computed in a single
// pass over the data.
//
// # Core Features
//
//   - CSV and binary time-tag ingestion, optionally zstd, S2, LZ4 or XZ compressed
//   - Exclusive-consumption coincidence counting in O(n), no allocation
//   - Exact whole-range delay scans via interval difference arrays
//   - N-fold coincidences with per-channel offsets
//   - Boundary stitching for coincidences across bucket edges
//   - Rolling retention windows for streaming sessions
//
// # Basic Usage
//
//	res, err := coinc.ReadFile("run.bin.zst")
//	if err != nil {
//	    return err
//	}
//
//	h := res.Channels.Get(1).Bucket(0)
//	v := res.Channels.Get(5).Bucket(0)
//
//	delay, _ := coinc.FindBestDelay(h, v, 250, -10_000, 10_000, 10)
//	n, _ := coinc.CountCoincidencesWithDelay(h, v, 250, delay)
//
// # Package Structure
//
// This package provides top-level wrappers over the ingest, coincidence and
// rolling packages for the most common calls. The analysis package runs
// whole-capture pair scans and reports; use the subpackages directly for
// reusable scanners, options and metrics.
package coinc

import (
	"github.com/arloliu/coinc/coincidence"
	"github.com/arloliu/coinc/ingest"
	"github.com/arloliu/coinc/rolling"
)

// ReadFile ingests a CSV or binary capture, compressed or not.
// See ingest.ReadFile for format detection.
func ReadFile(path string, opts ...ingest.Option) (*ingest.Result, error) {
	return ingest.ReadFile(path, opts...)
}

// CountCoincidencesWithDelay counts exclusive coincidences between a shifted
// by delay and b within ±window ticks.
func CountCoincidencesWithDelay(a, b []int64, window, delay int64) (int, error) {
	return coincidence.Count(a, b, window, delay)
}

// ComputeCoincidencesForRange returns the coincidence count for every delay
// of the grid [start, end] with the given step, ascending by delay.
func ComputeCoincidencesForRange(a, b []int64, window, start, end, step int64) ([]coincidence.DelayCount, error) {
	return coincidence.ScanRange(a, b, window, start, end, step)
}

// CountNFoldCoincidences counts coincidences involving every channel, with
// optional per-channel offsets.
func CountNFoldCoincidences(channels [][]int64, window int64, offsets []int64) (int, error) {
	return coincidence.CountNFold(channels, window, offsets)
}

// FindBestDelay returns the lowest grid delay with the maximal coincidence
// count, or start for an empty grid.
func FindBestDelay(a, b []int64, window, start, end, step int64) (int64, error) {
	return coincidence.FindBestDelay(a, b, window, start, end, step)
}

// CollectCoincidences returns the literal timestamp pairs
// CountCoincidencesWithDelay counts.
func CollectCoincidences(a, b []int64, window, delay int64) ([]coincidence.Match, error) {
	return coincidence.CollectMatches(a, b, window, delay)
}

// NewRollingWindow creates a rolling window retaining window buckets.
// A window of zero selects rolling.DefaultWindow.
func NewRollingWindow(window int64, opts ...rolling.Option) (*rolling.Window, error) {
	if window == 0 {
		window = rolling.DefaultWindow
	}

	return rolling.New(window, opts...)
}
