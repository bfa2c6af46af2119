// Package coincidence counts temporal coincidences between sorted timestamp
// sequences and searches delay ranges for the offset that maximizes them.
//
// All values are int64 ticks (picoseconds). A window W is the half-width of
// the acceptance interval: a (shifted) pair matches when |(a-d)-b| <= W.
// Inputs must be sorted ascending; duplicates are allowed.
//
// # Exclusive Consumption
//
// Count pairs events with a two-pointer sweep in which each event takes part
// in at most one coincidence. This is the reference definition; every other
// operation in the package agrees with it.
//
//	n, err := coincidence.Count(h, v, 250, 1_250)
//
// # Delay Scans
//
// ScanRange evaluates the count for every delay of a grid in a single pass
// over the data. Each candidate pair contributes the interval of delays at
// which it falls in the window, accumulated in a difference array. Delays at
// which some event has two candidate partners are also tracked; only there
// does exclusive consumption differ from the interval count, and those grid
// points are evaluated directly with Count. The result therefore equals
// Count at every grid point.
//
//	scan, err := coincidence.ScanRange(h, v, 250, -10_000, 10_000, 10)
//	best, _ := coincidence.Best(scan)
//
// Scanner keeps its working memory between calls and suits worker loops;
// ScanRange borrows pooled memory instead.
//
// # N-fold Coincidences
//
// CountNFold generalizes Count to any number of channels with a sliding
// window over the merged, offset-corrected streams.
//
// # Bucket Boundaries
//
// StitchNext extends a bucket with the first event of the following bucket
// so coincidences straddling a boundary are not lost.
package coincidence
