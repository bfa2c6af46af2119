package analysis

import (
	"context"
	"log/slog"
	"slices"

	"github.com/arloliu/coinc/coincidence"
	"github.com/arloliu/coinc/errs"
	"github.com/arloliu/coinc/timeline"
	"golang.org/x/sync/errgroup"
)

// BucketScan is the delay scan of one pair over one bucket.
type BucketScan struct {
	Pair    Pair
	Bucket  int64
	Results []coincidence.DelayCount
}

// prepare validates cfg and resolves the bucket range and active pairs.
func prepare(set timeline.ChannelSet, plan *Plan, cfg Config) (int64, int64, []Pair, error) {
	if err := cfg.Validate(); err != nil {
		return 0, 0, nil, err
	}

	first, last, err := ClampBuckets(set, cfg.FirstBucket, cfg.LastBucket)
	if err != nil {
		return 0, 0, nil, err
	}

	active := plan.Active(set)
	if len(active) == 0 {
		return 0, 0, nil, errs.ErrNoActivePairs
	}

	return first, last, active, nil
}

// ScanBuckets delay-scans every active pair of plan over every bucket of the
// configured range.
//
// Bucket k of channel A is scanned against bucket k of channel B extended by
// the first event of bucket k+1. Buckets where A is empty, or where that
// view of B is empty, produce no entry. Results are ordered by plan order,
// then bucket.
//
// Returns:
//   - []BucketScan: One entry per scanned pair and bucket
//   - error: Config error, ClampBuckets error, errs.ErrNoActivePairs, or
//     the context error on cancellation
func ScanBuckets(ctx context.Context, set timeline.ChannelSet, plan *Plan, cfg Config) ([]BucketScan, error) {
	first, last, active, err := prepare(set, plan, cfg)
	if err != nil {
		return nil, err
	}

	logger := cfg.logger()
	perPair := make([][]BucketScan, len(active))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for i, pair := range active {
		g.Go(func() error {
			a, b := set.Get(pair.A), set.Get(pair.B)
			var (
				scanner  coincidence.Scanner
				stitcher coincidence.Stitcher
			)

			for idx := first; idx <= last; idx++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				events := a.Bucket(idx)
				if len(events) == 0 {
					continue
				}
				ref := stitcher.Stitch(b.Bucket(idx), b.Bucket(idx+1))
				if len(ref) == 0 {
					continue
				}

				results, err := scanner.Scan(events, ref, cfg.Window, cfg.DelayStart, cfg.DelayEnd, cfg.DelayStep)
				if err != nil {
					return err
				}
				perPair[i] = append(perPair[i], BucketScan{
					Pair:    pair,
					Bucket:  idx,
					Results: slices.Clone(results),
				})
			}

			logger.Debug("scanned pair", slog.String("pair", pair.Label), slog.Int("buckets", len(perPair[i])))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(perPair...), nil
}
