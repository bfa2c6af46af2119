package analysis

import (
	"context"
	"log/slog"

	"github.com/arloliu/coinc/coincidence"
	"github.com/arloliu/coinc/errs"
	"github.com/arloliu/coinc/timeline"
	"golang.org/x/sync/errgroup"
)

// ReportRow is the coincidence count of one pair in one bucket at the pair's
// fixed delay.
type ReportRow struct {
	Bucket  int64
	Pair    string
	Delay   int64
	Count   int
	Matches []coincidence.Match // Only with Config.CollectEvents
}

// Report is the result of FixedDelayReport.
type Report struct {
	FirstBucket int64
	LastBucket  int64
	// Delays maps each source pair label to its best delay.
	Delays map[string]int64
	Rows   []ReportRow
}

// FixedDelayReport counts coincidences per bucket at fixed per-pair delays.
//
// The best delay of every active source pair is searched at the first bucket
// of the clamped range, over the stitched views (bucket plus the first
// event of the next bucket) of both channels. It is the lowest delay with the
// maximal count, or the centre of that peak with Config.CenterPeak. Source pairs with an empty
// view on either channel get no delay. Every active pair whose source has a
// delay is then counted at that delay in every bucket of the range. Rows are
// ordered by bucket, then plan order.
//
// Returns:
//   - *Report: Delays and per-bucket rows
//   - error: Config error, ClampBuckets error, errs.ErrNoActivePairs,
//     errs.ErrNoDelays, or the context error on cancellation
func FixedDelayReport(ctx context.Context, set timeline.ChannelSet, plan *Plan, cfg Config) (*Report, error) {
	first, last, active, err := prepare(set, plan, cfg)
	if err != nil {
		return nil, err
	}
	logger := cfg.logger()

	delays := make(map[string]int64)
	var (
		scanner          coincidence.Scanner
		stitchA, stitchB coincidence.Stitcher
	)
	for _, pair := range active {
		if !pair.IsSource() {
			continue
		}

		a := stitchA.Stitch(set.Get(pair.A).Bucket(first), set.Get(pair.A).Bucket(first+1))
		b := stitchB.Stitch(set.Get(pair.B).Bucket(first), set.Get(pair.B).Bucket(first+1))
		if len(a) == 0 || len(b) == 0 {
			continue
		}

		results, err := scanner.Scan(a, b, cfg.Window, cfg.DelayStart, cfg.DelayEnd, cfg.DelayStep)
		if err != nil {
			return nil, err
		}
		delay := cfg.DelayStart
		if cfg.CenterPeak {
			if d, ok := coincidence.PeakCenter(results); ok {
				delay = d
			}
		} else if best, ok := coincidence.Best(results); ok {
			delay = best.Delay
		}
		delays[pair.Label] = delay
		logger.Debug("resolved pair delay", slog.String("pair", pair.Label), slog.Int64("delay_ps", delay))
	}
	if len(delays) == 0 {
		return nil, errs.ErrNoDelays
	}

	counted := make([]Pair, 0, len(active))
	for _, pair := range active {
		if _, ok := delays[pair.source()]; ok {
			counted = append(counted, pair)
		}
	}

	buckets := int(last - first + 1)
	perPair := make([][]ReportRow, len(counted))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for i, pair := range counted {
		g.Go(func() error {
			delay := delays[pair.source()]
			a, b := set.Get(pair.A), set.Get(pair.B)
			var sa, sb coincidence.Stitcher

			rows := make([]ReportRow, 0, buckets)
			for idx := first; idx <= last; idx++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				row := ReportRow{Bucket: idx, Pair: pair.Label, Delay: delay}
				va := sa.Stitch(a.Bucket(idx), a.Bucket(idx+1))
				vb := sb.Stitch(b.Bucket(idx), b.Bucket(idx+1))
				if len(va) > 0 && len(vb) > 0 {
					var err error
					if cfg.CollectEvents {
						row.Matches, err = coincidence.CollectMatches(va, vb, cfg.Window, delay)
						row.Count = len(row.Matches)
					} else {
						row.Count, err = coincidence.Count(va, vb, cfg.Window, delay)
					}
					if err != nil {
						return err
					}
				}
				rows = append(rows, row)
			}
			perPair[i] = rows

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		FirstBucket: first,
		LastBucket:  last,
		Delays:      delays,
		Rows:        make([]ReportRow, 0, buckets*len(counted)),
	}
	for k := range buckets {
		for i := range counted {
			report.Rows = append(report.Rows, perPair[i][k])
		}
	}

	return report, nil
}
