// Package analysis runs coincidence computations over whole channel sets:
// per-bucket delay scans for a list of channel pairs, and fixed-delay
// reports in which cross pairs reuse the delay found for a source pair.
//
// A Plan names the pairs. Each Pair has a label, two channels and the label
// of the pair whose best delay it reuses:
//
//	plan, err := analysis.NewPlan(append(analysis.DefaultSamePairs(), analysis.DefaultCrossPairs()...)...)
//	cfg := analysis.Config{Window: 250, DelayStart: 8_000, DelayEnd: 12_000, DelayStep: 10, LastBucket: 600}
//	report, err := analysis.FixedDelayReport(ctx, res.Channels, plan, cfg)
//
// Pairs are processed in parallel, each worker holding its own scanner and
// stitch buffers; results are merged in plan and bucket order, so output is
// deterministic regardless of Config.Workers.
package analysis
