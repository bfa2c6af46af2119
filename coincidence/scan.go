package coincidence

import (
	"fmt"
	"slices"
	"sync"

	"github.com/arloliu/coinc/errs"
	"github.com/arloliu/coinc/internal/pool"
)

// DelayCount is the coincidence count of one delay grid point.
type DelayCount struct {
	Delay int64 // Ticks (picoseconds)
	Count int
}

// DelayNanoseconds returns the delay in nanoseconds.
func (d DelayCount) DelayNanoseconds() float64 {
	return float64(d.Delay) / 1000
}

// grid is the inclusive delay grid start, start+step, ... <= end.
type grid struct {
	start int64
	end   int64
	step  int64
	steps int
}

func newGrid(window, start, end, step int64) (grid, error) {
	if err := checkWindow(window); err != nil {
		return grid{}, err
	}
	if step <= 0 {
		return grid{}, fmt.Errorf("%w: %d", errs.ErrInvalidDelayStep, step)
	}

	g := grid{start: start, end: end, step: step}
	if end >= start {
		g.steps = int((end-start)/step) + 1
	}

	return g, nil
}

func (g grid) delay(k int) int64 {
	return g.start + int64(k)*g.step
}

// bins maps the delay interval [lo, hi] onto the grid points it contains.
func (g grid) bins(lo, hi int64) (int, int, bool) {
	if lo > hi || hi < g.start || lo > g.end {
		return 0, 0, false
	}
	lo = max(lo, g.start)
	hi = min(hi, g.end)

	first := (lo - g.start + g.step - 1) / g.step
	last := (hi - g.start) / g.step
	if first > last || last >= int64(g.steps) {
		return 0, 0, false
	}

	return int(first), int(last), true
}

func (g grid) mark(acc []int64, lo, hi int64) {
	if first, last, ok := g.bins(lo, hi); ok {
		acc[first]++
		acc[last+1]--
	}
}

// scan fills out with one DelayCount per grid point.
//
// pairs accumulates, for every (a, b) within reach of the grid, the delays
// [a-b-w, a-b+w] at which the pair coincides. conflicts accumulates the
// delays at which an element has two partners: consecutive b values both in
// the window of one a, or consecutive a values both in the window of one b.
// Both must be zeroed with len g.steps+1.
func scan(a, b []int64, window int64, g grid, pairs, conflicts []int64, out []DelayCount) []DelayCount {
	out = out[:0]
	if len(a) == 0 || len(b) == 0 {
		for k := range g.steps {
			out = append(out, DelayCount{Delay: g.delay(k)})
		}

		return out
	}

	minNeeded := g.start - window
	maxNeeded := g.end + window
	reach := 2 * window

	// b[lo:hi] holds the values whose interval with a[i] can touch the grid.
	lo, hi := 0, 0
	for i, t := range a {
		lowCut := t - maxNeeded
		for lo < len(b) && b[lo] < lowCut {
			lo++
		}
		highCut := t - minNeeded
		hi = max(hi, lo)
		for hi < len(b) && b[hi] <= highCut {
			hi++
		}

		band := b[lo:hi]
		for k, v := range band {
			g.mark(pairs, t-v-window, t-v+window)
			if k+1 < len(band) && band[k+1]-v <= reach {
				g.mark(conflicts, t-v-window, t-band[k+1]+window)
			}
		}

		if i+1 < len(a) && a[i+1]-t <= reach {
			next := a[i+1]
			nextLow := next - maxNeeded
			for _, v := range band {
				if v >= nextLow {
					g.mark(conflicts, next-v-window, t-v+window)
				}
			}
		}
	}

	var running, conflicting int64
	for k := range g.steps {
		running += pairs[k]
		conflicting += conflicts[k]

		d := g.delay(k)
		c := int(running)
		if conflicting > 0 {
			c = count(a, b, window, d)
		}
		out = append(out, DelayCount{Delay: d, Count: c})
	}

	return out
}

// ScanRange returns Count(a, b, window, d) for every delay d of the grid
// start, start+step, ..., up to and including end.
//
// The result is ascending by delay. When end < start it is empty; when
// either input is empty every count is zero. Working memory is borrowed
// from a pool, only the result is allocated.
//
// Parameters:
//   - a, b: Ascending timestamps
//   - window: Half-width of the acceptance interval, must be positive
//   - start, end: Inclusive delay range
//   - step: Grid spacing, must be positive
//
// Returns:
//   - []DelayCount: One entry per grid point
//   - error: errs.ErrInvalidWindow or errs.ErrInvalidDelayStep
func ScanRange(a, b []int64, window, start, end, step int64) ([]DelayCount, error) {
	g, err := newGrid(window, start, end, step)
	if err != nil {
		return nil, err
	}

	pairs, releasePairs := pool.GetInt64Slice(g.steps + 1)
	defer releasePairs()
	conflicts, releaseConflicts := pool.GetInt64Slice(g.steps + 1)
	defer releaseConflicts()

	return scan(a, b, window, g, pairs, conflicts, make([]DelayCount, 0, g.steps)), nil
}

// Scanner performs delay scans with working memory retained between calls.
//
// The zero value is ready to use. A Scanner must not be shared between
// goroutines.
type Scanner struct {
	pairs     []int64
	conflicts []int64
	results   []DelayCount
}

// NewScanner creates a Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan is ScanRange using the scanner's buffers.
// The returned slice is overwritten by the next call to Scan or FindBestDelay.
func (s *Scanner) Scan(a, b []int64, window, start, end, step int64) ([]DelayCount, error) {
	g, err := newGrid(window, start, end, step)
	if err != nil {
		return nil, err
	}

	s.pairs = zeroed(s.pairs, g.steps+1)
	s.conflicts = zeroed(s.conflicts, g.steps+1)
	s.results = scan(a, b, window, g, s.pairs, s.conflicts, s.results)

	return s.results, nil
}

// FindBestDelay is the package-level FindBestDelay using the scanner's buffers.
func (s *Scanner) FindBestDelay(a, b []int64, window, start, end, step int64) (int64, error) {
	results, err := s.Scan(a, b, window, start, end, step)
	if err != nil {
		return 0, err
	}

	if best, ok := Best(results); ok {
		return best.Delay, nil
	}

	return start, nil
}

func zeroed(buf []int64, n int) []int64 {
	buf = slices.Grow(buf[:0], n)[:n]
	clear(buf)

	return buf
}

// Best returns the entry with the highest count. Ties resolve to the
// earliest entry, which is the lowest delay for a scan result. ok is false
// when results is empty.
func Best(results []DelayCount) (DelayCount, bool) {
	if len(results) == 0 {
		return DelayCount{}, false
	}

	best := results[0]
	for _, dc := range results[1:] {
		if dc.Count > best.Count {
			best = dc
		}
	}

	return best, true
}

var scannerPool = sync.Pool{
	New: func() any { return NewScanner() },
}

// FindBestDelay returns the grid delay with the most coincidences between a
// and b, the lowest such delay on ties. An empty grid yields start.
//
// Returns:
//   - int64: Best delay in ticks
//   - error: errs.ErrInvalidWindow or errs.ErrInvalidDelayStep
func FindBestDelay(a, b []int64, window, start, end, step int64) (int64, error) {
	s, _ := scannerPool.Get().(*Scanner)
	defer scannerPool.Put(s)

	return s.FindBestDelay(a, b, window, start, end, step)
}

// PeakCenter returns the delay at the middle of the first run of maximal
// counts, rounding down to a grid point. A coincidence peak is usually a
// plateau as wide as the window; its centre estimates the true offset
// better than its lowest delay. ok is false when results is empty.
func PeakCenter(results []DelayCount) (int64, bool) {
	best, ok := Best(results)
	if !ok {
		return 0, false
	}

	first := slices.IndexFunc(results, func(dc DelayCount) bool { return dc.Count == best.Count })
	last := first
	for last+1 < len(results) && results[last+1].Count == best.Count {
		last++
	}

	return results[(first+last)/2].Delay, true
}
