package coincidence

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/coinc/errs"
	"github.com/arloliu/coinc/internal/pool"
)

type tagged struct {
	ts      int64
	channel int
}

var (
	taggedPool pool.SlicePool[tagged]
	countsPool pool.SlicePool[int]
)

// CountNFold counts coincidences in which every channel takes part, with
// channel k shifted later by offsets[k].
//
// All shifted events are merged in ascending order (equal timestamps keep
// channel order) and swept with a sliding window: the window shrinks from the
// left while its span exceeds window, and whenever it holds at least one
// event of every channel one coincidence is counted and its leftmost event
// is released. With two channels and no offsets the result is
// Count(channels[0], channels[1], window, 0).
//
// Parameters:
//   - channels: Ascending timestamps per channel, at least two
//   - window: Maximum span of a coincidence, must be positive
//   - offsets: Per-channel shift, nil or one entry per channel
//
// Returns:
//   - int: Number of coincidences
//   - error: errs.ErrTooFewChannels, errs.ErrOffsetsMismatch or errs.ErrInvalidWindow
func CountNFold(channels [][]int64, window int64, offsets []int64) (int, error) {
	if len(channels) < 2 {
		return 0, fmt.Errorf("%w: got %d", errs.ErrTooFewChannels, len(channels))
	}
	if len(offsets) != 0 && len(offsets) != len(channels) {
		return 0, fmt.Errorf("%w: %d offsets for %d channels", errs.ErrOffsetsMismatch, len(offsets), len(channels))
	}
	if err := checkWindow(window); err != nil {
		return 0, err
	}
	if len(channels) == 2 && len(offsets) == 0 {
		return count(channels[0], channels[1], window, 0), nil
	}

	total := 0
	for _, ch := range channels {
		total += len(ch)
	}
	if total == 0 {
		return 0, nil
	}

	merged, releaseMerged := taggedPool.Get(total)
	defer releaseMerged()
	merged = merged[:0]
	for idx, ch := range channels {
		var offset int64
		if len(offsets) != 0 {
			offset = offsets[idx]
		}
		for _, ts := range ch {
			merged = append(merged, tagged{ts: ts + offset, channel: idx})
		}
	}
	slices.SortFunc(merged, func(x, y tagged) int {
		if c := cmp.Compare(x.ts, y.ts); c != 0 {
			return c
		}

		return cmp.Compare(x.channel, y.channel)
	})

	present, releasePresent := countsPool.GetZeroed(len(channels))
	defer releasePresent()

	have, left, coincidences := 0, 0, 0
	release := func() {
		present[merged[left].channel]--
		if present[merged[left].channel] == 0 {
			have--
		}
		left++
	}

	for right := range merged {
		present[merged[right].channel]++
		if present[merged[right].channel] == 1 {
			have++
		}

		for left < right && merged[right].ts-merged[left].ts > window {
			release()
		}

		if have == len(channels) {
			coincidences++
			release()
		}
	}

	return coincidences, nil
}
