package coincidence

import (
	"fmt"

	"github.com/arloliu/coinc/errs"
)

// Match is one coincident pair of timestamps, as stored (before delay
// correction).
type Match struct {
	A int64
	B int64
}

func checkWindow(window int64) error {
	if window <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidWindow, window)
	}

	return nil
}

// Count returns the number of coincidences between a and b when a is shifted
// earlier by delay.
//
// The sweep compares (a[i]-delay)-b[j] against [-window, window]: below it
// advances a, above it advances b, inside it counts one coincidence and
// advances both. Each element is therefore consumed at most once. Count
// runs in O(len(a)+len(b)) and does not allocate.
//
// Parameters:
//   - a, b: Ascending timestamps
//   - window: Half-width of the acceptance interval, must be positive
//   - delay: Shift subtracted from every element of a
//
// Returns:
//   - int: Number of coincidences
//   - error: errs.ErrInvalidWindow if window <= 0
func Count(a, b []int64, window, delay int64) (int, error) {
	if err := checkWindow(window); err != nil {
		return 0, err
	}

	return count(a, b, window, delay), nil
}

func count(a, b []int64, window, delay int64) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		diff := (a[i] - delay) - b[j]
		switch {
		case diff < -window:
			i++
		case diff > window:
			j++
		default:
			n++
			i++
			j++
		}
	}

	return n
}

// CollectMatches returns the pairs Count would count, in sweep order.
func CollectMatches(a, b []int64, window, delay int64) ([]Match, error) {
	return AppendMatches(nil, a, b, window, delay)
}

// AppendMatches appends the pairs Count would count to dst and returns the
// extended slice.
func AppendMatches(dst []Match, a, b []int64, window, delay int64) ([]Match, error) {
	if err := checkWindow(window); err != nil {
		return dst, err
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		diff := (a[i] - delay) - b[j]
		switch {
		case diff < -window:
			i++
		case diff > window:
			j++
		default:
			dst = append(dst, Match{A: a[i], B: b[j]})
			i++
			j++
		}
	}

	return dst, nil
}
