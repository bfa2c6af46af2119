package coincidence

import (
	"slices"
	"testing"

	"github.com/arloliu/coinc/errs"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// naiveCount is an index-loop restatement of the exclusive pairing rule.
func naiveCount(a, b []int64, window, delay int64) int {
	n := 0
	j := 0
	for i := 0; i < len(a) && j < len(b); {
		shifted := a[i] - delay
		if shifted-b[j] < -window {
			i++
			continue
		}
		if shifted-b[j] > window {
			j++
			continue
		}
		n++
		i++
		j++
	}

	return n
}

func sortedSlice(t *rapid.T, label string, maxLen int, maxValue int64) []int64 {
	s := rapid.SliceOfN(rapid.Int64Range(0, maxValue), 0, maxLen).Draw(t, label)
	slices.Sort(s)

	return s
}

func TestCount(t *testing.T) {
	a := []int64{0, 1000, 2000, 3000}
	b := []int64{50, 1050, 2150, 5000}

	n, err := Count(a, b, 100, 0)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = Count(a, b, 100, -100)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = Count(nil, b, 100, 0)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestCountExclusiveConsumption(t *testing.T) {
	// Both b values are within the window of the single a value; only one counts.
	n, err := Count([]int64{100}, []int64{90, 110}, 50, 0)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	// Window edges are inclusive.
	n, err = Count([]int64{100, 300}, []int64{150, 250}, 50, 0)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestCountInvalidWindow(t *testing.T) {
	for _, w := range []int64{0, -1} {
		_, err := Count([]int64{1}, []int64{1}, w, 0)
		require.ErrorIs(t, err, errs.ErrInvalidWindow)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	}
}

func TestCountMatchesReference(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := sortedSlice(t, "a", 80, 20_000)
		b := sortedSlice(t, "b", 80, 20_000)
		window := rapid.Int64Range(1, 500).Draw(t, "window")
		delay := rapid.Int64Range(-2_000, 2_000).Draw(t, "delay")

		n, err := Count(a, b, window, delay)
		require.NoError(t, err)
		require.Equal(t, naiveCount(a, b, window, delay), n)
	})
}

func TestCollectMatches(t *testing.T) {
	a := []int64{1000, 2000, 3000}
	b := []int64{900, 1950, 5000}

	matches, err := CollectMatches(a, b, 100, 50)
	require.NoError(t, err)
	require.Equal(t, []Match{{A: 1000, B: 900}, {A: 2000, B: 1950}}, matches)

	dst := []Match{{A: -1, B: -1}}
	dst, err = AppendMatches(dst, a, b, 100, 50)
	require.NoError(t, err)
	require.Len(t, dst, 3)
	require.Equal(t, Match{A: -1, B: -1}, dst[0])

	_, err = CollectMatches(a, b, 0, 0)
	require.ErrorIs(t, err, errs.ErrInvalidWindow)
}

func TestCollectMatchesAgreesWithCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := sortedSlice(t, "a", 60, 10_000)
		b := sortedSlice(t, "b", 60, 10_000)
		window := rapid.Int64Range(1, 300).Draw(t, "window")
		delay := rapid.Int64Range(-1_000, 1_000).Draw(t, "delay")

		matches, err := CollectMatches(a, b, window, delay)
		require.NoError(t, err)
		n, _ := Count(a, b, window, delay)
		require.Len(t, matches, n)

		for _, m := range matches {
			d := m.A - delay - m.B
			require.LessOrEqual(t, d, window)
			require.GreaterOrEqual(t, d, -window)
		}
	})
}
