package analysis

import (
	"testing"

	"github.com/arloliu/coinc/errs"
	"github.com/arloliu/coinc/timeline"
	"github.com/stretchr/testify/require"
)

func TestDefaultPairs(t *testing.T) {
	plan, err := NewPlan(append(DefaultSamePairs(), DefaultCrossPairs()...)...)
	require.NoError(t, err)
	require.Len(t, plan.Pairs(), 8)

	for _, p := range DefaultSamePairs() {
		require.True(t, p.IsSource(), p.Label)
	}
	for _, p := range DefaultCrossPairs() {
		require.False(t, p.IsSource(), p.Label)
	}

	id, ok := plan.ID("HV")
	require.True(t, ok)
	require.Equal(t, PairID("HV"), id)
	_, ok = plan.ID("XX")
	require.False(t, ok)
}

func TestNewPlanValidation(t *testing.T) {
	_, err := NewPlan(Pair{Label: "", A: 1, B: 2})
	require.ErrorIs(t, err, errs.ErrEmptyPairLabel)

	_, err = NewPlan(Pair{Label: "HH", A: 1, B: 5}, Pair{Label: "HH", A: 2, B: 6})
	require.ErrorIs(t, err, errs.ErrDuplicatePair)

	_, err = NewPlan(DefaultCrossPairs()...)
	require.ErrorIs(t, err, errs.ErrUnknownDelaySource)

	// A source must itself be a source pair.
	_, err = NewPlan(
		Pair{Label: "HH", A: 1, B: 5},
		Pair{Label: "HV", A: 1, B: 6, DelaySource: "HH"},
		Pair{Label: "VH", A: 2, B: 5, DelaySource: "HV"},
	)
	require.ErrorIs(t, err, errs.ErrUnknownDelaySource)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestPlanActive(t *testing.T) {
	plan, err := NewPlan(append(DefaultSamePairs(), DefaultCrossPairs()...)...)
	require.NoError(t, err)

	set := timeline.ChannelSet{}
	for _, id := range []timeline.ChannelID{1, 5, 6} {
		set.Ensure(id).Insert(0, 1)
	}
	set.Ensure(2)

	var labels []string
	for _, p := range plan.Active(set) {
		labels = append(labels, p.Label)
	}
	require.Equal(t, []string{"HH", "HV"}, labels)
}

func TestPairsIsACopy(t *testing.T) {
	plan, err := NewPlan(DefaultSamePairs()...)
	require.NoError(t, err)

	pairs := plan.Pairs()
	pairs[0].Label = "changed"
	require.Equal(t, "HH", plan.Pairs()[0].Label)
}
