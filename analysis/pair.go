package analysis

import (
	"fmt"

	"github.com/arloliu/coinc/errs"
	"github.com/arloliu/coinc/internal/collision"
	"github.com/arloliu/coinc/internal/hash"
	"github.com/arloliu/coinc/timeline"
)

// Pair is an ordered channel pair: A is shifted by the delay, B is the
// reference.
type Pair struct {
	Label string
	A     timeline.ChannelID
	B     timeline.ChannelID
	// DelaySource is the label of the pair whose best delay this pair uses.
	// Empty means the pair is its own source.
	DelaySource string
}

// IsSource reports whether the pair's best delay is searched rather than
// borrowed.
func (p Pair) IsSource() bool {
	return p.DelaySource == "" || p.DelaySource == p.Label
}

func (p Pair) source() string {
	if p.DelaySource == "" {
		return p.Label
	}

	return p.DelaySource
}

// DefaultSamePairs returns the same-basis pairs of the four-basis,
// eight-detector setup: HH 1-5, VV 2-6, DD 3-7 and AA 4-8.
func DefaultSamePairs() []Pair {
	return []Pair{
		{Label: "HH", A: 1, B: 5, DelaySource: "HH"},
		{Label: "VV", A: 2, B: 6, DelaySource: "VV"},
		{Label: "DD", A: 3, B: 7, DelaySource: "DD"},
		{Label: "AA", A: 4, B: 8, DelaySource: "AA"},
	}
}

// DefaultCrossPairs returns the cross-basis pairs, each reusing the delay of
// the same pair sharing its A channel: HV 1-6, VH 2-5, DA 3-8 and AD 4-7.
func DefaultCrossPairs() []Pair {
	return []Pair{
		{Label: "HV", A: 1, B: 6, DelaySource: "HH"},
		{Label: "VH", A: 2, B: 5, DelaySource: "VV"},
		{Label: "DA", A: 3, B: 8, DelaySource: "DD"},
		{Label: "AD", A: 4, B: 7, DelaySource: "AA"},
	}
}

// PairID returns the stable 64-bit identifier of a pair label.
func PairID(label string) uint64 {
	return hash.ID(label)
}

// Plan is a validated, ordered list of pairs.
type Plan struct {
	pairs []Pair
	ids   map[string]uint64
}

// NewPlan validates pairs and returns them as a Plan.
//
// Labels must be non-empty, unique, and must not collide on PairID. Every
// DelaySource must name a pair of the plan that is itself a source.
//
// Returns:
//   - *Plan: Plan preserving the given order
//   - error: errs.ErrEmptyPairLabel, errs.ErrDuplicatePair,
//     errs.ErrPairHashCollision or errs.ErrUnknownDelaySource
func NewPlan(pairs ...Pair) (*Plan, error) {
	tracker := collision.NewTracker()
	byLabel := make(map[string]Pair, len(pairs))
	for _, p := range pairs {
		if err := tracker.Track(p.Label, PairID(p.Label)); err != nil {
			return nil, err
		}
		byLabel[p.Label] = p
	}

	for _, p := range pairs {
		src, ok := byLabel[p.source()]
		if !ok || !src.IsSource() {
			return nil, fmt.Errorf("%w: pair %q uses %q", errs.ErrUnknownDelaySource, p.Label, p.DelaySource)
		}
	}

	ids := make(map[string]uint64, len(pairs))
	for _, p := range pairs {
		ids[p.Label] = PairID(p.Label)
	}

	return &Plan{pairs: append([]Pair(nil), pairs...), ids: ids}, nil
}

// Pairs returns the plan's pairs in order.
func (p *Plan) Pairs() []Pair {
	return append([]Pair(nil), p.pairs...)
}

// ID returns the identifier of label and whether the plan contains it.
func (p *Plan) ID(label string) (uint64, bool) {
	id, ok := p.ids[label]
	return id, ok
}

// Active returns, in plan order, the pairs whose channels both hold data in set.
func (p *Plan) Active(set timeline.ChannelSet) []Pair {
	active := make([]Pair, 0, len(p.pairs))
	for _, pair := range p.pairs {
		if set.Has(pair.A) && set.Has(pair.B) {
			active = append(active, pair)
		}
	}

	return active
}
