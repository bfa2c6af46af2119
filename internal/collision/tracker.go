package collision

import (
	"fmt"

	"github.com/arloliu/coinc/errs"
)

// Tracker registers analysis pair labels and their hash ids.
// It rejects empty labels, repeated labels and distinct labels whose ids
// collide, and remembers registration order.
type Tracker struct {
	labels     map[uint64]string // id → label
	labelsList []string          // registration order
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		labels:     make(map[uint64]string),
		labelsList: make([]string, 0),
	}
}

// Track registers label with its precomputed id.
func (t *Tracker) Track(label string, id uint64) error {
	if label == "" {
		return errs.ErrEmptyPairLabel
	}

	if existing, ok := t.labels[id]; ok {
		if existing == label {
			return fmt.Errorf("%w: %q", errs.ErrDuplicatePair, label)
		}

		return fmt.Errorf("%w: %q and %q", errs.ErrPairHashCollision, existing, label)
	}

	t.labels[id] = label
	t.labelsList = append(t.labelsList, label)

	return nil
}

// Contains reports whether label with id was registered.
func (t *Tracker) Contains(label string, id uint64) bool {
	existing, ok := t.labels[id]
	return ok && existing == label
}

// Labels returns the labels in registration order.
func (t *Tracker) Labels() []string {
	return t.labelsList
}

// Count returns the number of registered labels.
func (t *Tracker) Count() int {
	return len(t.labelsList)
}

// Reset clears the tracker, keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.labels)
	t.labelsList = t.labelsList[:0]
}
