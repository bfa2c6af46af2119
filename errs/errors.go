// Package errs defines the sentinel errors returned by coinc packages.
//
// Errors fall into two kinds. Argument errors wrap ErrInvalidArgument and are
// caller mistakes that must not be retried. Source errors wrap
// ErrUnreadableSource and report an input that could not be opened or read.
// Malformed individual records are never reported as errors.
package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella for every argument validation error.
var ErrInvalidArgument = errors.New("invalid argument")

// Argument errors. All of them satisfy errors.Is(err, ErrInvalidArgument).
var (
	ErrInvalidWindow       = fmt.Errorf("%w: coincidence window must be positive", ErrInvalidArgument)
	ErrInvalidDelayStep    = fmt.Errorf("%w: delay step must be positive", ErrInvalidArgument)
	ErrTooFewChannels      = fmt.Errorf("%w: at least two channels required for coincidences", ErrInvalidArgument)
	ErrOffsetsMismatch     = fmt.Errorf("%w: offsets length must match channel count", ErrInvalidArgument)
	ErrInvalidBucketWidth  = fmt.Errorf("%w: bucket width must be positive", ErrInvalidArgument)
	ErrInvalidChannelRange = fmt.Errorf("%w: invalid channel range", ErrInvalidArgument)
	ErrInvalidBucketRange  = fmt.Errorf("%w: first bucket must not exceed last bucket", ErrInvalidArgument)
	ErrInvalidHeaderSize   = fmt.Errorf("%w: binary header size must not be negative", ErrInvalidArgument)
	ErrEmptyPairLabel      = fmt.Errorf("%w: pair label must not be empty", ErrInvalidArgument)
	ErrDuplicatePair       = fmt.Errorf("%w: pair label already registered", ErrInvalidArgument)
	ErrPairHashCollision   = fmt.Errorf("%w: pair label hash collides with another label", ErrInvalidArgument)
	ErrUnknownDelaySource  = fmt.Errorf("%w: pair delay source is not a registered pair", ErrInvalidArgument)
)

// Source errors.
var (
	ErrUnreadableSource       = errors.New("unreadable source")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)

// Analysis errors.
var (
	ErrNoData    = errors.New("no singles data found")
	ErrNoOverlap = errors.New("requested bucket range has no overlap with data")
	// ErrNoActivePairs reports that no pair of a plan has data on both channels.
	ErrNoActivePairs = errors.New("no coincidence pair has data on both channels")
	// ErrNoDelays reports that no source pair produced a best delay.
	ErrNoDelays = errors.New("failed to determine any pair delay")
)
