package treeset

import "github.com/pkg/errors"

// Errors
var (
	// ErrInvalidInput is returned when a nil element or a nil comparison
	// function is passed where a value is required. Nothing is modified.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentMutation is returned by an Iterator when the set was
	// changed by anything other than that iterator's own Remove.
	ErrConcurrentMutation = errors.New("set modified during iteration")

	// ErrIllegalState is returned by Iterator.Remove when no element is
	// available to remove, either because Next was never called or because
	// the current element was already removed.
	ErrIllegalState = errors.New("no current element to remove")

	// ErrEndOfSequence is returned by Iterator.Next once every element has
	// been produced.
	ErrEndOfSequence = errors.New("end of sequence")
)
