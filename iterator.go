package treeset

import "github.com/pkg/errors"

type iterState uint8

const (
	// iterNotStarted: Next has not succeeded yet.
	iterNotStarted iterState = iota
	// iterPositioned: the cursor sits on a node whose element may already
	// have been removed through this iterator.
	iterPositioned
	// iterRemovalArmed: the cursor's element was just returned by Next and
	// may be removed.
	iterRemovalArmed
)

// Iterator walks a Set in ascending order. It fails fast: once the set is
// changed by anything other than the iterator's own Remove, Next and Remove
// return ErrConcurrentMutation.
type Iterator[T any] struct {
	s        *Set[T]
	cursor   *node[T]
	expected uint64
	state    iterState
}

// Iterator returns a new iterator positioned before the first element.
func (s *Set[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		s:        s,
		cursor:   s.head,
		expected: s.metrics.mods,
		state:    iterNotStarted,
	}
}

// HasNext reports whether calling Next will produce an element.
func (it *Iterator[T]) HasNext() bool {
	if it.s.IsEmpty() {
		return false
	}
	return it.cursor.next != it.s.tail
}

// Next advances to the next element and returns it.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if !it.HasNext() {
		return zero, ErrEndOfSequence
	}
	if err := it.checkMods("next"); err != nil {
		return zero, err
	}
	it.cursor = it.cursor.next
	it.state = iterRemovalArmed
	return it.cursor.value, nil
}

// Remove deletes the element most recently returned by Next. It may be
// called at most once per call to Next.
func (it *Iterator[T]) Remove() error {
	if it.state != iterRemovalArmed {
		return ErrIllegalState
	}
	if err := it.checkMods("remove"); err != nil {
		return err
	}
	it.state = iterPositioned

	// The cursor node is retired by the removal but keeps its link to the
	// next live node, so it still marks where iteration resumes.
	cursor := it.cursor
	if _, err := it.s.Remove(cursor.value); err != nil {
		return err
	}
	it.cursor = cursor
	it.expected = it.s.metrics.mods
	return nil
}

func (it *Iterator[T]) checkMods(op string) error {
	if it.expected == it.s.metrics.mods {
		return nil
	}
	log.Debugf("%s: iterator %s after %d foreign mutations", it.s.config.name, op,
		it.s.metrics.mods-it.expected)
	return errors.WithMessage(ErrConcurrentMutation, op)
}
