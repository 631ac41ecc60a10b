package treeset

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Set is an ordered set of distinct elements backed by an unbalanced binary
// search tree. Every tree node is also threaded onto a doubly-linked list kept
// in sort order between two sentinels, so in-order walks never recurse and
// neighbours are reachable in O(1).
//
// A Set is not safe for concurrent use.
type Set[T any] struct {
	compare  CompareFunc[T]
	root     *node[T]
	head     *node[T]
	tail     *node[T]
	metrics  metrics
	mut      mutatorImpl[T]
	nodePool *sync.Pool
	config   Config
	nilable  bool
}

// New returns an empty Set ordered by the natural order of T.
func New[T cmp.Ordered](opts ...Option) *Set[T] {
	return newSet[T](naturalOrder[T](), buildConfig(opts))
}

// NewFunc returns an empty Set ordered by compare. The ordering is fixed for
// the lifetime of the set. ErrInvalidInput is returned if compare is nil.
func NewFunc[T any](compare func(a, b T) int, opts ...Option) (*Set[T], error) {
	if compare == nil {
		return nil, errors.WithMessage(ErrInvalidInput, "nil comparison function")
	}
	return newSet[T](compare, buildConfig(opts)), nil
}

func newSet[T any](compare CompareFunc[T], config Config) *Set[T] {
	head, tail := newSentinels[T]()
	s := &Set[T]{
		compare: compare,
		head:    head,
		tail:    tail,
		config:  config,
		nilable: nilable[T](),
	}
	s.mut = mutatorImpl[T]{s: s}
	if config.poolNodes {
		s.nodePool = newNodePool[T]()
	}
	log.Debugf("%s: created (node pool %t)", config.name, config.poolNodes)
	return s
}

// cmp applies the set's ordering and counts the call.
func (s *Set[T]) cmp(a, b T) int {
	s.metrics.recordComparison()
	return s.compare(a, b)
}

func (s *Set[T]) checkValue(op string, v T) error {
	if s.nilable && isNil(v) {
		return errors.WithMessagef(ErrInvalidInput, "%s: nil element", op)
	}
	return nil
}

// Add inserts v. It reports whether v was added; adding an element that is
// already present leaves the set untouched.
func (s *Set[T]) Add(v T) (added bool, err error) {
	if err := s.checkValue("add", v); err != nil {
		return false, err
	}
	return s.mut.add(v), nil
}

// Contains reports whether an element equal to v is in the set.
func (s *Set[T]) Contains(v T) (bool, error) {
	if err := s.checkValue("contains", v); err != nil {
		return false, err
	}
	return s.find(v) != nil, nil
}

// Remove deletes the element equal to v, if any, and reports whether one was
// removed.
func (s *Set[T]) Remove(v T) (removed bool, err error) {
	if err := s.checkValue("remove", v); err != nil {
		return false, err
	}
	return s.mut.remove(v), nil
}

func (s *Set[T]) find(v T) *node[T] {
	n := s.root
	for n != nil {
		switch c := s.cmp(v, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int { return s.metrics.length }

// IsEmpty reports whether the set holds no elements.
func (s *Set[T]) IsEmpty() bool { return s.metrics.length == 0 }

// First returns the smallest element.
func (s *Set[T]) First() (T, bool) {
	if n := s.head.next; n != s.tail {
		return n.value, true
	}
	var zero T
	return zero, false
}

// Last returns the largest element.
func (s *Set[T]) Last() (T, bool) {
	if n := s.tail.prev; n != s.head {
		return n.value, true
	}
	var zero T
	return zero, false
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (s *Set[T]) Height() int { return height(s.root) }

// Stats returns a snapshot of the set's counters.
func (s *Set[T]) Stats() Stats { return s.metrics.snapshot() }

// All returns an iterator over the elements in ascending order. The loop body
// may not modify the set; doing so panics with ErrConcurrentMutation. Use
// Iterator to remove elements while iterating.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iterator()
		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				panic(err)
			}
			if !yield(v) {
				return
			}
		}
	}
}

// String renders the elements in ascending order as "[a, b, c]".
func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	s.walk(func(n *node[T]) bool {
		if n != s.head.next {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, n.value)
		return true
	})
	b.WriteByte(']')
	return b.String()
}
