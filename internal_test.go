package treeset

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// checkInvariants verifies that the tree and the order list describe the same
// sorted sequence and that the bookkeeping agrees with both.
func (s *Set[T]) checkInvariants(t testing.TB) {
	t.Helper()

	require.Nil(t, s.head.prev, "head.prev must be nil")
	require.Nil(t, s.tail.next, "tail.next must be nil")

	var fromTree []*node[T]
	inorder(s.root, func(n *node[T]) bool {
		fromTree = append(fromTree, n)
		return true
	})

	var fromList []*node[T]
	for n := s.head.next; n != s.tail; n = n.next {
		require.NotNil(t, n, "order list broken before reaching tail")
		require.Same(t, n, n.prev.next, "prev.next does not point back")
		require.Same(t, n, n.next.prev, "next.prev does not point back")
		fromList = append(fromList, n)
	}

	require.Len(t, fromTree, s.Len(), "tree size disagrees with Len")
	require.Len(t, fromList, s.Len(), "list size disagrees with Len")
	for i := range fromTree {
		require.Same(t, fromTree[i], fromList[i], "tree and list disagree at position %d", i)
		if i > 0 {
			require.Negative(t, s.compare(fromTree[i-1].value, fromTree[i].value),
				"elements out of order at position %d", i)
		}
	}
	s.checkBounds(t, s.root, nil, nil)
}

// checkBounds verifies the search tree property against ancestor bounds.
func (s *Set[T]) checkBounds(t testing.TB, n, lo, hi *node[T]) {
	t.Helper()
	if n == nil {
		return
	}
	if lo != nil {
		require.Positive(t, s.compare(n.value, lo.value), "node below lower bound")
	}
	if hi != nil {
		require.Negative(t, s.compare(n.value, hi.value), "node above upper bound")
	}
	s.checkBounds(t, n.left, lo, n)
	s.checkBounds(t, n.right, n, hi)
}

func TestNewChildIsLinkedNextToParent(t *testing.T) {
	s := New[int]()
	for _, v := range []int{10, 5, 15} {
		_, err := s.Add(v)
		require.NoError(t, err)
	}

	root := s.root
	require.Same(t, root.left, root.prev, "left child must precede its parent")
	require.Same(t, root.right, root.next, "right child must follow its parent")
	require.Same(t, s.head, root.left.prev)
	require.Same(t, s.tail, root.right.next)
	s.checkInvariants(t)
}

func TestTwoChildRemovalPromotesSuccessorNode(t *testing.T) {
	s := New[int]()
	for _, v := range []int{5, 3, 8} {
		_, err := s.Add(v)
		require.NoError(t, err)
	}
	removed := s.root
	successor := s.root.right

	var hookRemoved, hookSuccessor any
	promoteHook = func(r, succ any) { hookRemoved, hookSuccessor = r, succ }
	defer func() { promoteHook = nil }()

	ok, err := s.Remove(5)
	require.NoError(t, err)
	require.True(t, ok)

	require.Same(t, successor, s.root, "successor node must take the removed node's place")
	require.Equal(t, 8, s.root.value)
	require.Same(t, removed, hookRemoved)
	require.Same(t, successor, hookSuccessor)
	require.Equal(t, 5, removed.value, "retired node keeps its value")
	require.Same(t, successor, removed.next, "retired node still points at its successor")
	require.Equal(t, "[3, 8]", s.String())
	require.Equal(t, 2, s.Len())
	require.EqualValues(t, 1, s.Stats().Promotions)
	s.checkInvariants(t)
}

func TestDeepSuccessorIsDetachedFromItsParent(t *testing.T) {
	s := New[int]()
	for _, v := range []int{50, 30, 80, 60, 90, 70, 65} {
		_, err := s.Add(v)
		require.NoError(t, err)
	}
	// 60 is the leftmost node of 80's subtree and has a right child 70.
	successor := s.find(60)
	seventy := s.find(70)

	_, err := s.Remove(50)
	require.NoError(t, err)

	require.Same(t, successor, s.root)
	require.Same(t, seventy, s.find(80).left, "successor's right child takes its old slot")
	require.Equal(t, "[30, 60, 65, 70, 80, 90]", s.String())
	s.checkInvariants(t)
}

func TestNodePoolRecyclesRetiredNodes(t *testing.T) {
	s := New[int](WithNodePool(true))
	for i := range 64 {
		_, err := s.Add(i)
		require.NoError(t, err)
	}
	for i := 0; i < 64; i += 2 {
		_, err := s.Remove(i)
		require.NoError(t, err)
	}
	for i := 100; i < 132; i++ {
		_, err := s.Add(i)
		require.NoError(t, err)
	}
	require.Equal(t, 64, s.Len())
	s.checkInvariants(t)
}

func TestNilDetection(t *testing.T) {
	require.False(t, nilable[int]())
	require.False(t, nilable[string]())
	require.True(t, nilable[*int]())
	require.True(t, nilable[any]())
	require.True(t, nilable[[]byte]())

	var p *int
	require.True(t, isNil(p))
	require.True(t, isNil[any](nil))
	require.True(t, isNil[any](p))
	require.False(t, isNil(new(int)))
	require.False(t, isNil[any](0))
}

func TestNilElementIsRejectedBeforeMutation(t *testing.T) {
	s, err := NewFunc(func(a, b *int) int { return *a - *b })
	require.NoError(t, err)
	one := 1
	_, err = s.Add(&one)
	require.NoError(t, err)
	before := s.Stats()

	_, err = s.Add(nil)
	require.True(t, errors.Is(err, ErrInvalidInput))
	_, err = s.Contains(nil)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.Remove(nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	require.Equal(t, before, s.Stats())
	s.checkInvariants(t)
}
