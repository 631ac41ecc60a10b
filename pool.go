package treeset

import "sync"

func newNodePool[T any]() *sync.Pool {
	return &sync.Pool{
		New: func() any { return new(node[T]) },
	}
}

func (s *Set[T]) acquireNode(value T) *node[T] {
	if s.nodePool == nil {
		return newNode(value)
	}
	n := s.nodePool.Get().(*node[T])
	n.value = value
	n.left = nil
	n.right = nil
	n.prev = nil
	n.next = nil
	return n
}

// releaseNode hands a retired node back to the pool. The neighbour links are
// left intact: an Iterator may still be parked on n, and reuse only happens
// on Add, which invalidates every outstanding Iterator.
func (s *Set[T]) releaseNode(n *node[T]) {
	if n == nil || n == s.head || n == s.tail || s.nodePool == nil {
		return
	}
	var zero T
	n.value = zero
	n.left = nil
	n.right = nil
	s.nodePool.Put(n)
}
