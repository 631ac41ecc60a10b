package treeset

// node is both a tree vertex and a member of the order list.
// left and right are owned by the node; prev and next are neighbour
// references in sort order and never own anything.
type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
	prev  *node[T]
	next  *node[T]
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}

// newSentinels returns head and tail linked to each other. Sentinels carry no
// value and never take part in comparisons.
func newSentinels[T any]() (*node[T], *node[T]) {
	head := &node[T]{}
	tail := &node[T]{}
	head.next = tail
	tail.prev = head
	return head, tail
}
