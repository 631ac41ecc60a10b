package treeset

// walk calls fn for each live node in list order until fn returns false.
func (s *Set[T]) walk(fn func(*node[T]) bool) {
	for n := s.head.next; n != s.tail; n = n.next {
		if !fn(n) {
			return
		}
	}
}

// inorder visits the subtree rooted at n through child links. It reports
// false if fn stopped the walk.
func inorder[T any](n *node[T], fn func(*node[T]) bool) bool {
	return n == nil || (inorder(n.left, fn) && fn(n) && inorder(n.right, fn))
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
