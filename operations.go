package treeset

// mutatorImpl groups the tree engine's mutating algorithms. Every change it
// makes to child links is mirrored into the order list before returning.
type mutatorImpl[T any] struct {
	s *Set[T]
}

// add inserts v and reports whether a node was created.
func (u *mutatorImpl[T]) add(v T) bool {
	s := u.s
	if s.root == nil {
		n := s.acquireNode(v)
		s.root = n
		linkAfter(n, s.head)
		s.metrics.recordInsert()
		return true
	}
	if !u.insert(s.root, v) {
		return false
	}
	s.metrics.recordInsert()
	return true
}

// insert descends from n and hangs v as a new leaf. A node's list neighbour
// at creation time is always its tree parent: a new left child goes right
// before the parent, a new right child right after it.
func (u *mutatorImpl[T]) insert(n *node[T], v T) bool {
	switch c := u.s.cmp(v, n.value); {
	case c < 0:
		if n.left == nil {
			child := u.s.acquireNode(v)
			n.left = child
			linkBefore(child, n)
			return true
		}
		return u.insert(n.left, v)
	case c > 0:
		if n.right == nil {
			child := u.s.acquireNode(v)
			n.right = child
			linkAfter(child, n)
			return true
		}
		return u.insert(n.right, v)
	default:
		return false
	}
}

// remove deletes the node equal to v and reports whether one was found.
func (u *mutatorImpl[T]) remove(v T) bool {
	var removed bool
	u.s.root, removed = u.delete(u.s.root, v)
	return removed
}

// delete removes v from the subtree rooted at n and returns the subtree's new
// root.
func (u *mutatorImpl[T]) delete(n *node[T], v T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch c := u.s.cmp(v, n.value); {
	case c < 0:
		n.left, removed = u.delete(n.left, v)
	case c > 0:
		n.right, removed = u.delete(n.right, v)
	default:
		return u.removeNode(n), true
	}
	return n, removed
}

// removeNode retires n from both structures and returns the node that takes
// its place in the tree.
func (u *mutatorImpl[T]) removeNode(n *node[T]) *node[T] {
	var replacement *node[T]
	switch {
	case n.left == nil:
		replacement = n.right
	case n.right == nil:
		replacement = n.left
	default:
		replacement = u.promoteSuccessor(n)
	}
	unlink(n)
	u.s.metrics.recordRemoval()
	u.s.releaseNode(n)
	return replacement
}

// promoteSuccessor detaches n's in-order successor, the leftmost node of its
// right subtree, and hands it n's children. The successor keeps its identity
// and list position; n is the node that goes away.
func (u *mutatorImpl[T]) promoteSuccessor(n *node[T]) *node[T] {
	parent, succ := n, n.right
	for succ.left != nil {
		parent, succ = succ, succ.left
	}
	if parent != n {
		parent.left = succ.right
		succ.right = n.right
	}
	succ.left = n.left

	u.s.metrics.recordPromotion()
	if promoteHook != nil {
		promoteHook(n, succ)
	}
	log.Tracef("%s: successor %v replaces removed %v", u.s.config.name, succ.value, n.value)
	return succ
}
