package treeset

// linkAfter threads n into the order list immediately after at.
// n must not currently be linked.
func linkAfter[T any](n, at *node[T]) {
	succ := at.next
	n.prev = at
	n.next = succ
	succ.prev = n
	at.next = n
}

// linkBefore threads n into the order list immediately before at.
// n must not currently be linked.
func linkBefore[T any](n, at *node[T]) {
	pred := at.prev
	n.prev = pred
	n.next = at
	pred.next = n
	at.prev = n
}

// unlink joins n's neighbours directly. n keeps its own prev and next so a
// cursor parked on it can still step forward.
func unlink[T any](n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
}
