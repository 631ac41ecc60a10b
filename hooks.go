package treeset

// Test hooks (kept separate so instrumentation doesn't clutter logic).
// They must not mutate the set.
var (
	// promoteHook is invoked after the successor has been detached and is
	// about to replace the removed node in the tree.
	promoteHook func(removed, successor any)
)
