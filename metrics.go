package treeset

// metrics tracks the set's size, its mutation counter and a few operation
// counters. The set is single-threaded so plain integers suffice.
type metrics struct {
	length      int
	mods        uint64
	inserts     uint64
	removals    uint64
	promotions  uint64
	comparisons uint64
}

// Stats is a snapshot of a set's operation counters.
type Stats struct {
	// Len is the number of elements.
	Len int
	// Mutations counts structural changes since construction.
	Mutations uint64
	// Inserts counts successful Add calls.
	Inserts uint64
	// Removals counts successful removals, including those made through an
	// Iterator.
	Removals uint64
	// Promotions counts removals of a node with two children, where the
	// in-order successor took the removed node's place.
	Promotions uint64
	// Comparisons counts calls to the ordering function.
	Comparisons uint64
}

func (m *metrics) recordInsert() {
	m.length++
	m.mods++
	m.inserts++
}

func (m *metrics) recordRemoval() {
	m.length--
	m.mods++
	m.removals++
}

func (m *metrics) recordPromotion() {
	m.promotions++
}

func (m *metrics) recordComparison() {
	m.comparisons++
}

func (m *metrics) snapshot() Stats {
	return Stats{
		Len:         m.length,
		Mutations:   m.mods,
		Inserts:     m.inserts,
		Removals:    m.removals,
		Promotions:  m.promotions,
		Comparisons: m.comparisons,
	}
}
