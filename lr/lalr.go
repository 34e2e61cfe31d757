package lr

import "sort"

// LALRCollection is the result of merging a canonical LR(1) collection's
// states by kernel equivalence. Indices into States and Transitions are
// the LALR(1) state numbers; Initial is the index of the merged state
// containing LR(1) state 0.
type LALRCollection struct {
	States      []ItemSet
	Transitions []map[string]int
	AugStart    string
	Initial     int
}

// MergeLALR1 partitions an LR(1) canonical collection by kernel (production
// and dot position, ignoring lookaheads), unions each partition's item sets
// into one LALR(1) state, and rewrites every LR(1) transition i--X-->j into
// merged(i)--X-->merged(j). Because partitions share a kernel, the unioned
// item sets are well-formed: items differ only in which lookaheads are
// attached to structurally-equal kernel items, so lookaheads simply union.
func MergeLALR1(c *Collection) *LALRCollection {
	// Stable grouping: first occurrence of a CoreKey determines the merged
	// state's discovery-order position, keeping LALR state numbering a
	// deterministic function of LR(1) state discovery order.
	var order []string
	groups := map[string][]int{}
	for i, state := range c.States {
		key := state.CoreKey()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	lalr := &LALRCollection{AugStart: c.AugStart}
	mergedIndexOf := map[int]int{} // LR(1) state index -> LALR state index
	for mergedIdx, key := range order {
		members := groups[key]
		sort.Ints(members)

		merged := NewItemSet()
		for _, lr1Idx := range members {
			for _, it := range c.States[lr1Idx].Items() {
				merged.Add(it)
			}
			mergedIndexOf[lr1Idx] = mergedIdx
		}
		lalr.States = append(lalr.States, merged)
		lalr.Transitions = append(lalr.Transitions, map[string]int{})
	}

	for i, trans := range c.Transitions {
		from := mergedIndexOf[i]
		for label, j := range trans {
			lalr.Transitions[from][label] = mergedIndexOf[j]
		}
	}

	lalr.Initial = mergedIndexOf[0]
	return lalr
}
