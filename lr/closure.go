package lr

import "github.com/hallowpine/lrgen/grammar"

// Closure computes CLOSURE(I): a worklist seeded with I's items; for each
// item [A -> α · B β, a] with B a non-terminal, for each production
// B -> γ and each terminal b in FIRST(βa) \ {ε}, add [B -> · γ, b] if
// absent. Repeats until no additions.
func Closure(g *grammar.Grammar, first grammar.FirstSets, I ItemSet) ItemSet {
	result := NewItemSet()
	for _, it := range I.Items() {
		result.Add(it)
	}

	changed := true
	for changed {
		changed = false
		for _, it := range result.Items() {
			b, ok := it.NextSymbol()
			if !ok || b.Kind != grammar.NonTerminal {
				continue
			}

			beta := it.Prod.Right[it.Dot+1:]
			lookaheadSeq := append(append([]grammar.Symbol(nil), beta...), it.Lookahead)
			lookaheads := first.OfSequence(g, lookaheadSeq)

			for _, prod := range g.ProductionsFor(b.Name) {
				for la := range lookaheads {
					if la == grammar.Empty {
						continue
					}
					newItem := Item{Prod: prod, Dot: 0, Lookahead: la}
					if !result.Has(newItem) {
						result.Add(newItem)
						changed = true
					}
				}
			}
		}
	}

	return result
}

// Goto computes GOTO(I, X): shift the dot one position right in every item
// of I whose next symbol is X, then take the closure of the result. Returns
// an empty set if no item in I has X as its next symbol.
func Goto(g *grammar.Grammar, first grammar.FirstSets, I ItemSet, X grammar.Symbol) ItemSet {
	moved := NewItemSet()
	for _, it := range I.Items() {
		next, ok := it.NextSymbol()
		if ok && next == X {
			moved.Add(it.Advanced())
		}
	}
	if len(moved) == 0 {
		return moved
	}
	return Closure(g, first, moved)
}
