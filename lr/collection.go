package lr

import (
	"sort"

	"github.com/hallowpine/lrgen/grammar"
)

// Collection is the canonical LR(1) collection: an ordered list of states
// (each an ItemSet) plus the transition function between them. States are
// indexed by their position in States, which is their discovery order
// starting from state 0 — kept deterministic so that state indices, and
// therefore conflict messages, are reproducible across builds of the same
// grammar.
type Collection struct {
	States      []ItemSet
	Transitions []map[string]int // Transitions[i][symbolName] = target state index
	AugStart    string
}

// allSymbols returns every terminal and non-terminal of g, plus the
// distinguished end marker, sorted by name so that GOTO is always
// attempted in the same order regardless of map iteration.
func allSymbols(g *grammar.Grammar) []grammar.Symbol {
	syms := append(g.Terminals(), g.NonTerminals()...)
	syms = append(syms, grammar.EndMarker)
	sort.Slice(syms, func(i, j int) bool {
		if syms[i].Name != syms[j].Name {
			return syms[i].Name < syms[j].Name
		}
		return syms[i].Kind < syms[j].Kind
	})
	return syms
}

// buildCollection constructs the canonical LR(1) collection for g: g is
// augmented with a fresh start symbol S' -> S, the initial state is
// CLOSURE({[S' -> ·S, $]}), and states/transitions are discovered by a
// worklist over every grammar symbol from every existing state.
func buildCollection(g *grammar.Grammar) *Collection {
	aug, augStart := g.Augmented()
	first := grammar.First(aug)

	initialItem := Item{
		Prod:      aug.ProductionsFor(augStart)[0],
		Dot:       0,
		Lookahead: grammar.EndMarker,
	}
	initial := NewItemSet()
	initial.Add(initialItem)
	initial = Closure(aug, first, initial)

	c := &Collection{AugStart: augStart}
	indexByKey := map[string]int{initial.SetKey(): 0}
	c.States = append(c.States, initial)
	c.Transitions = append(c.Transitions, map[string]int{})

	symbols := allSymbols(aug)

	worklist := []int{0}
	for len(worklist) > 0 {
		i := worklist[0]
		worklist = worklist[1:]
		state := c.States[i]

		for _, X := range symbols {
			target := Goto(aug, first, state, X)
			if len(target) == 0 {
				continue
			}
			key := target.SetKey()
			j, exists := indexByKey[key]
			if !exists {
				j = len(c.States)
				indexByKey[key] = j
				c.States = append(c.States, target)
				c.Transitions = append(c.Transitions, map[string]int{})
				worklist = append(worklist, j)
			}
			c.Transitions[i][X.Name] = j
		}
	}

	return c
}
