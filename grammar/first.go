package grammar

// FirstSets maps each non-terminal's name to its FIRST set. Terminals are
// not stored here — FIRST of a terminal is defined to be itself and is
// computed on demand rather than precomputed into the table.
type FirstSets map[string]map[Symbol]bool

// First computes the FIRST set of every non-terminal in g by the standard
// fixed-point iteration (purple dragon book): for a production
// A -> X1 X2 ... Xn, add FIRST(X1) \ {ε}; if ε ∈ FIRST(X1), add
// FIRST(X2) \ {ε}; and so on, adding ε to FIRST(A) only if every Xi can
// derive ε (or the production is itself ε). Iterates until no set changes.
func First(g *Grammar) FirstSets {
	sets := make(FirstSets)
	for name := range g.nonTerms {
		sets[name] = map[Symbol]bool{}
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.productions {
			dest := sets[p.Left.Name]
			before := len(dest)

			if len(p.Right) == 0 {
				dest[Empty] = true
			} else {
				allDeriveEmpty := true
				for _, sym := range p.Right {
					addAll(dest, firstOfSymbol(g, sets, sym), true)
					if !derivesEmpty(g, sets, sym) {
						allDeriveEmpty = false
						break
					}
				}
				if allDeriveEmpty {
					dest[Empty] = true
				}
			}

			if len(dest) != before {
				changed = true
			}
		}
	}

	return sets
}

// firstOfSymbol returns FIRST(X): {X} if X is a terminal, sets[X.Name]
// otherwise (possibly still growing during the fixed-point loop).
func firstOfSymbol(g *Grammar, sets FirstSets, sym Symbol) map[Symbol]bool {
	if sym.Kind == Terminal {
		return map[Symbol]bool{sym: true}
	}
	return sets[sym.Name]
}

func derivesEmpty(g *Grammar, sets FirstSets, sym Symbol) bool {
	if sym == Empty {
		return true
	}
	if sym.Kind == Terminal {
		return false
	}
	return sets[sym.Name][Empty]
}

func addAll(dest map[Symbol]bool, src map[Symbol]bool, excludeEmpty bool) {
	for sym := range src {
		if excludeEmpty && sym == Empty {
			continue
		}
		dest[sym] = true
	}
}

// OfSequence computes FIRST(β) for an arbitrary symbol sequence β: the
// empty sequence yields {ε}; a symbol absent from sets (an external
// terminal such as `$`, which is never the head of a production) is
// treated as a terminal whose FIRST is itself, and the walk stops there
// without continuing past it.
func (sets FirstSets) OfSequence(g *Grammar, beta []Symbol) map[Symbol]bool {
	result := map[Symbol]bool{}
	if len(beta) == 0 {
		result[Empty] = true
		return result
	}

	for i, sym := range beta {
		var first map[Symbol]bool
		external := sym.Kind == NonTerminal && sets[sym.Name] == nil
		if sym.Kind == Terminal || external {
			first = map[Symbol]bool{sym: true}
		} else {
			first = sets[sym.Name]
		}

		addAll(result, first, true)

		canDeriveEmpty := !external && sym.Kind == NonTerminal && sets[sym.Name][Empty]
		if sym == Empty {
			canDeriveEmpty = true
		}
		if !canDeriveEmpty {
			return result
		}
		if i == len(beta)-1 {
			result[Empty] = true
		}
	}

	return result
}
