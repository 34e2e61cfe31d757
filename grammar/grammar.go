package grammar

import "github.com/hallowpine/lrgen/lrerr"

// Production is an ordered pair (Left, Right): a non-terminal and the
// (possibly empty) sequence of symbols it derives. Equality is structural,
// via Equal, which compares Right element-wise; because Right is a slice,
// Production is not comparable with ==.
type Production struct {
	Left  Symbol
	Right []Symbol
}

// Equal reports structural equality between two productions.
func (p Production) Equal(other Production) bool {
	if p.Left != other.Left || len(p.Right) != len(other.Right) {
		return false
	}
	for i := range p.Right {
		if p.Right[i] != other.Right[i] {
			return false
		}
	}
	return true
}

func (p Production) String() string {
	s := p.Left.Name + " ->"
	if len(p.Right) == 0 {
		return s + " " + Empty.Name
	}
	for _, sym := range p.Right {
		s += " " + sym.Name
	}
	return s
}

// Grammar is a finite bag of productions plus a designated start
// non-terminal and the induced terminal/non-terminal partitions. Productions
// are appended in AddRule call order and that order is preserved by
// Productions — later stages (LR state discovery, conflict messages) depend
// on it for reproducibility.
type Grammar struct {
	start       string
	terminals   map[string]bool
	nonTerms    map[string]bool
	productions []Production
}

// AddTerm declares name as a terminal symbol. A no-op if already declared.
func (g *Grammar) AddTerm(name string) {
	if g.terminals == nil {
		g.terminals = map[string]bool{}
	}
	g.terminals[name] = true
}

// SetStart designates name as the grammar's start non-terminal.
func (g *Grammar) SetStart(name string) {
	g.start = name
}

// Start returns the designated start non-terminal's name.
func (g *Grammar) Start() string {
	return g.start
}

// AddRule adds a production head -> body, implicitly declaring head a
// non-terminal. Symbols appearing in body are not validated until Validate
// is called, so an undeclared symbol is only detected lazily.
func (g *Grammar) AddRule(head string, body ...Symbol) {
	if g.nonTerms == nil {
		g.nonTerms = map[string]bool{}
	}
	g.nonTerms[head] = true
	g.productions = append(g.productions, Production{
		Left:  Symbol{Name: head, Kind: NonTerminal},
		Right: append([]Symbol(nil), body...),
	})
}

// Productions returns every production in AddRule call order.
func (g *Grammar) Productions() []Production {
	out := make([]Production, len(g.productions))
	copy(out, g.productions)
	return out
}

// ProductionsFor returns the productions whose left side is head, in
// AddRule call order.
func (g *Grammar) ProductionsFor(head string) []Production {
	var out []Production
	for _, p := range g.productions {
		if p.Left.Name == head {
			out = append(out, p)
		}
	}
	return out
}

// Terminals returns the declared terminal symbols, in declaration order is
// not guaranteed (map-backed); callers needing a stable order should sort.
func (g *Grammar) Terminals() []Symbol {
	out := make([]Symbol, 0, len(g.terminals))
	for name := range g.terminals {
		out = append(out, Symbol{Name: name, Kind: Terminal})
	}
	return out
}

// NonTerminals returns the declared non-terminal symbols.
func (g *Grammar) NonTerminals() []Symbol {
	out := make([]Symbol, 0, len(g.nonTerms))
	for name := range g.nonTerms {
		out = append(out, Symbol{Name: name, Kind: NonTerminal})
	}
	return out
}

// IsTerminal reports whether name was declared a terminal.
func (g *Grammar) IsTerminal(name string) bool {
	return g.terminals[name]
}

// IsNonTerminal reports whether name was declared a non-terminal (i.e. is
// the head of at least one rule).
func (g *Grammar) IsNonTerminal(name string) bool {
	return g.nonTerms[name]
}

// Validate checks the grammar's invariants: at least one terminal, at least
// one production, a start symbol that is a declared non-terminal, and every
// right-hand-side symbol belonging to one of the two partitions (ε
// excepted, which is always allowed as a right-hand-side symbol).
func (g *Grammar) Validate() error {
	if len(g.terminals) == 0 {
		return &lrerr.MalformedGrammarError{Symbol: "", Reason: "grammar declares no terminals"}
	}
	if len(g.productions) == 0 {
		return &lrerr.MalformedGrammarError{Symbol: "", Reason: "grammar has no productions"}
	}
	if g.start == "" {
		return &lrerr.MalformedGrammarError{Symbol: "", Reason: "grammar has no start symbol set"}
	}
	if !g.nonTerms[g.start] {
		return &lrerr.MalformedGrammarError{Symbol: g.start, Reason: "is not a declared non-terminal"}
	}
	for _, p := range g.productions {
		for _, sym := range p.Right {
			if sym == Empty {
				continue
			}
			switch sym.Kind {
			case Terminal:
				if !g.terminals[sym.Name] {
					return &lrerr.MalformedGrammarError{Symbol: sym.Name, Reason: "is not a declared terminal"}
				}
			case NonTerminal:
				if !g.nonTerms[sym.Name] {
					return &lrerr.MalformedGrammarError{Symbol: sym.Name, Reason: "is not a declared non-terminal"}
				}
			}
		}
	}
	return nil
}

// augmentedSuffix marks the fresh start symbol introduced by Augmented.
// Appending it (and reappending on a collision) avoids relying on a name
// collision with a caller-chosen symbol to identify the augmented start.
const augmentedSuffix = "'"

// Augmented returns a copy of g with a fresh start non-terminal S' and
// production S' -> S placed before g's own productions, where S is g's
// current start symbol, plus
// the name of that fresh symbol for later ACCEPT detection.
func (g *Grammar) Augmented() (*Grammar, string) {
	augStart := g.start + augmentedSuffix
	for g.nonTerms[augStart] {
		augStart += augmentedSuffix
	}

	cp := &Grammar{
		start:       augStart,
		terminals:   map[string]bool{},
		nonTerms:    map[string]bool{},
		productions: make([]Production, 0, len(g.productions)+1),
	}
	for k := range g.terminals {
		cp.terminals[k] = true
	}
	for k := range g.nonTerms {
		cp.nonTerms[k] = true
	}
	cp.nonTerms[augStart] = true
	cp.productions = append(cp.productions, Production{
		Left:  Symbol{Name: augStart, Kind: NonTerminal},
		Right: []Symbol{{Name: g.start, Kind: NonTerminal}},
	})
	cp.productions = append(cp.productions, g.productions...)

	return cp, augStart
}
