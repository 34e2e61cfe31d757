package lr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hallowpine/lrgen/grammar"
	"github.com/hallowpine/lrgen/lrerr"
)

func term(name string) grammar.Symbol    { return grammar.Symbol{Name: name, Kind: grammar.Terminal} }
func nonTerm(name string) grammar.Symbol { return grammar.Symbol{Name: name, Kind: grammar.NonTerminal} }

// S -> S + T | T
// T -> T * F | F
// F -> ( S ) | id
func expressionGrammar() *grammar.Grammar {
	g := &grammar.Grammar{}
	for _, tname := range []string{"+", "*", "(", ")", "id"} {
		g.AddTerm(tname)
	}
	g.AddRule("S", nonTerm("S"), term("+"), nonTerm("T"))
	g.AddRule("S", nonTerm("T"))
	g.AddRule("T", nonTerm("T"), term("*"), nonTerm("F"))
	g.AddRule("T", nonTerm("F"))
	g.AddRule("F", term("("), nonTerm("S"), term(")"))
	g.AddRule("F", term("id"))
	g.SetStart("S")
	return g
}

func Test_Closure_initialState(t *testing.T) {
	g := expressionGrammar()
	aug, augStart := g.Augmented()
	first := grammar.First(aug)

	I := NewItemSet()
	I.Add(Item{Prod: aug.ProductionsFor(augStart)[0], Dot: 0, Lookahead: grammar.EndMarker})
	closed := Closure(aug, first, I)

	// closure must include every S, T, F production with dot at 0
	found := map[string]bool{}
	for _, it := range closed.Items() {
		if it.Dot == 0 {
			found[it.Prod.Left.Name] = true
		}
	}
	assert.True(t, found["S"])
	assert.True(t, found["T"])
	assert.True(t, found["F"])
}

func Test_Goto_emptyWhenNoMatchingItem(t *testing.T) {
	g := expressionGrammar()
	aug, augStart := g.Augmented()
	first := grammar.First(aug)

	I := NewItemSet()
	I.Add(Item{Prod: aug.ProductionsFor(augStart)[0], Dot: 0, Lookahead: grammar.EndMarker})
	I = Closure(aug, first, I)

	assert.Empty(t, Goto(aug, first, I, term(")")))
}

func Test_buildCollection_expressionGrammar(t *testing.T) {
	g := expressionGrammar()
	c := buildCollection(g)

	assert.NotEmpty(t, c.States)
	// state 0 must contain the augmented start item
	found := false
	for _, it := range c.States[0].Items() {
		if it.Prod.Left.Name == c.AugStart && it.Dot == 0 {
			found = true
		}
	}
	assert.True(t, found)
}

func Test_MergeLALR1_reducesOrPreservesStateCount(t *testing.T) {
	g := expressionGrammar()
	c := buildCollection(g)
	lalr := MergeLALR1(c)

	assert.LessOrEqual(t, len(lalr.States), len(c.States))

	// every LR(1) transition i--X-->j has a corresponding LALR transition
	for i, trans := range c.Transitions {
		for label, j := range trans {
			mergedFrom := -1
			mergedTo := -1
			for mi, state := range lalr.States {
				if state.CoreKey() == c.States[i].CoreKey() {
					mergedFrom = mi
				}
				if state.CoreKey() == c.States[j].CoreKey() {
					mergedTo = mi
				}
			}
			assert.NotEqual(t, -1, mergedFrom)
			assert.NotEqual(t, -1, mergedTo)
			assert.Equal(t, mergedTo, lalr.Transitions[mergedFrom][label])
		}
	}
}

func Test_Build_expressionGrammar_noConflicts(t *testing.T) {
	g := expressionGrammar()
	table, err := Build(g)
	assert.NoError(t, err)
	assert.Empty(t, table.Conflicts())

	initAction := table.Action(table.Initial, "id")
	assert.Equal(t, Shift, initAction.Type)
}

// Classic dangling-else grammar:
//
//	S -> if E then S | if E then S else S | other
func danglingElseGrammar() *grammar.Grammar {
	g := &grammar.Grammar{}
	for _, tname := range []string{"if", "then", "else", "E", "other"} {
		g.AddTerm(tname)
	}
	g.AddRule("S", term("if"), term("E"), term("then"), nonTerm("S"))
	g.AddRule("S", term("if"), term("E"), term("then"), nonTerm("S"), term("else"), nonTerm("S"))
	g.AddRule("S", term("other"))
	g.SetStart("S")
	return g
}

func Test_Build_danglingElse_recordsShiftReduceConflict(t *testing.T) {
	g := danglingElseGrammar()
	table, err := Build(g)
	assert.NoError(t, err)
	assert.NotEmpty(t, table.Conflicts())
	assert.Equal(t, lrerr.ShiftReduceConflict, table.Conflicts()[0].Kind)
}

func Test_Build_strictConflicts_abortsOnConflict(t *testing.T) {
	g := danglingElseGrammar()
	_, err := Build(g, WithStrictConflicts())
	assert.Error(t, err)
}

// Reduce/reduce conflict: two productions reducing to distinct
// non-terminals on the same lookahead.
func reduceReduceGrammar() *grammar.Grammar {
	g := &grammar.Grammar{}
	g.AddTerm("id")
	g.AddRule("S", nonTerm("A"))
	g.AddRule("S", nonTerm("B"))
	g.AddRule("A", term("id"))
	g.AddRule("B", term("id"))
	g.SetStart("S")
	return g
}

func Test_Build_reduceReduceConflict(t *testing.T) {
	g := reduceReduceGrammar()
	table, err := Build(g)
	assert.NoError(t, err)

	foundRR := false
	for _, c := range table.Conflicts() {
		if c.Kind == lrerr.ReduceReduceConflict {
			foundRR = true
		}
	}
	assert.True(t, foundRR)
}
