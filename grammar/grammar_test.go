package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func term(name string) Symbol    { return Symbol{Name: name, Kind: Terminal} }
func nonTerm(name string) Symbol { return Symbol{Name: name, Kind: NonTerminal} }

func Test_Grammar_Validate_emptyGrammar(t *testing.T) {
	g := &Grammar{}
	assert.Error(t, g.Validate())
}

func Test_Grammar_Validate_noTerminals(t *testing.T) {
	g := &Grammar{}
	g.AddRule("S", nonTerm("S"))
	g.SetStart("S")
	assert.Error(t, g.Validate())
}

func Test_Grammar_Validate_undeclaredTerminal(t *testing.T) {
	g := &Grammar{}
	g.AddTerm("a")
	g.AddRule("S", term("b"))
	g.SetStart("S")
	assert.Error(t, g.Validate())
}

func Test_Grammar_Validate_startNotNonTerminal(t *testing.T) {
	g := &Grammar{}
	g.AddTerm("a")
	g.AddRule("S", term("a"))
	g.SetStart("T")
	assert.Error(t, g.Validate())
}

func Test_Grammar_Validate_singleRuleGrammar(t *testing.T) {
	g := &Grammar{}
	g.AddTerm("a")
	g.AddRule("S", term("a"))
	g.SetStart("S")
	assert.NoError(t, g.Validate())
}

func Test_Grammar_Validate_epsilonAlwaysAllowed(t *testing.T) {
	g := &Grammar{}
	g.AddTerm("a")
	g.AddRule("S", term("a"))
	g.AddRule("S") // S -> ε
	g.SetStart("S")
	assert.NoError(t, g.Validate())
}

func Test_Grammar_Augmented(t *testing.T) {
	g := &Grammar{}
	g.AddTerm("a")
	g.AddRule("S", term("a"))
	g.SetStart("S")

	aug, startName := g.Augmented()
	assert.Equal(t, "S'", startName)
	assert.Equal(t, startName, aug.Start())
	assert.True(t, aug.IsNonTerminal(startName))

	prods := aug.ProductionsFor(startName)
	assert.Len(t, prods, 1)
	assert.Equal(t, []Symbol{nonTerm("S")}, prods[0].Right)

	// original untouched
	assert.False(t, g.IsNonTerminal(startName))
}

// S -> S + T | T
// T -> T * F | F
// F -> ( S ) | id
func expressionGrammar() *Grammar {
	g := &Grammar{}
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

func Test_First_expressionGrammar(t *testing.T) {
	g := expressionGrammar()
	sets := First(g)

	for _, nt := range []string{"S", "T", "F"} {
		assert.True(t, sets[nt][term("(")], "FIRST(%s) should contain (", nt)
		assert.True(t, sets[nt][term("id")], "FIRST(%s) should contain id", nt)
		assert.False(t, sets[nt][Empty], "FIRST(%s) should not contain ε", nt)
		assert.Len(t, sets[nt], 2)
	}
}

func Test_First_epsilonProducer(t *testing.T) {
	g := &Grammar{}
	g.AddTerm("a")
	g.AddRule("A", term("a"))
	g.AddRule("A") // A -> ε
	g.SetStart("A")

	sets := First(g)
	assert.True(t, sets["A"][term("a")])
	assert.True(t, sets["A"][Empty])
}

func Test_FirstSets_OfSequence_empty(t *testing.T) {
	g := expressionGrammar()
	sets := First(g)
	result := sets.OfSequence(g, nil)
	assert.Equal(t, map[Symbol]bool{Empty: true}, result)
}

func Test_FirstSets_OfSequence_externalTerminal(t *testing.T) {
	g := expressionGrammar()
	sets := First(g)
	dollar := term("$")
	result := sets.OfSequence(g, []Symbol{dollar})
	assert.Equal(t, map[Symbol]bool{dollar: true}, result)
}

func Test_FirstSets_OfSequence_stopsAtNonEmptyDeriving(t *testing.T) {
	g := expressionGrammar()
	sets := First(g)
	// FIRST(T $) = FIRST(T) since T never derives ε
	result := sets.OfSequence(g, []Symbol{nonTerm("T"), term("$")})
	assert.True(t, result[term("(")])
	assert.True(t, result[term("id")])
	assert.False(t, result[term("$")])
}
