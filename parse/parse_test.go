package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hallowpine/lrgen/grammar"
	"github.com/hallowpine/lrgen/lr"
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

func toks(types ...string) *SliceStream {
	ts := make([]Token, len(types))
	for i, ty := range types {
		ts[i] = Token{Type: ty}
	}
	return NewSliceStream(ts)
}

func Test_Parser_acceptsIdPlusIdTimesId(t *testing.T) {
	g := expressionGrammar()
	table, err := lr.Build(g)
	assert.NoError(t, err)
	assert.Empty(t, table.Conflicts())

	p := New(table, nil)
	err = p.Parse(toks("id", "+", "id", "*", "id"))
	assert.NoError(t, err)
}

func Test_Parser_rejectsDoublePlus(t *testing.T) {
	g := expressionGrammar()
	table, err := lr.Build(g)
	assert.NoError(t, err)

	p := New(table, nil)
	err = p.Parse(toks("id", "+", "+"))
	assert.Error(t, err)
}

func Test_Parser_acceptsParenthesized(t *testing.T) {
	g := expressionGrammar()
	table, err := lr.Build(g)
	assert.NoError(t, err)

	p := New(table, nil)
	err = p.Parse(toks("(", "id", "+", "id", ")", "*", "id"))
	assert.NoError(t, err)
}

func Test_Parser_singleProductionAccept(t *testing.T) {
	g := &grammar.Grammar{}
	g.AddTerm("a")
	g.AddRule("S", term("a"))
	g.SetStart("S")

	table, err := lr.Build(g)
	assert.NoError(t, err)

	initAction := table.Action(table.Initial, "a")
	assert.Equal(t, lr.Shift, initAction.Type)

	p := New(table, nil)
	assert.NoError(t, p.Parse(toks("a")))
	assert.Error(t, p.Parse(toks()))
}

func Test_Parser_traceCallbackInvoked(t *testing.T) {
	g := &grammar.Grammar{}
	g.AddTerm("a")
	g.AddRule("S", term("a"))
	g.SetStart("S")

	table, err := lr.Build(g)
	assert.NoError(t, err)

	var lines []string
	p := New(table, func(s string) { lines = append(lines, s) })
	assert.NoError(t, p.Parse(toks("a")))
	assert.NotEmpty(t, lines)
}
