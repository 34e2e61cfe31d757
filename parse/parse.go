// Package parse drives an lr.Table over a token stream with the
// stack-based shift/reduce/accept loop of purple dragon book Algorithm
// 4.44: no parse-tree construction, just the state stack the algorithm
// needs for correctness, plus a single trace-callback hook for
// diagnostics.
package parse

import (
	"fmt"

	"github.com/hallowpine/lrgen/grammar"
	"github.com/hallowpine/lrgen/lr"
	"github.com/hallowpine/lrgen/lrerr"
)

// Token is the minimal parser-input record: only Type is consulted for
// parsing; Lexeme is carried for diagnostics only.
type Token struct {
	Type   string
	Lexeme string
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Type
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Lexeme)
}

// TokenStream supplies tokens one at a time. Implementations are not
// expected to produce an EOF token themselves; Parse appends one
// internally.
type TokenStream interface {
	Next() (Token, bool) // ok is false once the stream is exhausted
}

// SliceStream is a TokenStream backed by an in-memory slice, useful for
// tests and small inputs.
type SliceStream struct {
	toks []Token
	pos  int
}

// NewSliceStream returns a TokenStream over toks.
func NewSliceStream(toks []Token) *SliceStream {
	return &SliceStream{toks: toks}
}

func (s *SliceStream) Next() (Token, bool) {
	if s.pos >= len(s.toks) {
		return Token{}, false
	}
	t := s.toks[s.pos]
	s.pos++
	return t, true
}

// Parser drives a built lr.Table over a TokenStream.
type Parser struct {
	table *lr.Table
	trace func(string)
}

// New returns a Parser for table. An optional trace callback receives one
// line of diagnostic text per driver event (token read, stack top, action
// chosen, shift, reduce, goto); pass nil for silent operation.
func New(table *lr.Table, trace func(string)) *Parser {
	return &Parser{table: table, trace: trace}
}

func (p *Parser) notify(format string, args ...interface{}) {
	if p.trace != nil {
		p.trace(fmt.Sprintf(format, args...))
	}
}

// Parse runs the shift/reduce/accept loop over stream. Returns nil on
// ACCEPT; returns a *lrerr.ParseError on a missing ACTION or GOTO entry.
func (p *Parser) Parse(stream TokenStream) error {
	stateStack := []int{p.table.Initial}

	next := func() Token {
		tok, ok := stream.Next()
		if !ok {
			return Token{Type: grammar.EndMarker.Name}
		}
		return tok
	}

	a := next()
	p.notify("next token: %s", a)

	for {
		s := stateStack[len(stateStack)-1]
		p.notify("state stack top: %d", s)

		action := p.table.Action(s, a.Type)
		p.notify("action: %s", action.Type)

		switch action.Type {
		case lr.Shift:
			stateStack = append(stateStack, action.ShiftState)
			p.notify("shift -> state %d", action.ShiftState)
			a = next()
			p.notify("next token: %s", a)

		case lr.Reduce:
			beta := action.Reduction.Right
			stateStack = stateStack[:len(stateStack)-len(beta)]
			p.notify("reduce by %s", action.Reduction.String())

			t := stateStack[len(stateStack)-1]
			target, ok := p.table.Goto(t, action.Reduction.Left.Name)
			if !ok {
				return &lrerr.ParseError{
					State:    fmt.Sprintf("%d", t),
					Found:    a.String(),
					Expected: nil,
				}
			}
			stateStack = append(stateStack, target)
			p.notify("goto -> state %d", target)

		case lr.Accept:
			return nil

		default:
			return &lrerr.ParseError{
				State:    fmt.Sprintf("%d", s),
				Found:    a.String(),
				Expected: p.table.ExpectedTerminals(s),
			}
		}
	}
}
