package regex

import (
	"fmt"

	"github.com/hallowpine/lrgen/automaton"
	"github.com/hallowpine/lrgen/lrerr"
)

// fragment is a piece of the automaton under construction: a start state and
// the (unique, since Thompson construction never branches more than one
// accept per fragment) end state. Unlike a pointer-based fragment with
// dangling output arrows, states here already exist in the NFA; composing
// two fragments means adding an ε-edge between their states rather than
// patching pointers.
type fragment struct {
	start, end string
}

// builder accumulates states into an automaton.NFA, handing out fresh names
// as it goes.
type builder struct {
	nfa  *automaton.NFA
	next int
}

func newBuilder() *builder {
	return &builder{nfa: automaton.NewNFA()}
}

func (b *builder) newState() string {
	name := fmt.Sprintf("q%d", b.next)
	b.next++
	b.nfa.AddState(name, false)
	return name
}

// BuildNFA consumes a postfix token stream and returns the Thompson-
// constructed NFA for it, per the fragment-composition rules: operand pushes
// a two-state fragment, `·` chains two fragments with an ε-edge, `|`
// branches via a fresh start/end pair, `*`/`+`/`?` wrap a single fragment in
// a loop/optional construct. The final single remaining fragment's end
// becomes the NFA's only accepting state.
func BuildNFA(pattern string, postfix []rune) (*automaton.NFA, error) {
	b := newBuilder()
	var stack []fragment

	pop := func() (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, &lrerr.MalformedRegexError{Pattern: pattern, Reason: "insufficient operands"}
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top, nil
	}

	for _, r := range postfix {
		switch r {
		case ConcatOp:
			right, err := pop()
			if err != nil {
				return nil, err
			}
			left, err := pop()
			if err != nil {
				return nil, err
			}
			b.nfa.AddTransition(left.end, automaton.Epsilon, right.start)
			stack = append(stack, fragment{start: left.start, end: right.end})

		case opAlt:
			right, err := pop()
			if err != nil {
				return nil, err
			}
			left, err := pop()
			if err != nil {
				return nil, err
			}
			start, end := b.newState(), b.newState()
			b.nfa.AddTransition(start, automaton.Epsilon, left.start)
			b.nfa.AddTransition(start, automaton.Epsilon, right.start)
			b.nfa.AddTransition(left.end, automaton.Epsilon, end)
			b.nfa.AddTransition(right.end, automaton.Epsilon, end)
			stack = append(stack, fragment{start: start, end: end})

		case opStar:
			inner, err := pop()
			if err != nil {
				return nil, err
			}
			start, end := b.newState(), b.newState()
			b.nfa.AddTransition(start, automaton.Epsilon, end)
			b.nfa.AddTransition(start, automaton.Epsilon, inner.start)
			b.nfa.AddTransition(inner.end, automaton.Epsilon, inner.start)
			b.nfa.AddTransition(inner.end, automaton.Epsilon, end)
			stack = append(stack, fragment{start: start, end: end})

		case opPlus:
			inner, err := pop()
			if err != nil {
				return nil, err
			}
			start, end := b.newState(), b.newState()
			b.nfa.AddTransition(start, automaton.Epsilon, inner.start)
			b.nfa.AddTransition(inner.end, automaton.Epsilon, inner.start)
			b.nfa.AddTransition(inner.end, automaton.Epsilon, end)
			stack = append(stack, fragment{start: start, end: end})

		case opOpt:
			inner, err := pop()
			if err != nil {
				return nil, err
			}
			start, end := b.newState(), b.newState()
			b.nfa.AddTransition(start, automaton.Epsilon, end)
			b.nfa.AddTransition(start, automaton.Epsilon, inner.start)
			b.nfa.AddTransition(inner.end, automaton.Epsilon, end)
			stack = append(stack, fragment{start: start, end: end})

		default:
			start, end := b.newState(), b.newState()
			b.nfa.AddTransition(start, string(r), end)
			stack = append(stack, fragment{start: start, end: end})
		}
	}

	if len(stack) != 1 {
		return nil, &lrerr.MalformedRegexError{Pattern: pattern, Reason: "malformed postfix expression"}
	}

	final := stack[0]
	b.nfa.Start = final.start
	b.nfa.SetAccepting(final.end, true)
	return b.nfa, nil
}
