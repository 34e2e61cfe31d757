// Package regex compiles a regular expression into a minimal-alphabet DFA:
// shunting-yard preprocessing (explicit concatenation insertion and
// infix-to-postfix conversion), Thompson construction of an NFA from the
// postfix stream, then subset construction into a deterministic automaton.
// Built atop automaton.NFA/DFA rather than raw pointer-chasing states.
package regex

import "github.com/hallowpine/lrgen/automaton"

// Compile builds the DFA recognizing pattern, using alphabet as the set of
// input symbols subset construction considers (excluding ε). Any character
// appearing in pattern as a literal operand but absent from alphabet simply
// never labels a transition in the resulting DFA, so it can never be
// matched; callers normally derive alphabet from every distinct operand in
// their pattern set.
func Compile(pattern string, alphabet automaton.StringSet) (*automaton.DFA, error) {
	postfix, err := Postfix(pattern)
	if err != nil {
		return nil, err
	}
	nfa, err := BuildNFA(pattern, postfix)
	if err != nil {
		return nil, err
	}
	dfa := nfa.ToDFA(alphabet)
	dfa.NumberStates()
	return dfa, nil
}
