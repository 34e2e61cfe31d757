package automaton

import (
	"fmt"
	"sort"
	"strings"
)

type dfaState struct {
	name      string
	accepting bool
	value     StringSet
	trans     map[string]string
}

// DFA is a deterministic finite automaton: string-named states, at most one
// outgoing transition per label per state. Each state optionally carries the
// set of NFA states it represents, populated by NFA.ToDFA and left empty for
// DFAs built by other means.
type DFA struct {
	Start  string
	states map[string]*dfaState
	order  []string
}

// NewDFA returns an empty DFA with no states.
func NewDFA() *DFA {
	return &DFA{states: map[string]*dfaState{}}
}

// AddState adds a new state. No-op if it already exists.
func (d *DFA) AddState(name string, accepting bool) {
	if _, ok := d.states[name]; ok {
		return
	}
	d.states[name] = &dfaState{name: name, accepting: accepting, trans: map[string]string{}}
	d.order = append(d.order, name)
}

// SetValue attaches the represented NFA-state set to a DFA state.
func (d *DFA) SetValue(name string, v StringSet) {
	s, ok := d.states[name]
	if !ok {
		panic(fmt.Sprintf("automaton: no such state %q", name))
	}
	s.value = v
}

// Value returns the NFA-state set represented by a DFA state.
func (d *DFA) Value(name string) StringSet {
	s, ok := d.states[name]
	if !ok {
		return nil
	}
	return s.value
}

// IsAccepting reports whether name is an accepting state. False for unknown
// states.
func (d *DFA) IsAccepting(name string) bool {
	s, ok := d.states[name]
	return ok && s.accepting
}

// AddTransition sets the (deterministic) transition from `from` on `label`
// to `to`. Overwrites any prior transition on the same label, preserving
// the invariant that a DFA has at most one target per symbol.
func (d *DFA) AddTransition(from, label, to string) {
	fs, ok := d.states[from]
	if !ok {
		panic(fmt.Sprintf("automaton: add transition from non-existent state %q", from))
	}
	if _, ok := d.states[to]; !ok {
		panic(fmt.Sprintf("automaton: add transition to non-existent state %q", to))
	}
	fs.trans[label] = to
}

// Next returns the state reached from `from` on `label`, or "" if there is
// no such transition or `from` doesn't exist.
func (d *DFA) Next(from, label string) string {
	s, ok := d.states[from]
	if !ok {
		return ""
	}
	return s.trans[label]
}

// States returns all state names in discovery order.
func (d *DFA) States() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Transitions returns the (label, to) pairs for a state, sorted by label.
func (d *DFA) Transitions(name string) []Transition {
	s, ok := d.states[name]
	if !ok {
		return nil
	}
	out := make([]Transition, 0, len(s.trans))
	for label, to := range s.trans {
		out = append(out, Transition{Label: label, To: to})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// NumberStates renames every state to a small integer string, with the
// start state guaranteed to become "0" and all others following in
// discovery (insertion) order. This gives deterministic, reproducible
// state indices regardless of map iteration order.
func (d *DFA) NumberStates() {
	if _, ok := d.states[d.Start]; !ok {
		panic("automaton: can't number states of a DFA with no start state set")
	}

	rest := make([]string, 0, len(d.order)-1)
	for _, name := range d.order {
		if name != d.Start {
			rest = append(rest, name)
		}
	}
	ordered := append([]string{d.Start}, rest...)

	mapping := make(map[string]string, len(ordered))
	for i, name := range ordered {
		mapping[name] = fmt.Sprintf("%d", i)
	}

	renamed := &DFA{states: make(map[string]*dfaState, len(d.states))}
	for _, oldName := range ordered {
		old := d.states[oldName]
		newName := mapping[oldName]
		renamed.AddState(newName, old.accepting)
		renamed.SetValue(newName, old.value)
	}
	for _, oldName := range ordered {
		old := d.states[oldName]
		newFrom := mapping[oldName]
		for label, oldTo := range old.trans {
			renamed.AddTransition(newFrom, label, mapping[oldTo])
		}
	}

	renamed.Start = mapping[d.Start]
	d.states = renamed.states
	d.order = renamed.order
	d.Start = renamed.Start
}

func (d *DFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<START: %q, STATES:", d.Start)
	for i, name := range d.order {
		sb.WriteString("\n\t")
		sb.WriteString(stateLabel(name, d.states[name].accepting))
		sb.WriteString(" [")
		trs := d.Transitions(name)
		parts := make([]string, len(trs))
		for j, t := range trs {
			parts[j] = t.String()
		}
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("]")
		if i+1 < len(d.order) {
			sb.WriteByte(',')
		}
	}
	sb.WriteByte('>')
	return sb.String()
}
