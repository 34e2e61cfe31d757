package lr

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"

	"github.com/hallowpine/lrgen/grammar"
	"github.com/hallowpine/lrgen/lrerr"
)

// Table is a built ACTION/GOTO table over an LALR(1) collection. State
// indices match LALRCollection's.
type Table struct {
	action    []map[string]Action
	gotoTable []map[string]int
	Initial   int
	AugStart  string
	conflicts []*lrerr.TableConflict
	terms     []string
	nonTerms  []string
}

// Options configures table construction.
type Options struct {
	strict bool
}

// Option mutates table-construction Options.
type Option func(*Options)

// WithStrictConflicts causes Build to return the first detected
// TableConflict as an error instead of accumulating it and keeping the
// first-writer-wins entry. First-writer-wins with accumulated diagnostics
// remains the default.
func WithStrictConflicts() Option {
	return func(o *Options) { o.strict = true }
}

// Action returns the ACTION-table entry for (state, terminal). The zero
// Action (Type Error) is returned if none is set.
func (t *Table) Action(state int, terminal string) Action {
	if state < 0 || state >= len(t.action) {
		return Action{}
	}
	return t.action[state][terminal]
}

// Goto returns the GOTO-table entry for (state, nonTerminal), and whether
// one is set.
func (t *Table) Goto(state int, nonTerminal string) (int, bool) {
	if state < 0 || state >= len(t.gotoTable) {
		return 0, false
	}
	s, ok := t.gotoTable[state][nonTerminal]
	return s, ok
}

// ExpectedTerminals returns, sorted, every terminal for which ACTION[state]
// has an entry. Used to build syntax-error "expected one of" diagnostics.
func (t *Table) ExpectedTerminals(state int) []string {
	if state < 0 || state >= len(t.action) {
		return nil
	}
	out := make([]string, 0, len(t.action[state]))
	for term := range t.action[state] {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

// Conflicts returns every conflict recorded during construction, in
// detection order. Empty (not nil is not guaranteed) when the grammar is
// conflict-free.
func (t *Table) Conflicts() []*lrerr.TableConflict {
	return t.conflicts
}

// NumStates returns the number of LALR(1) states in the table.
func (t *Table) NumStates() int {
	return len(t.action)
}

// Build constructs the LALR(1) ACTION/GOTO table for g: the canonical
// LR(1) collection, merged by kernel equivalence, then filled state by
// state. Under WithStrictConflicts, the first conflict found aborts the
// build and is returned as an error; otherwise conflicts are collected
// onto the returned table and the build always succeeds once the grammar
// itself validates.
func Build(g *grammar.Grammar, opts ...Option) (*Table, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	canonical := Collection0(g)
	lalr := MergeLALR1(canonical)

	t := &Table{
		Initial:  lalr.Initial,
		AugStart: lalr.AugStart,
	}
	for range lalr.States {
		t.action = append(t.action, map[string]Action{})
		t.gotoTable = append(t.gotoTable, map[string]int{})
	}

	termSet := map[string]bool{}
	nonTermSet := map[string]bool{}
	for _, sym := range g.Terminals() {
		termSet[sym.Name] = true
	}
	for _, sym := range g.NonTerminals() {
		nonTermSet[sym.Name] = true
	}
	nonTermSet[lalr.AugStart] = true
	for name := range termSet {
		t.terms = append(t.terms, name)
	}
	for name := range nonTermSet {
		t.nonTerms = append(t.nonTerms, name)
	}
	sort.Strings(t.terms)
	sort.Strings(t.nonTerms)

	for s, trans := range lalr.Transitions {
		for label, target := range trans {
			if termSet[label] || label == grammar.EndMarker.Name {
				t.action[s][label] = Action{Type: Shift, ShiftState: target}
			} else {
				t.gotoTable[s][label] = target
			}
		}
	}

	for s, state := range lalr.States {
		for _, it := range state.Items() {
			if !it.AtEnd() {
				continue
			}
			if it.Prod.Left.Name == lalr.AugStart {
				if it.Lookahead.Name == grammar.EndMarker.Name {
					if err := t.set(s, grammar.EndMarker.Name, Action{Type: Accept}, &o); err != nil {
						return nil, err
					}
				}
				continue
			}
			act := Action{Type: Reduce, Reduction: it.Prod}
			if err := t.set(s, it.Lookahead.Name, act, &o); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// Collection0 builds the canonical LR(1) collection for g. Exported as a
// separate step so callers (and tests) can inspect the pre-merge collection
// directly.
func Collection0(g *grammar.Grammar) *Collection {
	return buildCollection(g)
}

// set writes an ACTION entry, detecting shift/reduce and reduce/reduce
// conflicts against any existing entry. First-writer-wins: an existing
// entry is never overwritten.
func (t *Table) set(state int, terminal string, newAction Action, o *Options) error {
	existing, has := t.action[state][terminal]
	if !has {
		t.action[state][terminal] = newAction
		return nil
	}
	if existing.Equal(newAction) {
		return nil
	}

	var kind lrerr.ConflictKind
	switch {
	case existing.Type == Shift && newAction.Type == Reduce,
		existing.Type == Reduce && newAction.Type == Shift:
		kind = lrerr.ShiftReduceConflict
	case existing.Type == Reduce && newAction.Type == Reduce:
		kind = lrerr.ReduceReduceConflict
	default:
		kind = lrerr.ShiftReduceConflict
	}

	conflict := &lrerr.TableConflict{
		Kind:     kind,
		State:    fmt.Sprintf("%d", state),
		Terminal: terminal,
		Existing: existing.String(),
		New:      newAction.String(),
	}

	if o.strict {
		return conflict
	}
	t.conflicts = append(t.conflicts, conflict)
	return nil
}

// String renders the table as a fixed-width grid (state | ACTION columns |
// GOTO columns), via rosed's table layout helper.
func (t *Table) String() string {
	allTerms := append([]string(nil), t.terms...)
	allTerms = append(allTerms, grammar.EndMarker.Name)

	headers := []string{"S", "|"}
	for _, term := range allTerms {
		headers = append(headers, "A:"+term)
	}
	headers = append(headers, "|")
	for _, nt := range t.nonTerms {
		headers = append(headers, "G:"+nt)
	}

	data := [][]string{headers}
	for s := 0; s < len(t.action); s++ {
		row := []string{fmt.Sprintf("%d", s), "|"}
		for _, term := range allTerms {
			act := t.Action(s, term)
			cell := ""
			switch act.Type {
			case Accept:
				cell = "acc"
			case Shift:
				cell = fmt.Sprintf("s%d", act.ShiftState)
			case Reduce:
				cell = fmt.Sprintf("r %s", act.Reduction.String())
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range t.nonTerms {
			cell := ""
			if target, ok := t.Goto(s, nt); ok {
				cell = fmt.Sprintf("%d", target)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
