// Package lrerr defines typed error values for the four error kinds a
// regex/grammar compiler front end can raise: malformed regular
// expressions and grammars abort construction; table conflicts accumulate
// without aborting; parse errors are fatal to the current parse only. None
// of these wrap a third-party errors library — each is a plain struct with
// an Error() method, so callers can use the standard library's errors.As
// against them.
package lrerr

import (
	"fmt"
	"strings"
)

// MalformedRegexError reports a regex that could not be parsed: an empty
// pattern, a mismatched parenthesis, an operator missing an operand, or a
// postfix expression that doesn't reduce to a single fragment.
type MalformedRegexError struct {
	Pattern string
	Reason  string
}

func (e *MalformedRegexError) Error() string {
	return fmt.Sprintf("malformed regex %q: %s", e.Pattern, e.Reason)
}

// MalformedGrammarError reports a production whose right-hand side
// references a symbol that is neither a declared terminal nor a declared
// non-terminal. Detected lazily, at the point the symbol is encountered.
type MalformedGrammarError struct {
	Symbol string
	Reason string
}

func (e *MalformedGrammarError) Error() string {
	return fmt.Sprintf("malformed grammar: symbol %q %s", e.Symbol, e.Reason)
}

// ConflictKind distinguishes the two ways two ACTION entries can disagree.
type ConflictKind int

const (
	ShiftReduceConflict ConflictKind = iota
	ReduceReduceConflict
)

// TableConflict records a single ACTION-table conflict discovered while
// building a parse table. Conflicts are collected on the table and exposed
// via an accessor rather than raised as a Go error, except under the table
// builder's strict mode, where the first TableConflict is returned as an
// error instead.
type TableConflict struct {
	Kind     ConflictKind
	State    string
	Terminal string
	Existing string
	New      string
}

func (c *TableConflict) Error() string {
	switch c.Kind {
	case ShiftReduceConflict:
		return fmt.Sprintf("Shift/Reduce conflict in state %s on %s: %s vs %s", c.State, c.Terminal, c.Existing, c.New)
	case ReduceReduceConflict:
		return fmt.Sprintf("Reduce/Reduce conflict in state %s on %s: %s vs %s", c.State, c.Terminal, c.Existing, c.New)
	default:
		return fmt.Sprintf("conflict in state %s on %s: %s vs %s", c.State, c.Terminal, c.Existing, c.New)
	}
}

// ParseError reports a fatal condition in the shift/reduce driver: no
// ACTION entry for the current state/lookahead pair, or a missing GOTO
// entry immediately after a reduce.
type ParseError struct {
	State    string
	Found    string
	Expected []string
}

func (e *ParseError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("state %s; found %s", e.State, e.Found)
	}
	return fmt.Sprintf("state %s; expected one of %s; found %s", e.State, strings.Join(e.Expected, ", "), e.Found)
}
