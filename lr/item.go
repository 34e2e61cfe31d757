// Package lr builds the canonical LR(1) collection for a grammar, merges it
// into an LALR(1) collection by kernel equivalence, and fills an
// ACTION/GOTO table with conflict detection; the shift/reduce driver over
// that table is in package parse. An item holds a single dot index into
// a grammar.Production rather than a split Left/Right symbol slice, since
// grammar.Production already holds the right-hand side as a slice.
package lr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hallowpine/lrgen/grammar"
)

// Item is an LR(1) item: a production, a dot position 0 <= Dot <=
// len(Prod.Right), and a one-terminal lookahead. Equality and ordering are
// structural, via Key.
type Item struct {
	Prod      grammar.Production
	Dot       int
	Lookahead grammar.Symbol
}

// AtEnd reports whether the dot has reached the end of the production's
// right-hand side.
func (it Item) AtEnd() bool {
	return it.Dot >= len(it.Prod.Right)
}

// NextSymbol returns the symbol immediately after the dot and true, or the
// zero Symbol and false if the dot is at the end.
func (it Item) NextSymbol() (grammar.Symbol, bool) {
	if it.AtEnd() {
		return grammar.Symbol{}, false
	}
	return it.Prod.Right[it.Dot], true
}

// Advanced returns a copy of it with the dot moved one position right.
// Panics if already at the end; callers only call this after confirming
// NextSymbol succeeded.
func (it Item) Advanced() Item {
	if it.AtEnd() {
		panic("lr: cannot advance an item whose dot is already at the end")
	}
	return Item{Prod: it.Prod, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// CoreKey returns a canonical string encoding of (Prod, Dot), ignoring the
// lookahead. Two items with the same CoreKey belong to the same kernel and
// are candidates for LALR(1) merging.
func (it Item) CoreKey() string {
	var sb strings.Builder
	sb.WriteString(it.Prod.Left.Name)
	sb.WriteString(" ->")
	for i, sym := range it.Prod.Right {
		if i == it.Dot {
			sb.WriteString(" .")
		}
		sb.WriteByte(' ')
		sb.WriteString(sym.Name)
	}
	if it.Dot == len(it.Prod.Right) {
		sb.WriteString(" .")
	}
	return sb.String()
}

// Key returns a canonical string encoding of the full item, including the
// lookahead. Used as the element key within an ItemSet.
func (it Item) Key() string {
	return it.CoreKey() + ", " + it.Lookahead.Name
}

func (it Item) String() string {
	return it.Key()
}

// ItemSet is an unordered collection of LR(1) items, keyed by Item.Key for
// set-equality and deduplication.
type ItemSet map[string]Item

// NewItemSet returns an empty ItemSet.
func NewItemSet() ItemSet {
	return ItemSet{}
}

// Add inserts an item into the set. No-op if an item with the same Key is
// already present.
func (s ItemSet) Add(it Item) {
	s[it.Key()] = it
}

// Has reports whether an item with it's Key is already in the set.
func (s ItemSet) Has(it Item) bool {
	_, ok := s[it.Key()]
	return ok
}

// Items returns the set's members sorted by Key, giving a canonical
// traversal order independent of map iteration.
func (s ItemSet) Items() []Item {
	out := make([]Item, 0, len(s))
	for _, it := range s {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// SetKey returns a canonical encoding of the whole set, suitable as a map
// key for set-equality comparisons (the canonical collection's states are
// identified by set-equality of their item sets).
func (s ItemSet) SetKey() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// CoreKey returns a canonical encoding of the set's kernel (every item's
// CoreKey, deduplicated and sorted), used to identify LR(1) states that
// collapse to the same LALR(1) state.
func (s ItemSet) CoreKey() string {
	seen := map[string]bool{}
	for _, it := range s {
		seen[it.CoreKey()] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

func (s ItemSet) String() string {
	items := s.Items()
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("[%s]", it.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
