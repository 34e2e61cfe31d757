package automaton

import (
	"sort"
	"strings"
)

// StringSet is an unordered collection of string state names. It is used
// both as the NFA-state value carried by a subset-construction DFA state
// and as a general worklist accumulator during closure computations.
//
// The zero value is not usable; construct with NewStringSet.
type StringSet map[string]bool

// NewStringSet returns an empty StringSet.
func NewStringSet() StringSet {
	return StringSet{}
}

// StringSetOf returns a StringSet containing exactly the given elements.
func StringSetOf(elems ...string) StringSet {
	s := NewStringSet()
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add inserts element into the set. No effect if already present.
func (s StringSet) Add(element string) {
	s[element] = true
}

// AddAll inserts every element of other into s.
func (s StringSet) AddAll(other StringSet) {
	for k := range other {
		s.Add(k)
	}
}

// Has returns whether element is in the set.
func (s StringSet) Has(element string) bool {
	return s[element]
}

// Empty returns whether the set has no elements.
func (s StringSet) Empty() bool {
	return len(s) == 0
}

// Any returns whether any element of the set satisfies predicate.
func (s StringSet) Any(predicate func(string) bool) bool {
	for k := range s {
		if predicate(k) {
			return true
		}
	}
	return false
}

// Elements returns the set's members in no particular order.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for k := range s {
		elems = append(elems, k)
	}
	return elems
}

// Sorted returns the set's members sorted ascending, giving a canonical
// traversal order independent of map iteration.
func (s StringSet) Sorted() []string {
	elems := s.Elements()
	sort.Strings(elems)
	return elems
}

// Key returns a canonical string encoding of the set, suitable for use as a
// map key when the set itself must be compared for equality: the elements
// are sorted on every call, so the key does not depend on insertion order.
func (s StringSet) Key() string {
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(strings.Join(s.Sorted(), ","))
	sb.WriteByte('}')
	return sb.String()
}

// Equal reports whether s and other contain the same elements.
func (s StringSet) Equal(other StringSet) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}
