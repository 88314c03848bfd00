package logic

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Model is a truth assignment from symbol name to value.
type Model map[string]bool

// With returns a copy of m extended with name bound to value.
// The receiver is never modified, so sibling branches of a search
// can each extend the same parent model.
func (m Model) With(name string, value bool) Model {
	next := make(Model, len(m)+1)
	maps.Copy(next, m)
	next[name] = value
	return next
}

// Clone creates a copy of the model.
func (m Model) Clone() Model {
	return maps.Clone(m)
}

// String renders the model with symbols in sorted order.
func (m Model) String() string {
	keys := slices.Sorted(maps.Keys(m))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %t", k, m[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// SymbolSet is a set of symbol names.
type SymbolSet map[string]struct{}

// NewSymbolSet creates a set holding the given names.
func NewSymbolSet(names ...string) SymbolSet {
	s := make(SymbolSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s SymbolSet) Add(name string) {
	s[name] = struct{}{}
}

func (s SymbolSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s SymbolSet) Len() int {
	return len(s)
}

// Union returns a new set holding the names of both sets.
func (s SymbolSet) Union(other SymbolSet) SymbolSet {
	result := make(SymbolSet, len(s)+len(other))
	for n := range s {
		result[n] = struct{}{}
	}
	for n := range other {
		result[n] = struct{}{}
	}
	return result
}

// Sorted returns the names in lexical order.
func (s SymbolSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
