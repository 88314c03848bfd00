package logic

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// variant tags mixed into structural hashes
const (
	tagSymbol byte = iota + 1
	tagNot
	tagAnd
	tagOr
	tagImplication
	tagBiconditional
)

// Equal reports whether a and b are structurally identical.
// And/Or operands are compared in order.
func Equal(a, b Sentence) bool {
	switch left := a.(type) {
	case *Symbol:
		right, ok := b.(*Symbol)
		return ok && left.Name == right.Name
	case *Not:
		right, ok := b.(*Not)
		return ok && Equal(left.Operand, right.Operand)
	case *And:
		right, ok := b.(*And)
		return ok && equalSlices(left.Conjuncts, right.Conjuncts)
	case *Or:
		right, ok := b.(*Or)
		return ok && equalSlices(left.Disjuncts, right.Disjuncts)
	case *Implication:
		right, ok := b.(*Implication)
		return ok && Equal(left.Antecedent, right.Antecedent) && Equal(left.Consequent, right.Consequent)
	case *Biconditional:
		right, ok := b.(*Biconditional)
		return ok && Equal(left.Left, right.Left) && Equal(left.Right, right.Right)
	default:
		return false
	}
}

func equalSlices(a, b []Sentence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash of s. Sentences that are Equal
// always hash to the same value.
func Hash(s Sentence) uint64 {
	d := xxhash.New()
	switch x := s.(type) {
	case *Symbol:
		d.Write([]byte{tagSymbol})
		d.WriteString(x.Name)
	case *Not:
		d.Write([]byte{tagNot})
		writeHash(d, Hash(x.Operand))
	case *And:
		d.Write([]byte{tagAnd})
		writeChildren(d, x.Conjuncts)
	case *Or:
		d.Write([]byte{tagOr})
		writeChildren(d, x.Disjuncts)
	case *Implication:
		d.Write([]byte{tagImplication})
		writeHash(d, Hash(x.Antecedent))
		writeHash(d, Hash(x.Consequent))
	case *Biconditional:
		d.Write([]byte{tagBiconditional})
		writeHash(d, Hash(x.Left))
		writeHash(d, Hash(x.Right))
	}
	return d.Sum64()
}

func writeChildren(d *xxhash.Digest, ss []Sentence) {
	writeHash(d, uint64(len(ss)))
	for _, s := range ss {
		writeHash(d, Hash(s))
	}
}

func writeHash(d *xxhash.Digest, h uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], h)
	d.Write(buf[:])
}

// Set holds structurally distinct sentences in insertion order.
type Set struct {
	buckets map[uint64][]Sentence
	items   []Sentence
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{buckets: make(map[uint64][]Sentence)}
}

// Add inserts x unless an equal sentence is already present.
// It reports whether x was inserted.
func (s *Set) Add(x Sentence) bool {
	h := Hash(x)
	for _, y := range s.buckets[h] {
		if Equal(x, y) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], x)
	s.items = append(s.items, x)
	return true
}

// Contains reports whether a sentence equal to x is in the set.
func (s *Set) Contains(x Sentence) bool {
	for _, y := range s.buckets[Hash(x)] {
		if Equal(x, y) {
			return true
		}
	}
	return false
}

func (s *Set) Len() int {
	return len(s.items)
}

// Items returns the sentences in insertion order.
func (s *Set) Items() []Sentence {
	return append([]Sentence(nil), s.items...)
}
