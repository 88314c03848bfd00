package logic

import (
	"fmt"
	"strings"
)

// Sentence represents a propositional-logic sentence.
// The set of implementations is closed: Symbol, Not, And, Or,
// Implication and Biconditional.
type Sentence interface {
	isSentence()
	// Evaluate reports the truth value of the sentence in the model.
	Evaluate(m Model) (bool, error)
	// Formula renders the sentence in conventional notation.
	Formula() string
	// Symbols returns the names of every symbol the sentence references.
	Symbols() SymbolSet
	// String returns a constructor-style representation for debugging.
	String() string
}

var (
	_ Sentence = (*Symbol)(nil)
	_ Sentence = (*Not)(nil)
	_ Sentence = (*And)(nil)
	_ Sentence = (*Or)(nil)
	_ Sentence = (*Implication)(nil)
	_ Sentence = (*Biconditional)(nil)
)

// Validate checks that v is a usable Sentence. Nil interfaces and typed nil
// pointers are rejected with ErrNotSentence, as is any non-Sentence value.
func Validate(v any) (Sentence, error) {
	s, ok := v.(Sentence)
	if !ok || isNilSentence(s) {
		return nil, ErrNotSentence
	}
	return s, nil
}

func isNilSentence(s Sentence) bool {
	switch x := s.(type) {
	case nil:
		return true
	case *Symbol:
		return x == nil
	case *Not:
		return x == nil
	case *And:
		return x == nil
	case *Or:
		return x == nil
	case *Implication:
		return x == nil
	case *Biconditional:
		return x == nil
	default:
		return false
	}
}

// Symbol is an atomic proposition.
type Symbol struct {
	Name string
}

// NewSymbol creates a symbol with the given name.
func NewSymbol(name string) *Symbol {
	return &Symbol{Name: name}
}

func (*Symbol) isSentence() {}

func (s *Symbol) Evaluate(m Model) (bool, error) {
	v, ok := m[s.Name]
	if !ok {
		return false, &LookupError{Name: s.Name}
	}
	return v, nil
}

func (s *Symbol) Formula() string    { return s.Name }
func (s *Symbol) Symbols() SymbolSet { return NewSymbolSet(s.Name) }
func (s *Symbol) String() string     { return s.Name }

// Not is the negation of its operand.
type Not struct {
	Operand Sentence
}

// NewNot creates the negation of operand.
func NewNot(operand Sentence) (*Not, error) {
	if _, err := Validate(operand); err != nil {
		return nil, fmt.Errorf("not: operand: %w", err)
	}
	return &Not{Operand: operand}, nil
}

func (*Not) isSentence() {}

func (n *Not) Evaluate(m Model) (bool, error) {
	v, err := n.Operand.Evaluate(m)
	if err != nil {
		return false, err
	}
	return !v, nil
}

func (n *Not) Formula() string {
	return "¬" + parenthesize(n.Operand.Formula())
}

func (n *Not) Symbols() SymbolSet { return n.Operand.Symbols() }
func (n *Not) String() string     { return "Not(" + n.Operand.String() + ")" }

// And is a conjunction. An empty conjunction is true.
type And struct {
	Conjuncts []Sentence
}

// NewAnd creates a conjunction of the given sentences.
func NewAnd(conjuncts ...Sentence) (*And, error) {
	if err := validateAll("and: conjunct", conjuncts); err != nil {
		return nil, err
	}
	return &And{Conjuncts: append([]Sentence(nil), conjuncts...)}, nil
}

func (*And) isSentence() {}

// Add appends a conjunct in place.
func (a *And) Add(conjunct Sentence) error {
	if _, err := Validate(conjunct); err != nil {
		return fmt.Errorf("and: add: %w", err)
	}
	a.Conjuncts = append(a.Conjuncts, conjunct)
	return nil
}

func (a *And) Evaluate(m Model) (bool, error) {
	for _, c := range a.Conjuncts {
		v, err := c.Evaluate(m)
		if err != nil {
			return false, err
		}
		if !v {
			return false, nil
		}
	}
	return true, nil
}

func (a *And) Formula() string {
	return joinFormulas(a.Conjuncts, " ∧ ")
}

func (a *And) Symbols() SymbolSet { return unionSymbols(a.Conjuncts) }
func (a *And) String() string     { return "And(" + joinStrings(a.Conjuncts) + ")" }

// Or is a disjunction. An empty disjunction is false.
type Or struct {
	Disjuncts []Sentence
}

// NewOr creates a disjunction of the given sentences.
func NewOr(disjuncts ...Sentence) (*Or, error) {
	if err := validateAll("or: disjunct", disjuncts); err != nil {
		return nil, err
	}
	return &Or{Disjuncts: append([]Sentence(nil), disjuncts...)}, nil
}

func (*Or) isSentence() {}

// Add appends a disjunct in place.
func (o *Or) Add(disjunct Sentence) error {
	if _, err := Validate(disjunct); err != nil {
		return fmt.Errorf("or: add: %w", err)
	}
	o.Disjuncts = append(o.Disjuncts, disjunct)
	return nil
}

func (o *Or) Evaluate(m Model) (bool, error) {
	for _, d := range o.Disjuncts {
		v, err := d.Evaluate(m)
		if err != nil {
			return false, err
		}
		if v {
			return true, nil
		}
	}
	return false, nil
}

func (o *Or) Formula() string {
	return joinFormulas(o.Disjuncts, " ∨ ")
}

func (o *Or) Symbols() SymbolSet { return unionSymbols(o.Disjuncts) }
func (o *Or) String() string     { return "Or(" + joinStrings(o.Disjuncts) + ")" }

// Implication is true unless the antecedent holds and the consequent does not.
type Implication struct {
	Antecedent Sentence
	Consequent Sentence
}

// NewImplication creates antecedent => consequent.
func NewImplication(antecedent, consequent Sentence) (*Implication, error) {
	if _, err := Validate(antecedent); err != nil {
		return nil, fmt.Errorf("implication: antecedent: %w", err)
	}
	if _, err := Validate(consequent); err != nil {
		return nil, fmt.Errorf("implication: consequent: %w", err)
	}
	return &Implication{Antecedent: antecedent, Consequent: consequent}, nil
}

func (*Implication) isSentence() {}

func (i *Implication) Evaluate(m Model) (bool, error) {
	a, err := i.Antecedent.Evaluate(m)
	if err != nil {
		return false, err
	}
	if !a {
		return true, nil
	}
	return i.Consequent.Evaluate(m)
}

func (i *Implication) Formula() string {
	return parenthesize(i.Antecedent.Formula()) + " => " + parenthesize(i.Consequent.Formula())
}

func (i *Implication) Symbols() SymbolSet {
	return i.Antecedent.Symbols().Union(i.Consequent.Symbols())
}

func (i *Implication) String() string {
	return "Implication(" + i.Antecedent.String() + ", " + i.Consequent.String() + ")"
}

// Biconditional is true when both sides have the same truth value.
type Biconditional struct {
	Left  Sentence
	Right Sentence
}

// NewBiconditional creates left <=> right.
func NewBiconditional(left, right Sentence) (*Biconditional, error) {
	if _, err := Validate(left); err != nil {
		return nil, fmt.Errorf("biconditional: left: %w", err)
	}
	if _, err := Validate(right); err != nil {
		return nil, fmt.Errorf("biconditional: right: %w", err)
	}
	return &Biconditional{Left: left, Right: right}, nil
}

func (*Biconditional) isSentence() {}

func (b *Biconditional) Evaluate(m Model) (bool, error) {
	l, err := b.Left.Evaluate(m)
	if err != nil {
		return false, err
	}
	r, err := b.Right.Evaluate(m)
	if err != nil {
		return false, err
	}
	return l == r, nil
}

func (b *Biconditional) Formula() string {
	return parenthesize(b.Left.Formula()) + " <=> " + parenthesize(b.Right.Formula())
}

func (b *Biconditional) Symbols() SymbolSet {
	return b.Left.Symbols().Union(b.Right.Symbols())
}

func (b *Biconditional) String() string {
	return "Biconditional(" + b.Left.String() + ", " + b.Right.String() + ")"
}

// Must panics if err is non-nil and returns s otherwise.
// It is intended for sentences built from known-good literals.
func Must[T Sentence](s T, err error) T {
	if err != nil {
		panic(err)
	}
	return s
}

func validateAll(what string, ss []Sentence) error {
	for i, s := range ss {
		if _, err := Validate(s); err != nil {
			return fmt.Errorf("%s %d: %w", what, i, err)
		}
	}
	return nil
}

func unionSymbols(ss []Sentence) SymbolSet {
	result := NewSymbolSet()
	for _, s := range ss {
		result = result.Union(s.Symbols())
	}
	return result
}

func joinStrings(ss []Sentence) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
