package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormula(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sentence Sentence
		expected string
	}{
		{"symbol", symA, "A"},
		{"not", Must(NewNot(symA)), "¬A"},
		{"double not", Must(NewNot(Must(NewNot(symA)))), "¬(¬A)"},
		{"and", Must(NewAnd(symA, symB)), "A ∧ B"},
		{"or", Must(NewOr(symA, symB, symC)), "A ∨ B ∨ C"},
		{"single and", Must(NewAnd(symA)), "A"},
		{"single or of compound", Must(NewOr(Must(NewAnd(symA, symB)))), "A ∧ B"},
		{"empty and", Must(NewAnd()), ""},
		{"not of and", Must(NewNot(Must(NewAnd(symA, symB)))), "¬(A ∧ B)"},
		{"and of or", Must(NewAnd(Must(NewOr(symA, symB)), symC)), "(A ∨ B) ∧ C"},
		{"and of not", Must(NewAnd(Must(NewNot(symA)), symB)), "(¬A) ∧ B"},
		{"implication", Must(NewImplication(symA, symB)), "A => B"},
		{"implication of and", Must(NewImplication(Must(NewAnd(symA, symB)), symC)), "(A ∧ B) => C"},
		{"biconditional", Must(NewBiconditional(symA, Must(NewNot(symB)))), "A <=> (¬B)"},
		{"nested implication", Must(NewImplication(symA, Must(NewImplication(symB, symC)))), "A => (B => C)"},
		{"non alphabetic symbol", Must(NewNot(NewSymbol("A1"))), "¬(A1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.sentence.Formula())
		})
	}
}

func TestParenthesize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"A", "A"},
		{"AKnight", "AKnight"},
		{"A ∧ B", "(A ∧ B)"},
		{"(A ∧ B)", "(A ∧ B)"},
		{"(A) ∧ (B)", "((A) ∧ (B))"},
		{"((A))", "((A))"},
		{"¬A", "(¬A)"},
		{"A1", "(A1)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, parenthesize(tt.input))
		})
	}
}

func TestBalanced(t *testing.T) {
	t.Parallel()

	assert.True(t, balanced(""))
	assert.True(t, balanced("(a)(b)"))
	assert.False(t, balanced(")("))
	assert.False(t, balanced("(()"))
}
