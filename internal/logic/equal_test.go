package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualAndHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a, b  Sentence
		equal bool
	}{
		{"same symbol name", NewSymbol("A"), NewSymbol("A"), true},
		{"different symbol", symA, symB, false},
		{"deep not", Must(NewNot(NewSymbol("A"))), Must(NewNot(NewSymbol("A"))), true},
		{"and order matters", Must(NewAnd(symA, symB)), Must(NewAnd(symB, symA)), false},
		{"and vs or", Must(NewAnd(symA, symB)), Must(NewOr(symA, symB)), false},
		{"and length", Must(NewAnd(symA)), Must(NewAnd(symA, symA)), false},
		{"empty and vs empty or", Must(NewAnd()), Must(NewOr()), false},
		{"implication direction", Must(NewImplication(symA, symB)), Must(NewImplication(symB, symA)), false},
		{"implication vs biconditional", Must(NewImplication(symA, symB)), Must(NewBiconditional(symA, symB)), false},
		{
			"nested",
			Must(NewBiconditional(Must(NewOr(symA, Must(NewNot(symB)))), symC)),
			Must(NewBiconditional(Must(NewOr(NewSymbol("A"), Must(NewNot(NewSymbol("B"))))), NewSymbol("C"))),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.equal, Equal(tt.a, tt.b))
			assert.Equal(t, tt.equal, Equal(tt.b, tt.a))
			if tt.equal {
				assert.Equal(t, Hash(tt.a), Hash(tt.b))
			} else {
				assert.NotEqual(t, Hash(tt.a), Hash(tt.b))
			}
		})
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := NewSet()
	assert.True(t, s.Add(Must(NewAnd(symA, symB))))
	assert.False(t, s.Add(Must(NewAnd(NewSymbol("A"), NewSymbol("B")))))
	assert.True(t, s.Add(Must(NewAnd(symB, symA))))
	assert.True(t, s.Add(symC))

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(NewSymbol("C")))
	assert.False(t, s.Contains(symA))

	items := s.Items()
	assert.Equal(t, "A ∧ B", items[0].Formula())
	assert.Equal(t, "B ∧ A", items[1].Formula())
	assert.Equal(t, "C", items[2].Formula())
}
