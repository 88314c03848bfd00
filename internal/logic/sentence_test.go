package logic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	symA = NewSymbol("A")
	symB = NewSymbol("B")
	symC = NewSymbol("C")
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sentence Sentence
		model    Model
		expected bool
	}{
		{"symbol true", symA, Model{"A": true}, true},
		{"symbol false", symA, Model{"A": false}, false},
		{"not", Must(NewNot(symA)), Model{"A": true}, false},
		{"and all true", Must(NewAnd(symA, symB)), Model{"A": true, "B": true}, true},
		{"and one false", Must(NewAnd(symA, symB)), Model{"A": true, "B": false}, false},
		{"empty and", Must(NewAnd()), Model{}, true},
		{"or one true", Must(NewOr(symA, symB)), Model{"A": false, "B": true}, true},
		{"or all false", Must(NewOr(symA, symB)), Model{"A": false, "B": false}, false},
		{"empty or", Must(NewOr()), Model{"A": true}, false},
		{"implication false premise", Must(NewImplication(symA, symB)), Model{"A": false, "B": false}, true},
		{"implication broken", Must(NewImplication(symA, symB)), Model{"A": true, "B": false}, false},
		{"implication holds", Must(NewImplication(symA, symB)), Model{"A": true, "B": true}, true},
		{"biconditional both false", Must(NewBiconditional(symA, symB)), Model{"A": false, "B": false}, true},
		{"biconditional differ", Must(NewBiconditional(symA, symB)), Model{"A": true, "B": false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.sentence.Evaluate(tt.model)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluateIgnoresUnrelatedSymbols(t *testing.T) {
	t.Parallel()

	s := Must(NewImplication(symA, Must(NewOr(symB, Must(NewNot(symA))))))
	base := Model{"A": true, "B": false}

	want, err := s.Evaluate(base)
	require.NoError(t, err)

	got, err := s.Evaluate(base.With("Z", true).With("Y", false))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEvaluateMissingSymbol(t *testing.T) {
	t.Parallel()

	s := Must(NewAnd(symA, symB))
	_, err := s.Evaluate(Model{"A": true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotInModel))
	assert.EqualError(t, err, "variable B not in model")

	var lookup *LookupError
	require.ErrorAs(t, err, &lookup)
	assert.Equal(t, "B", lookup.Name)
}

func TestEmptyConnectivesIgnoreModel(t *testing.T) {
	t.Parallel()

	for _, m := range []Model{{}, {"A": true}, {"A": false, "B": true}} {
		v, err := Must(NewAnd()).Evaluate(m)
		require.NoError(t, err)
		assert.True(t, v)

		v, err = Must(NewOr()).Evaluate(m)
		require.NoError(t, err)
		assert.False(t, v)
	}
}

func TestConstructorsRejectNonSentences(t *testing.T) {
	t.Parallel()

	var nilSymbol *Symbol
	var nilAnd *And

	tests := []struct {
		name  string
		build func() error
	}{
		{"not nil", func() error { _, err := NewNot(nil); return err }},
		{"not typed nil", func() error { _, err := NewNot(nilSymbol); return err }},
		{"and", func() error { _, err := NewAnd(symA, nil); return err }},
		{"or", func() error { _, err := NewOr(nilAnd); return err }},
		{"implication antecedent", func() error { _, err := NewImplication(nil, symB); return err }},
		{"implication consequent", func() error { _, err := NewImplication(symA, nil); return err }},
		{"biconditional", func() error { _, err := NewBiconditional(symA, nilSymbol); return err }},
		{"and add", func() error { return Must(NewAnd(symA)).Add(nil) }},
		{"or add", func() error { return Must(NewOr()).Add(nilSymbol) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotSentence)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	_, err := Validate("not-an-expression")
	assert.ErrorIs(t, err, ErrNotSentence)

	_, err = Validate(42)
	assert.ErrorIs(t, err, ErrNotSentence)

	s, err := Validate(symA)
	require.NoError(t, err)
	assert.Same(t, symA, s)
}

func TestAdd(t *testing.T) {
	t.Parallel()

	and := Must(NewAnd(symA))
	require.NoError(t, and.Add(symB))
	assert.Len(t, and.Conjuncts, 2)
	assert.Equal(t, "A ∧ B", and.Formula())

	v, err := and.Evaluate(Model{"A": true, "B": false})
	require.NoError(t, err)
	assert.False(t, v)

	or := Must(NewOr())
	require.NoError(t, or.Add(symC))
	assert.Equal(t, "C", or.Formula())
}

func TestConstructorCopiesOperands(t *testing.T) {
	t.Parallel()

	operands := []Sentence{symA, symB}
	and := Must(NewAnd(operands...))
	operands[0] = symC
	assert.Equal(t, "A ∧ B", and.Formula())
}

func TestSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sentence Sentence
		expected []string
	}{
		{"symbol", symA, []string{"A"}},
		{"implication", Must(NewImplication(symA, symB)), []string{"A", "B"}},
		{"nested", Must(NewAnd(symA, Must(NewNot(Must(NewBiconditional(symB, symC)))))), []string{"A", "B", "C"}},
		{"duplicates", Must(NewOr(symA, symA, Must(NewNot(symA)))), []string{"A"}},
		{"empty and", Must(NewAnd()), []string{}},
		{"empty or", Must(NewOr()), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.sentence.Symbols().Sorted())
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	s := Must(NewAnd(symA, Must(NewImplication(Must(NewNot(symB)), Must(NewBiconditional(symA, Must(NewOr(symC))))))))
	assert.Equal(t, "And(A, Implication(Not(B), Biconditional(A, Or(C))))", s.String())
}
