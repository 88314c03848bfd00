package entail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntails(t *testing.T) {
	t.Parallel()

	a, b := NewSymbol("A"), NewSymbol("B")
	impl, err := NewImplication(a, b)
	require.NoError(t, err)
	kb, err := NewAnd(a, impl)
	require.NoError(t, err)

	ok, err := Entails(kb, b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Entails(a, b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseMatchesConstructors(t *testing.T) {
	t.Parallel()

	parsed := MustParse("A & !B")
	not, err := NewNot(NewSymbol("B"))
	require.NoError(t, err)
	built, err := NewAnd(NewSymbol("A"), not)
	require.NoError(t, err)

	assert.True(t, Equal(parsed, built))
	assert.Equal(t, Hash(parsed), Hash(built))
	assert.Equal(t, "A ∧ (¬B)", parsed.Formula())
}

func TestValidateRejectsNonSentences(t *testing.T) {
	t.Parallel()

	_, err := Validate("not-an-expression")
	assert.ErrorIs(t, err, ErrNotSentence)

	_, err = NewNot(nil)
	assert.ErrorIs(t, err, ErrNotSentence)
}

func TestEvaluateMissingSymbol(t *testing.T) {
	t.Parallel()

	_, err := NewSymbol("A").Evaluate(Model{})
	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "A", lerr.Name)
	assert.ErrorIs(t, err, ErrNotInModel)
}
