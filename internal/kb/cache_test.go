package kb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnolang/entail/internal/logic"
)

func TestCache(t *testing.T) {
	t.Parallel()

	cache := NewCache()
	knowledge := logic.MustParse("A & (A => B)")
	query := logic.MustParse("B")

	t.Run("NotFound", func(t *testing.T) {
		_, found := cache.Get(knowledge, query)
		assert.False(t, found)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		cache.Set(knowledge, query, Result{Verdict: Entailed})

		// A structurally equal sentence parsed from different text hits.
		entry, found := cache.Get(logic.MustParse("A ∧ (A -> B)"), logic.MustParse("(B)"))
		require.True(t, found)
		assert.Equal(t, Entailed, entry.Verdict)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("Replace", func(t *testing.T) {
		cache.Set(knowledge, query, Result{Verdict: Unknown})
		entry, found := cache.Get(knowledge, query)
		require.True(t, found)
		assert.Equal(t, Unknown, entry.Verdict)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("InvalidateAll", func(t *testing.T) {
		cache.InvalidateAll()
		_, found := cache.Get(knowledge, query)
		assert.False(t, found)
		assert.Equal(t, 0, cache.Len())
	})
}

func TestCacheExpiry(t *testing.T) {
	t.Parallel()

	cache := NewCache()
	cache.SetMaxAge(time.Nanosecond)

	k, q := logic.MustParse("A"), logic.MustParse("A")
	cache.Set(k, q, Result{Verdict: Entailed})
	time.Sleep(time.Millisecond)

	_, found := cache.Get(k, q)
	assert.False(t, found)
	assert.Equal(t, 0, cache.Len())
}

func TestRunUsesCache(t *testing.T) {
	t.Parallel()

	prog, err := Compile(&Config{Name: "mp", Knowledge: []string{"A", "A => B"}, Queries: []string{"B", "C"}})
	require.NoError(t, err)

	cache := NewCache()
	first, err := Run(context.Background(), zap.NewNop(), prog, Options{Workers: 1, Cache: cache})
	require.NoError(t, err)

	hits, misses := cache.Stats()
	assert.Equal(t, 0, hits)
	assert.Equal(t, 2, misses)

	second, err := Run(context.Background(), zap.NewNop(), prog, Options{Workers: 1, Cache: cache})
	require.NoError(t, err)

	hits, _ = cache.Stats()
	assert.Equal(t, 2, hits)
	assert.Equal(t, first.Results, second.Results)
	assert.NotEqual(t, first.ID, second.ID)
}
