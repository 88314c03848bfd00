package kb

import (
	"sync"
	"time"

	"github.com/gnolang/entail/internal/logic"
)

type cacheKey struct {
	knowledge uint64
	query     uint64
}

// CacheEntry is a remembered verdict for one knowledge/query pair.
type CacheEntry struct {
	Knowledge      logic.Sentence
	Query          logic.Sentence
	Verdict        Verdict
	Counterexample logic.Model
	CreatedAt      time.Time
	LastAccessed   time.Time
}

// Cache remembers verdicts across runs so that re-checking an edited
// knowledge base only repeats the queries whose inputs changed.
// Entries are matched structurally, so reformatting a formula still hits.
// A Cache is safe for concurrent use.
type Cache struct {
	entries map[cacheKey][]CacheEntry
	mutex   sync.Mutex
	maxAge  time.Duration

	hits   int
	misses int
}

func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey][]CacheEntry)}
}

// SetMaxAge expires entries older than d. Zero keeps entries forever.
func (c *Cache) SetMaxAge(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.maxAge = d
}

func keyOf(knowledge, query logic.Sentence) cacheKey {
	return cacheKey{knowledge: logic.Hash(knowledge), query: logic.Hash(query)}
}

// Get returns the cached verdict for the pair, if any.
func (c *Cache) Get(knowledge, query logic.Sentence) (CacheEntry, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	key := keyOf(knowledge, query)
	bucket := c.entries[key]
	for i, entry := range bucket {
		if !logic.Equal(entry.Knowledge, knowledge) || !logic.Equal(entry.Query, query) {
			continue
		}
		if c.isEntryExpired(entry) {
			c.entries[key] = append(bucket[:i:i], bucket[i+1:]...)
			break
		}
		entry.LastAccessed = time.Now()
		bucket[i] = entry
		c.hits++
		return entry, true
	}
	c.misses++
	return CacheEntry{}, false
}

// Set records the verdict for the pair, replacing any previous entry.
func (c *Cache) Set(knowledge, query logic.Sentence, res Result) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	entry := CacheEntry{
		Knowledge:      knowledge,
		Query:          query,
		Verdict:        res.Verdict,
		Counterexample: res.Counterexample,
		CreatedAt:      now,
		LastAccessed:   now,
	}

	key := keyOf(knowledge, query)
	bucket := c.entries[key]
	for i, old := range bucket {
		if logic.Equal(old.Knowledge, knowledge) && logic.Equal(old.Query, query) {
			bucket[i] = entry
			return
		}
	}
	c.entries[key] = append(bucket, entry)
}

func (c *Cache) isEntryExpired(entry CacheEntry) bool {
	return c.maxAge > 0 && time.Since(entry.CreatedAt) > c.maxAge
}

// Stats returns the number of lookups that hit and missed.
func (c *Cache) Stats() (hits, misses int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.hits, c.misses
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	n := 0
	for _, bucket := range c.entries {
		n += len(bucket)
	}
	return n
}

// InvalidateAll drops every entry.
func (c *Cache) InvalidateAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[cacheKey][]CacheEntry)
}
