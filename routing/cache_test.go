package routing

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCache_Lookup(t *testing.T) {
	g := NewGraph[string](".")
	g.Subscribe("a.*", "single")
	cache := NewCache(g)

	first := cache.Lookup("a.b")
	assert.Len(t, first, 1)
	assert.Equal(t, 1, cache.Len())

	// New subscriptions aren't visible until reset.
	g.Subscribe("a.b", "exact")
	assert.Len(t, cache.Lookup("a.b"), 1, "Cached result should be reused")
	cache.Reset()
	assert.Equal(t, 0, cache.Len())
	assert.Len(t, cache.Lookup("a.b"), 2, "Reset should allow new nodes to be found")
}

func TestCache_Lookup_EmptyResultCached(t *testing.T) {
	g := NewGraph[string](".")
	cache := NewCache(g)
	assert.Empty(t, cache.Lookup("nothing"))
	assert.Equal(t, 1, cache.Len(), "Empty results should also be remembered")
}

func TestCache_Lookup_ReflectsRemoval(t *testing.T) {
	g := NewGraph[string](".")
	list, a := g.Subscribe("a.#", "a")
	g.Subscribe("a.#", "b")
	cache := NewCache(g)

	lists := cache.Lookup("a.b.c")
	assert.Equal(t, []string{"a", "b"}, lists[0].Values())

	list.Remove(a)
	lists = cache.Lookup("a.b.c")
	assert.Same(t, list, lists[0], "Cache should reference the live list")
	assert.Equal(t, []string{"b"}, lists[0].Values(), "Removal should be visible without a reset")
}
