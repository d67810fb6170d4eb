package routing

// Cache memoizes [Match] results per literal topic string for one [Graph].
//
// Results hold references to the graph's live [List] values rather than copies.
// Removing an entry from a List is therefore reflected in cached results, but adding a new pattern to the graph requires a [Cache.Reset].
type Cache[T any] struct {
	graph   *Graph[T]
	results map[string][]*List[T]
}

func NewCache[T any](graph *Graph[T]) *Cache[T] {
	return &Cache[T]{
		graph:   graph,
		results: map[string][]*List[T]{},
	}
}

// Lookup returns the match result for topic, computing and remembering it on first use.
// Empty results are cached too.
func (c *Cache[T]) Lookup(topic string) []*List[T] {
	if lists, ok := c.results[topic]; ok {
		return lists
	}
	lists := c.graph.Match(topic)
	c.results[topic] = lists
	return lists
}

// Reset forgets all cached results.
func (c *Cache[T]) Reset() {
	clear(c.results)
}

// Len returns the number of topics with cached results.
func (c *Cache[T]) Len() int {
	return len(c.results)
}
