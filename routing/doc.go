/*
Package routing provides the topic routing graph used by the topicbus, along with the matching algorithm and a per-topic match cache.

# Graph

A [Graph] is a trie of topic segments.
Each [Node] is reached by a literal segment, and may hold a [List] of entries when at least one pattern terminates there.
Patterns may use two reserved segments:

  - "*" ([WildcardSingle]) matches exactly one segment.
  - "#" ([WildcardMulti]) matches zero or more segments.

The wildcard tokens are stored as ordinary child keys, so there is no way to express a literal "*" or "#" segment.
An empty segment (from consecutive separators) is just a literal empty string.

# Matching

[Match] walks the graph breadth-first against a concrete topic and returns each reachable [List] exactly once, in discovery order.
Lists are identified by the [NodeID] of their owning node, which is unique within a [Graph].

	g := routing.NewGraph[string](".")
	g.Subscribe("metrics.#", "all metrics")
	g.Subscribe("#.changed", "any change")
	lists := g.Match("metrics.changed") // both lists, in BFS order

# Caching

A [Cache] memoizes [Match] results per literal topic string.
Cached results reference the same [List] values the graph owns, so removing an entry is visible through the cache without invalidation.
Adding a new pattern may create nodes that previously didn't exist, so the cache must be [Cache.Reset] when that happens.
*/
package routing
