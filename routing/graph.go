package routing

import "strings"

const (
	DefaultSeparator = "."
	WildcardSingle   = "*" // WildcardSingle matches exactly one topic segment.
	WildcardMulti    = "#" // WildcardMulti matches zero or more topic segments.
)

// NodeID identifies a [Node] within a single [Graph].
// IDs are assigned in creation order and never reused.
type NodeID uint64

// Node is one segment position in a [Graph].
type Node[T any] struct {
	segment  string
	id       NodeID
	children map[string]*Node[T]
	list     *List[T]
}

// ID returns the identifier assigned to this [Node] when it was created.
func (n *Node[T]) ID() NodeID {
	return n.id
}

// Segment returns the literal segment this [Node] was reached by, which is empty for the root.
func (n *Node[T]) Segment() string {
	return n.segment
}

// List returns the [List] of entries terminating at this [Node], or nil if nothing has ever been subscribed here.
func (n *Node[T]) List() *List[T] {
	return n.list
}

// Child returns the child reached by segment, if present.
func (n *Node[T]) Child(segment string) (*Node[T], bool) {
	child, ok := n.children[segment]
	return child, ok
}

// Graph is a trie of topic segments that maps patterns to lists of entries.
//
// Note that a Graph is not concurrency safe.
type Graph[T any] struct {
	sep    string
	root   *Node[T]
	nextID NodeID
}

// NewGraph creates an empty [Graph] using the given separator.
// [DefaultSeparator] is used if sep is empty.
func NewGraph[T any](sep string) *Graph[T] {
	if len(sep) == 0 {
		sep = DefaultSeparator
	}
	g := &Graph[T]{sep: sep}
	g.root = g.newNode("")
	return g
}

func (g *Graph[T]) newNode(segment string) *Node[T] {
	n := &Node[T]{
		segment:  segment,
		id:       g.nextID,
		children: map[string]*Node[T]{},
	}
	g.nextID++
	return n
}

// Separator returns the string used by [Graph.Split] and [Graph.Join].
func (g *Graph[T]) Separator() string {
	return g.sep
}

// Root returns the node for the empty prefix, which every path starts from.
func (g *Graph[T]) Root() *Node[T] {
	return g.root
}

// NodeCount returns the number of nodes created in this [Graph], including the root.
func (g *Graph[T]) NodeCount() int {
	return int(g.nextID)
}

// Split breaks a topic or pattern into segments with the [Graph] separator.
func (g *Graph[T]) Split(topic string) []string {
	return strings.Split(topic, g.sep)
}

// Join is the inverse of [Graph.Split].
func (g *Graph[T]) Join(segments []string) string {
	return strings.Join(segments, g.sep)
}

// EnsurePath walks the graph from the root along segments, creating any missing nodes, and returns the terminal [Node].
func (g *Graph[T]) EnsurePath(segments []string) *Node[T] {
	cursor := g.root
	for _, seg := range segments {
		child, ok := cursor.children[seg]
		if !ok {
			child = g.newNode(seg)
			cursor.children[seg] = child
		}
		cursor = child
	}
	return cursor
}

// Subscribe appends val to the [List] at the node for pattern, creating the path and list as needed.
// The returned [List] and [Entry] may be used to remove the value later.
func (g *Graph[T]) Subscribe(pattern string, val T) (*List[T], *Entry[T]) {
	node := g.EnsurePath(g.Split(pattern))
	if node.list == nil {
		node.list = new(List[T])
	}
	return node.list, node.list.Append(val)
}

// Match splits topic and returns the result of [Match] against this [Graph].
func (g *Graph[T]) Match(topic string) []*List[T] {
	return Match(g, g.Split(topic))
}
