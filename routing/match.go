package routing

import "github.com/saylorsolutions/topicbus/structures/set"

type step[T any] struct {
	node *Node[T]
	pos  int
}

type visitKey struct {
	id  NodeID
	pos int
}

// Match finds every [List] in g that a pattern matching the concrete topic segments terminates at.
// Each [List] is returned at most once, even if it is reachable through multiple paths, and results are in breadth-first discovery order.
//
// A node that has a [List] is returned even if that List is currently empty, since it may be refilled by a later subscription.
func Match[T any](g *Graph[T], segments []string) []*List[T] {
	var (
		found  []*List[T]
		seen   = set.New[NodeID]()
		queued = set.New[visitKey]()
		queue  = []step[T]{{node: g.root, pos: 0}}
	)
	// A (node, position) pair that has already been queued can only rediscover what the first visit finds.
	push := func(n *Node[T], pos int) {
		if queued.Insert(visitKey{id: n.id, pos: pos}) {
			queue = append(queue, step[T]{node: n, pos: pos})
		}
	}
	queued.Add(visitKey{id: g.root.id, pos: 0})

	for head := 0; head < len(queue); head++ {
		var (
			node  = queue[head].node
			pos   = queue[head].pos
			atEnd = pos == len(segments)
		)
		if atEnd {
			if node.list != nil && seen.Insert(node.id) {
				found = append(found, node.list)
			}
		} else if child, ok := node.children[segments[pos]]; ok {
			push(child, pos+1)
		}

		if child, ok := node.children[WildcardMulti]; ok {
			for k := pos; k <= len(segments); k++ {
				push(child, k)
			}
		}

		if !atEnd {
			if child, ok := node.children[WildcardSingle]; ok {
				push(child, pos+1)
			}
		}
	}
	return found
}
