package routing

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMatch_Patterns(t *testing.T) {
	tests := map[string]struct {
		pattern string
		topic   string
		matches bool
	}{
		"Exact":                       {"a", "a", true},
		"Exact mismatch":              {"a", "b", false},
		"Exact deep":                  {"a.b.c", "a.b.c", true},
		"Exact prefix only":           {"a.b", "a.b.c", false},
		"Single trailing":             {"a.*", "a.b", true},
		"Single needs segment":        {"a.*", "a", false},
		"Single exactly one":          {"a.*", "a.b.c", false},
		"Single leading":              {"*.b", "a.b", true},
		"Single leading needs one":    {"*.b", "b", false},
		"Single leading not two":      {"*.c", "a.b.c", false},
		"Single middle":               {"a.*.c", "a.b.c", true},
		"Single middle not two":       {"a.*.d", "a.b.c.d", false},
		"Multi zero":                  {"a.#", "a", true},
		"Multi one":                   {"a.#", "a.b", true},
		"Multi many":                  {"a.#", "a.b.c.d", true},
		"Multi leading zero":          {"#.c", "c", true},
		"Multi leading one":           {"#.b", "a.b", true},
		"Multi leading many":          {"#.c", "a.b.c", true},
		"Multi leading wrong tail":    {"#.c", "a.b", false},
		"Multi middle one":            {"a.#.c", "a.b.c", true},
		"Multi middle zero":           {"a.#.c", "a.c", true},
		"Multi middle many":           {"a.#.d", "a.b.c.d", true},
		"Multi middle zero adjacent":  {"a.#.b", "a.b", true},
		"Multi everything":            {"#", "x.y.z", true},
		"Multi everything single":     {"#", "x", true},
		"Mixed wildcards":             {"*.#", "a", true},
		"Mixed wildcards needs one":   {"#.*", "a.b", true},
		"Empty segment literal":       {"a..b", "a..b", true},
		"Empty segment single":        {"a.*.b", "a..b", true},
		"Literal wildcard segment":    {"a.*", "a.*", true},
		"Different root":              {"b.#", "a.b", false},
		"Multi then literal mismatch": {"a.#.x", "a.b.c", false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			g := NewGraph[string](".")
			g.Subscribe(tc.pattern, tc.pattern)
			lists := g.Match(tc.topic)
			if tc.matches {
				assert.Len(t, lists, 1, "Pattern '%s' should match topic '%s'", tc.pattern, tc.topic)
			} else {
				assert.Empty(t, lists, "Pattern '%s' should not match topic '%s'", tc.pattern, tc.topic)
			}
		})
	}
}

func TestMatch_Dedupe(t *testing.T) {
	g := NewGraph[string](".")
	list, _ := g.Subscribe("a.#.#", "multi")
	lists := g.Match("a.b.c")
	assert.Len(t, lists, 1, "A node reachable through many paths should be returned once")
	assert.Same(t, list, lists[0])
}

func TestMatch_ConvergingPatterns(t *testing.T) {
	g := NewGraph[string](".")
	g.Subscribe("metrics.#", "metrics")
	g.Subscribe("ads.#", "ads")
	g.Subscribe("#.changed", "changed")

	var values []string
	for _, list := range g.Match("metrics.changed") {
		values = append(values, list.Values()...)
	}
	assert.Equal(t, []string{"metrics", "changed"}, values)
}

func TestMatch_DiscoveryOrder(t *testing.T) {
	g := NewGraph[string](".")
	g.Subscribe("#", "multi")
	g.Subscribe("a.b", "exact")
	g.Subscribe("a.*", "single")

	var values []string
	for _, list := range g.Match("a.b") {
		values = append(values, list.Values()...)
	}
	// The shallow "#" node is discovered first, then the exact and single wildcard nodes in push order.
	assert.Equal(t, []string{"multi", "exact", "single"}, values)
}

func TestMatch_EmptyListStillReturned(t *testing.T) {
	g := NewGraph[string](".")
	list, entry := g.Subscribe("a", "value")
	list.Remove(entry)
	lists := g.Match("a")
	assert.Len(t, lists, 1)
	assert.Equal(t, 0, lists[0].Len())
}

func TestMatch_NoSubscriptions(t *testing.T) {
	g := NewGraph[string](".")
	g.EnsurePath([]string{"a", "b"})
	assert.Empty(t, g.Match("a.b"), "Nodes without a list should not be returned")
	assert.Empty(t, g.Match(""))
}

func TestMatch_DeepMultiWildcards(t *testing.T) {
	g := NewGraph[int](".")
	g.Subscribe("#.#.#.#.#.z", 1)
	topic := "a.b.c.d.e.f.g.h.i.j.k.l.m.n.o.p.z"
	lists := g.Match(topic)
	assert.Len(t, lists, 1)
}

func ExampleMatch() {
	g := NewGraph[string](".")
	g.Subscribe("a.*", "single")
	g.Subscribe("a.#", "multi")
	for _, list := range Match(g, []string{"a", "b"}) {
		fmt.Println(list.Values())
	}
	// Output:
	// [multi]
	// [single]
}
