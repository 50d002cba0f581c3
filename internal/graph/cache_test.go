package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundedStore_FIFOEviction(t *testing.T) {
	var evicted []string
	s := newBoundedStore(3, func(key string, _ int) {
		evicted = append(evicted, key)
	})

	s.Put("a", 1)
	s.Put("b", 2)
	s.Put("c", 3)
	require.Equal(t, 3, s.Len())

	// Fourth insert evicts the earliest-inserted entry, never the new one.
	s.Put("d", 4)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"a"}, evicted)

	_, ok := s.Get("a")
	assert.False(t, ok)
	_, ok = s.Get("d")
	assert.True(t, ok)
}

func TestBoundedStore_UpdateKeepsPosition(t *testing.T) {
	var evicted []string
	s := newBoundedStore(2, func(key string, _ int) {
		evicted = append(evicted, key)
	})

	s.Put("a", 1)
	s.Put("b", 2)
	s.Put("a", 10) // update, not re-insert
	s.Put("c", 3)

	// "a" is still the oldest despite the update.
	assert.Equal(t, []string{"a"}, evicted)
	v, ok := s.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestBoundedStore_RangeInsertionOrder(t *testing.T) {
	s := newBoundedStore[int](10, nil)
	s.Put("c", 3)
	s.Put("a", 1)
	s.Put("b", 2)

	var keys []string
	s.Range(func(key string, _ int) bool {
		keys = append(keys, key)
		return true
	})
	assert.Equal(t, []string{"c", "a", "b"}, keys)
}

func TestGraph_NodeCacheBound(t *testing.T) {
	g := newTestGraph(t, Options{MaxNodes: 5})

	for i := 0; i < 6; i++ {
		g.UpsertNode(NodeInput{ID: fmt.Sprintf("n%d", i)})
	}

	assert.Equal(t, 5, g.Len(), "cache must hold exactly its configured max")
	_, ok := g.GetNode("n0")
	assert.False(t, ok, "earliest-inserted node is evicted first")
	_, ok = g.GetNode("n5")
	assert.True(t, ok, "the inserted entry is never the one dropped")
}

func TestGraph_EdgeEvictionMaintainsDegrees(t *testing.T) {
	g := newTestGraph(t, Options{MaxEdges: 2})

	g.UpsertEdge("a", "hub", EdgeInternalLink)
	g.UpsertEdge("b", "hub", EdgeInternalLink)
	g.UpsertEdge("c", "hub", EdgeInternalLink) // evicts a->hub

	assert.Equal(t, 2, g.EdgeLen())
	hub, _ := g.GetNode("hub")
	assert.Equal(t, 2, hub.InDegree)
	assert.Len(t, g.IncomingEdges("hub"), 2)

	a, _ := g.GetNode("a")
	assert.Equal(t, 0, a.OutDegree)
	assert.Empty(t, g.OutgoingEdges("a"))
}

func TestGraph_NodeEvictionDoesNotCascadeEdges(t *testing.T) {
	g := newTestGraph(t, Options{MaxNodes: 2})

	g.UpsertNode(NodeInput{ID: "old"})
	g.UpsertEdge("old", "kept", EdgeInternalLink)
	// Upserting a third node evicts "old"; its edge stays stored.
	g.UpsertNode(NodeInput{ID: "new"})

	_, ok := g.GetNode("old")
	require.False(t, ok)
	assert.Equal(t, 1, g.EdgeLen(), "edges do not cascade on node eviction")

	// A re-created node rebuilds its degrees from the stored edges.
	n, created := g.UpsertNode(NodeInput{ID: "old"})
	require.True(t, created)
	assert.Equal(t, 1, n.OutDegree)
	assert.Equal(t, 0, n.InDegree)
}

func TestGraph_CacheStats(t *testing.T) {
	g := newTestGraph(t, Options{MaxNodes: 100, MaxEdges: 200})

	g.UpsertEdge("a", "b", EdgeInternalLink)

	stats := g.CacheStats()
	assert.Equal(t, 2, stats.Nodes.Size)
	assert.Equal(t, 100, stats.Nodes.Max)
	assert.Equal(t, 1, stats.Edges.Size)
	assert.Equal(t, 200, stats.Edges.Max)
}
