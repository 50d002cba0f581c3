package graph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_DirectDependents(t *testing.T) {
	g := newTestGraph(t, Options{})

	g.UpsertEdge("b", "a", EdgeInternalLink)
	g.UpsertEdge("c", "a", EdgeInternalLink)
	g.UpsertEdge("c", "a", EdgeRelatedContent) // same dependent, second edge
	g.UpsertEdge("a", "d", EdgeInternalLink)   // outgoing, not a dependent

	deps := g.DirectDependents("a")
	require.Len(t, deps, 2, "dependents are distinct sources of incoming edges")
	assert.Equal(t, "b", deps[0].ID)
	assert.Equal(t, "c", deps[1].ID)

	assert.Empty(t, g.DirectDependents("d"))
	assert.Empty(t, g.DirectDependents("unknown"))
}

func TestGraph_FindPath_Shortest(t *testing.T) {
	g := newTestGraph(t, Options{})

	// Long way around plus a shortcut.
	g.UpsertEdge("a", "b", EdgeInternalLink)
	g.UpsertEdge("b", "c", EdgeInternalLink)
	g.UpsertEdge("c", "d", EdgeInternalLink)
	g.UpsertEdge("a", "x", EdgeRelatedContent)
	g.UpsertEdge("x", "d", EdgeRelatedContent)

	result, ok := g.FindPath("a", "d")
	require.True(t, ok)
	assert.Equal(t, 2, result.Length, "path length is the minimum edge count")
	assert.Len(t, result.Path, 3, "path includes both endpoints")
	assert.Equal(t, "a", result.Path[0])
	assert.Equal(t, "d", result.Path[2])
}

func TestGraph_FindPath_None(t *testing.T) {
	g := newTestGraph(t, Options{})

	g.UpsertEdge("a", "b", EdgeInternalLink)
	g.UpsertNode(NodeInput{ID: "island"})

	t.Run("no directed route", func(t *testing.T) {
		result, ok := g.FindPath("b", "a")
		assert.False(t, ok, "edges are directed")
		assert.Nil(t, result)
	})
	t.Run("disconnected target", func(t *testing.T) {
		_, ok := g.FindPath("a", "island")
		assert.False(t, ok)
	})
	t.Run("unknown source", func(t *testing.T) {
		_, ok := g.FindPath("ghost", "a")
		assert.False(t, ok)
	})
	t.Run("unknown target", func(t *testing.T) {
		_, ok := g.FindPath("a", "ghost")
		assert.False(t, ok)
	})
}

func TestGraph_FindPath_SelfAndCycles(t *testing.T) {
	g := newTestGraph(t, Options{})

	g.UpsertEdge("a", "b", EdgeInternalLink)
	g.UpsertEdge("b", "a", EdgeInternalLink)

	// Cyclic graphs must terminate.
	result, ok := g.FindPath("a", "b")
	require.True(t, ok)
	assert.Equal(t, 1, result.Length)

	result, ok = g.FindPath("a", "a")
	require.True(t, ok)
	assert.Equal(t, 0, result.Length)
	assert.Equal(t, []string{"a"}, result.Path)
}

func TestGraph_DetectCycles(t *testing.T) {
	g := newTestGraph(t, Options{})

	g.UpsertEdge("a", "b", EdgeInternalLink)
	g.UpsertEdge("b", "c", EdgeInternalLink)
	g.UpsertEdge("c", "a", EdgeInternalLink)
	g.UpsertEdge("c", "d", EdgeInternalLink) // tail, not in the cycle

	cycles := g.DetectCycles()
	require.Len(t, cycles, 1, "one cycle, reported once regardless of rotation")

	members := append([]string(nil), cycles[0]...)
	sort.Strings(members)
	assert.Equal(t, []string{"a", "b", "c"}, members)
}

func TestGraph_DetectCycles_Acyclic(t *testing.T) {
	g := newTestGraph(t, Options{})

	g.UpsertEdge("a", "b", EdgeInternalLink)
	g.UpsertEdge("b", "c", EdgeInternalLink)
	g.UpsertEdge("a", "c", EdgeInternalLink)

	assert.Empty(t, g.DetectCycles())
}

func TestGraph_DetectCycles_SelfLoop(t *testing.T) {
	g := newTestGraph(t, Options{})

	g.UpsertEdge("a", "a", EdgeRelatedContent)

	cycles := g.DetectCycles()
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"a"}, cycles[0])
}

func TestGraph_DetectCycles_MultipleDisjoint(t *testing.T) {
	g := newTestGraph(t, Options{})

	g.UpsertEdge("a", "b", EdgeInternalLink)
	g.UpsertEdge("b", "a", EdgeInternalLink)
	g.UpsertEdge("x", "y", EdgeInternalLink)
	g.UpsertEdge("y", "x", EdgeInternalLink)

	assert.Len(t, g.DetectCycles(), 2)
}
