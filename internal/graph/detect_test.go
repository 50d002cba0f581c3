package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_FindOrphans(t *testing.T) {
	g := newTestGraph(t, Options{})

	g.UpsertNode(NodeInput{ID: "fresh"})
	orphans := g.FindOrphans()
	require.Len(t, orphans, 1)
	assert.Equal(t, "fresh", orphans[0].NodeID)
	assert.NotEmpty(t, orphans[0].Reason)
	assert.Contains(t, orphans[0].SuggestedAction, "internal link")

	// Once something links to it, it is no longer an orphan.
	g.UpsertEdge("other", "fresh", EdgeInternalLink)
	orphans = g.FindOrphans()
	for _, o := range orphans {
		assert.NotEqual(t, "fresh", o.NodeID)
	}
}

func TestGraph_FindOrphans_EntryPoint(t *testing.T) {
	g := newTestGraph(t, Options{})

	// Links out but nothing links in: likely a landing page, not dead content.
	g.UpsertEdge("home", "article", EdgeInternalLink)

	orphans := g.FindOrphans()
	require.Len(t, orphans, 1)
	assert.Equal(t, "home", orphans[0].NodeID)
	assert.Contains(t, orphans[0].SuggestedAction, "entry point")
}

func TestGraph_FindOrphans_Sorted(t *testing.T) {
	g := newTestGraph(t, Options{})

	g.UpsertNode(NodeInput{ID: "c"})
	g.UpsertNode(NodeInput{ID: "a"})
	g.UpsertNode(NodeInput{ID: "b"})

	orphans := g.FindOrphans()
	require.Len(t, orphans, 3)
	assert.Equal(t, "a", orphans[0].NodeID)
	assert.Equal(t, "b", orphans[1].NodeID)
	assert.Equal(t, "c", orphans[2].NodeID)
}

func TestGraph_FindHubs_Ranking(t *testing.T) {
	g := newTestGraph(t, Options{})

	// One node with in-degree 10, nine peripheral nodes with in-degree <= 1.
	for i := 0; i < 10; i++ {
		g.UpsertEdge(fmt.Sprintf("src-%d", i), "hub", EdgeInternalLink)
	}
	g.UpsertEdge("hub", "periph", EdgeInternalLink)

	hubs := g.FindHubs(5)
	require.Len(t, hubs, 1, "only the hub meets the threshold")
	assert.Equal(t, "hub", hubs[0].Node.ID)
	assert.Equal(t, 10, hubs[0].InDegree)
	assert.Equal(t, 1, hubs[0].Rank)
}

func TestGraph_FindHubs_SortAndTieBreak(t *testing.T) {
	g := newTestGraph(t, Options{})

	link := func(n int, target string) {
		for i := 0; i < n; i++ {
			g.UpsertEdge(fmt.Sprintf("%s-src-%d", target, i), target, EdgeInternalLink)
		}
	}
	link(3, "beta")
	link(5, "gamma")
	link(3, "alpha")

	hubs := g.FindHubs(2)
	require.Len(t, hubs, 3)
	assert.Equal(t, "gamma", hubs[0].Node.ID)
	assert.Equal(t, "alpha", hubs[1].Node.ID, "ties break by node id")
	assert.Equal(t, "beta", hubs[2].Node.ID)
	assert.Equal(t, []int{1, 2, 3}, []int{hubs[0].Rank, hubs[1].Rank, hubs[2].Rank})
}

func TestGraph_FindHubs_NoneMeetThreshold(t *testing.T) {
	g := newTestGraph(t, Options{})
	g.UpsertEdge("a", "b", EdgeInternalLink)

	assert.Empty(t, g.FindHubs(5))
}
