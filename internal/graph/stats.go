package graph

// GraphStats is a read-only aggregate summary of the whole graph. The sums of
// NodesByType and EdgesByType always equal TotalNodes and TotalEdges.
type GraphStats struct {
	TotalNodes              int              `json:"totalNodes"`
	TotalEdges              int              `json:"totalEdges"`
	NodesByType             map[NodeType]int `json:"nodesByType"`
	EdgesByType             map[EdgeType]int `json:"edgesByType"`
	AverageInDegree         float64          `json:"averageInDegree"`
	AverageOutDegree        float64          `json:"averageOutDegree"`
	OrphanCount             int              `json:"orphanCount"`
	HubCount                int              `json:"hubCount"`
	CircularDependencyCount int              `json:"circularDependencyCount"`
}

// Stats computes aggregate statistics in a single pass over the node and edge
// stores, plus a cycle scan. The hub count uses the configured hub threshold.
func (g *Graph) Stats() *GraphStats {
	stats := &GraphStats{
		NodesByType: make(map[NodeType]int),
		EdgesByType: make(map[EdgeType]int),
	}

	var inSum, outSum int
	g.nodes.Range(func(_ string, n *Node) bool {
		stats.TotalNodes++
		stats.NodesByType[n.Type]++
		inSum += n.InDegree
		outSum += n.OutDegree
		if n.InDegree == 0 {
			stats.OrphanCount++
		}
		if n.InDegree >= g.hubMinInDegree {
			stats.HubCount++
		}
		return true
	})

	g.edges.Range(func(_ string, e *Edge) bool {
		stats.TotalEdges++
		stats.EdgesByType[e.Type]++
		return true
	})

	if stats.TotalNodes > 0 {
		stats.AverageInDegree = float64(inSum) / float64(stats.TotalNodes)
		stats.AverageOutDegree = float64(outSum) / float64(stats.TotalNodes)
	}
	stats.CircularDependencyCount = len(g.DetectCycles())
	return stats
}
