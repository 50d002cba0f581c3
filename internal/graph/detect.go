package graph

import "sort"

// OrphanRecord flags a node that nothing in the graph links to.
type OrphanRecord struct {
	NodeID          string `json:"nodeId"`
	Reason          string `json:"reason"`
	SuggestedAction string `json:"suggestedAction"`
}

// HubRecord describes a highly referenced node. Rank is 1-based among all
// nodes meeting the queried threshold, ordered descending by in-degree.
type HubRecord struct {
	Node     *Node `json:"node"`
	InDegree int   `json:"inDegree"`
	Rank     int   `json:"rank"`
}

// FindOrphans returns every node with no incoming edges, sorted by node id.
// Nodes that link out to others are flagged as possible entry points rather
// than dead content.
func (g *Graph) FindOrphans() []OrphanRecord {
	var orphans []OrphanRecord
	g.nodes.Range(func(id string, n *Node) bool {
		if n.InDegree > 0 {
			return true
		}
		rec := OrphanRecord{
			NodeID: id,
			Reason: "no other content links to this item",
		}
		if n.OutDegree > 0 {
			rec.SuggestedAction = "confirm this is an intentional entry point"
		} else {
			rec.SuggestedAction = "add an internal link from related content, or mark for cleanup"
		}
		orphans = append(orphans, rec)
		return true
	})
	sort.Slice(orphans, func(i, j int) bool {
		return orphans[i].NodeID < orphans[j].NodeID
	})
	return orphans
}

// FindHubs returns the nodes whose in-degree is at least minInDegree, sorted
// descending by in-degree with node id as tie-break, ranked from 1.
func (g *Graph) FindHubs(minInDegree int) []HubRecord {
	var hubs []HubRecord
	g.nodes.Range(func(_ string, n *Node) bool {
		if n.InDegree >= minInDegree {
			hubs = append(hubs, HubRecord{Node: n, InDegree: n.InDegree})
		}
		return true
	})
	sort.Slice(hubs, func(i, j int) bool {
		if hubs[i].InDegree != hubs[j].InDegree {
			return hubs[i].InDegree > hubs[j].InDegree
		}
		return hubs[i].Node.ID < hubs[j].Node.ID
	})
	for i := range hubs {
		hubs[i].Rank = i + 1
	}
	return hubs
}
