package graph

import (
	"sort"
	"strings"
)

// PathResult describes a directed route between two nodes. Path contains node
// ids inclusive of both endpoints; Length is the number of edges.
type PathResult struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Path   []string `json:"path"`
	Length int      `json:"length"`
}

// DirectDependents returns the distinct source nodes of all incoming edges to
// nodeID, i.e. the nodes that point at it. Output is sorted by node id for
// deterministic order.
func (g *Graph) DirectDependents(nodeID string) []*Node {
	seen := make(map[string]struct{})
	var ids []string
	for _, e := range g.IncomingEdges(nodeID) {
		if _, ok := seen[e.SourceID]; ok {
			continue
		}
		seen[e.SourceID] = struct{}{}
		ids = append(ids, e.SourceID)
	}
	sort.Strings(ids)

	dependents := make([]*Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := g.nodes.Get(id); ok {
			dependents = append(dependents, n)
		}
	}
	return dependents
}

// FindPath returns the shortest directed route from sourceID to targetID,
// found by breadth-first search over outgoing edges. It returns (nil, false)
// when either id is unknown or no route exists.
func (g *Graph) FindPath(sourceID, targetID string) (*PathResult, bool) {
	if _, ok := g.nodes.Get(sourceID); !ok {
		return nil, false
	}
	if _, ok := g.nodes.Get(targetID); !ok {
		return nil, false
	}

	if sourceID == targetID {
		return &PathResult{Source: sourceID, Target: targetID, Path: []string{sourceID}}, true
	}

	parent := make(map[string]string)
	visited := map[string]struct{}{sourceID: {}}
	queue := []string{sourceID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, key := range g.outgoing[current] {
			e, ok := g.edges.Get(key)
			if !ok {
				continue
			}
			next := e.TargetID
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			parent[next] = current

			if next == targetID {
				return buildPathResult(sourceID, targetID, parent), true
			}
			queue = append(queue, next)
		}
	}

	return nil, false
}

func buildPathResult(sourceID, targetID string, parent map[string]string) *PathResult {
	path := []string{targetID}
	for curr := targetID; curr != sourceID; curr = parent[curr] {
		path = append([]string{parent[curr]}, path...)
	}
	return &PathResult{
		Source: sourceID,
		Target: targetID,
		Path:   path,
		Length: len(path) - 1,
	}
}

// DetectCycles finds all circular dependency chains via depth-first traversal
// from every node, using a per-path recursion stack. Each cycle is reported
// once, deduplicated by its node set, as the node ids in traversal order.
func (g *Graph) DetectCycles() [][]string {
	var ids []string
	g.nodes.Range(func(id string, _ *Node) bool {
		ids = append(ids, id)
		return true
	})
	sort.Strings(ids)

	visited := make(map[string]struct{})
	onStack := make(map[string]struct{})
	seen := make(map[string]struct{}) // dedup by sorted node set
	var path []string
	var cycles [][]string

	var dfs func(id string)
	dfs = func(id string) {
		visited[id] = struct{}{}
		onStack[id] = struct{}{}
		path = append(path, id)

		for _, key := range g.outgoing[id] {
			e, ok := g.edges.Get(key)
			if !ok {
				continue
			}
			next := e.TargetID
			if _, ok := onStack[next]; ok {
				// Back edge: the cycle is the path segment from next onward.
				start := 0
				for i, p := range path {
					if p == next {
						start = i
						break
					}
				}
				cycle := append([]string(nil), path[start:]...)
				if sig := cycleSignature(cycle); sig != "" {
					if _, dup := seen[sig]; !dup {
						seen[sig] = struct{}{}
						cycles = append(cycles, cycle)
					}
				}
				continue
			}
			if _, ok := visited[next]; !ok {
				dfs(next)
			}
		}

		path = path[:len(path)-1]
		delete(onStack, id)
	}

	for _, id := range ids {
		if _, ok := visited[id]; !ok {
			dfs(id)
		}
	}
	return cycles
}

func cycleSignature(cycle []string) string {
	if len(cycle) == 0 {
		return ""
	}
	sorted := append([]string(nil), cycle...)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x00")
}
