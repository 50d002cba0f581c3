// Package graph provides the in-memory content dependency graph: a directed,
// typed graph over content items that tracks internal links, entity mentions,
// media references and related-content relationships. It supports impact
// analysis, orphan and hub detection, shortest-path lookup, cycle detection
// and aggregate statistics.
//
// A Graph defines no internal locking. Mutating operations (UpsertNode,
// UpsertEdge, BuildFromContent, Clear) are read-modify-write sequences and
// must be serialized by the caller, either with a single lock guarding the
// whole graph or by confining the graph to one goroutine. Read-only
// operations may run concurrently with each other but not with a mutation.
package graph

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// NodeType tags the kind of entity a node represents.
type NodeType string

const (
	NodeTypeContent NodeType = "content"
	NodeTypeEntity  NodeType = "entity"
	NodeTypeMedia   NodeType = "media"
)

// EdgeType identifies the relationship a directed edge represents.
type EdgeType string

const (
	EdgeInternalLink   EdgeType = "internal_link"
	EdgeEntityMention  EdgeType = "entity_mention"
	EdgeMediaReference EdgeType = "media_reference"
	EdgeRelatedContent EdgeType = "related_content"
)

// Node represents one content-bearing entity in the graph.
// InDegree and OutDegree always equal the number of stored edges with this
// node as target and source respectively.
type Node struct {
	ID        string         `json:"id"`
	Type      NodeType       `json:"type"`
	Title     string         `json:"title,omitempty"`
	Status    string         `json:"status,omitempty"`
	Locale    string         `json:"locale,omitempty"`
	URL       string         `json:"url,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	InDegree  int            `json:"inDegree"`
	OutDegree int            `json:"outDegree"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Edge represents one directed relationship, identified by the ordered
// (source, target, type) triple. At most one edge exists per triple.
type Edge struct {
	SourceID  string    `json:"sourceContentId"`
	TargetID  string    `json:"targetId"`
	Type      EdgeType  `json:"edgeType"`
	CreatedAt time.Time `json:"createdAt"`
}

// NodeInput carries the caller-supplied attributes for UpsertNode.
type NodeInput struct {
	ID       string
	Type     NodeType
	Title    string
	Status   string
	Locale   string
	URL      string
	Metadata map[string]any
}

// Default store bounds and hub threshold.
const (
	DefaultMaxNodes       = 10000
	DefaultMaxEdges       = 50000
	DefaultHubMinInDegree = 5
)

// Options configures a Graph.
type Options struct {
	// MaxNodes bounds the node store (DefaultMaxNodes if zero).
	MaxNodes int
	// MaxEdges bounds the edge store (DefaultMaxEdges if zero).
	MaxEdges int
	// HubMinInDegree is the in-degree threshold used by Stats for its hub
	// count (DefaultHubMinInDegree if zero).
	HubMinInDegree int
	// Risk holds the cascade-risk tier thresholds (defaults if zero).
	Risk RiskThresholds
	// Logger is the structured logger (discards if nil).
	Logger *slog.Logger
}

// Graph is the content dependency graph. Construct with New; the zero value
// is not usable.
//
// Both stores are bounded with insertion-order eviction. Evicting a node does
// not cascade-delete its edges; the edge store is bounded independently and
// stale edges age out on their own. A node re-created after eviction has its
// degree counters rebuilt from the edges still stored.
type Graph struct {
	logger         *slog.Logger
	risk           RiskThresholds
	hubMinInDegree int

	nodes *boundedStore[*Node]
	edges *boundedStore[*Edge]

	// Per-node edge-key indexes, in edge insertion order. Kept independent of
	// node existence so degrees survive node eviction and re-creation.
	outgoing map[string][]string
	incoming map[string][]string
}

// New creates an empty graph with the given options.
func New(opts Options) *Graph {
	if opts.MaxNodes <= 0 {
		opts.MaxNodes = DefaultMaxNodes
	}
	if opts.MaxEdges <= 0 {
		opts.MaxEdges = DefaultMaxEdges
	}
	if opts.HubMinInDegree <= 0 {
		opts.HubMinInDegree = DefaultHubMinInDegree
	}
	opts.Risk = opts.Risk.withDefaults()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g := &Graph{
		logger:         logger,
		risk:           opts.Risk,
		hubMinInDegree: opts.HubMinInDegree,
		outgoing:       make(map[string][]string),
		incoming:       make(map[string][]string),
	}
	g.nodes = newBoundedStore(opts.MaxNodes, g.onNodeEvicted)
	g.edges = newBoundedStore(opts.MaxEdges, g.onEdgeEvicted)
	return g
}

// UpsertNode creates the node if absent or overwrites its descriptive fields
// in place if present. Degree counters are never touched by this call. The
// second return value reports whether a new node was created. An empty id is
// a no-op returning (nil, false).
func (g *Graph) UpsertNode(in NodeInput) (*Node, bool) {
	if in.ID == "" {
		return nil, false
	}

	now := time.Now()
	if n, ok := g.nodes.Get(in.ID); ok {
		if in.Type != "" {
			n.Type = in.Type
		}
		n.Title = in.Title
		n.Status = in.Status
		n.Locale = in.Locale
		n.URL = in.URL
		if in.Metadata != nil {
			n.Metadata = in.Metadata
		}
		n.UpdatedAt = now
		return n, false
	}

	typ := in.Type
	if typ == "" {
		typ = NodeTypeContent
	}
	n := &Node{
		ID:        in.ID,
		Type:      typ,
		Title:     in.Title,
		Status:    in.Status,
		Locale:    in.Locale,
		URL:       in.URL,
		Metadata:  in.Metadata,
		InDegree:  len(g.incoming[in.ID]),
		OutDegree: len(g.outgoing[in.ID]),
		CreatedAt: now,
		UpdatedAt: now,
	}
	g.nodes.Put(in.ID, n)
	return n, true
}

// GetNode returns the node with the given id, if present.
func (g *Graph) GetNode(id string) (*Node, bool) {
	return g.nodes.Get(id)
}

// UpsertEdge creates the (source, target, type) edge if it is new, returning
// (edge, true) and incrementing the source's out-degree and the target's
// in-degree by exactly one. If the triple already exists the stored edge is
// returned unchanged with false; repeated calls never change stored edge
// counts or degree counters.
//
// Unknown endpoints are auto-created with minimal defaults. This is a
// deliberate policy: ingestion may see a link before the linked content
// itself, and the placeholder node is filled in by a later UpsertNode.
//
// Empty ids or an empty edge type are a no-op returning (nil, false).
func (g *Graph) UpsertEdge(sourceID, targetID string, edgeType EdgeType) (*Edge, bool) {
	if sourceID == "" || targetID == "" || edgeType == "" {
		return nil, false
	}

	key := edgeKey(sourceID, targetID, edgeType)
	if e, ok := g.edges.Get(key); ok {
		return e, false
	}

	g.ensureNode(sourceID)
	g.ensureNode(targetID)

	e := &Edge{
		SourceID:  sourceID,
		TargetID:  targetID,
		Type:      edgeType,
		CreatedAt: time.Now(),
	}
	g.edges.Put(key, e)
	g.outgoing[sourceID] = append(g.outgoing[sourceID], key)
	g.incoming[targetID] = append(g.incoming[targetID], key)

	// Re-fetch: auto-creating the target can evict the source when the node
	// store is at capacity.
	if src, ok := g.nodes.Get(sourceID); ok {
		src.OutDegree++
	}
	if tgt, ok := g.nodes.Get(targetID); ok {
		tgt.InDegree++
	}
	return e, true
}

// OutgoingEdges returns the edges with the given node as source, in insertion
// order. The result is empty if the node has no outgoing edges or is unknown.
func (g *Graph) OutgoingEdges(nodeID string) []*Edge {
	return g.resolveEdges(g.outgoing[nodeID])
}

// IncomingEdges returns the edges with the given node as target, in insertion
// order. The result is empty if the node has no incoming edges or is unknown.
func (g *Graph) IncomingEdges(nodeID string) []*Edge {
	return g.resolveEdges(g.incoming[nodeID])
}

// Len returns the number of stored nodes.
func (g *Graph) Len() int {
	return g.nodes.Len()
}

// EdgeLen returns the number of stored edges.
func (g *Graph) EdgeLen() int {
	return g.edges.Len()
}

// Clear discards all nodes, edges, indexes and cache state.
func (g *Graph) Clear() {
	g.nodes.Clear()
	g.edges.Clear()
	g.outgoing = make(map[string][]string)
	g.incoming = make(map[string][]string)
	g.logger.Debug("graph cleared")
}

// CacheInfo reports the current and maximum size of one bounded store.
type CacheInfo struct {
	Size int `json:"size"`
	Max  int `json:"max"`
}

// CacheStats reports the state of both bounded stores.
type CacheStats struct {
	Nodes CacheInfo `json:"nodes"`
	Edges CacheInfo `json:"edges"`
}

// CacheStats returns the current size and configured maximum of the node and
// edge stores.
func (g *Graph) CacheStats() CacheStats {
	return CacheStats{
		Nodes: CacheInfo{Size: g.nodes.Len(), Max: g.nodes.Max()},
		Edges: CacheInfo{Size: g.edges.Len(), Max: g.edges.Max()},
	}
}

// ensureNode auto-creates a placeholder node for an edge endpoint.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.nodes.Get(id); ok {
		return
	}
	g.logger.Debug("auto-creating node for edge endpoint", "node_id", id)
	g.UpsertNode(NodeInput{ID: id})
}

func (g *Graph) onNodeEvicted(id string, _ *Node) {
	// Edges are kept: the edge store is bounded on its own, and the index
	// lists let a re-created node rebuild its degree counters.
	g.logger.Debug("node evicted", "node_id", id)
}

func (g *Graph) onEdgeEvicted(key string, e *Edge) {
	g.outgoing[e.SourceID] = removeKey(g.outgoing[e.SourceID], key)
	if len(g.outgoing[e.SourceID]) == 0 {
		delete(g.outgoing, e.SourceID)
	}
	g.incoming[e.TargetID] = removeKey(g.incoming[e.TargetID], key)
	if len(g.incoming[e.TargetID]) == 0 {
		delete(g.incoming, e.TargetID)
	}
	if src, ok := g.nodes.Get(e.SourceID); ok {
		src.OutDegree--
	}
	if tgt, ok := g.nodes.Get(e.TargetID); ok {
		tgt.InDegree--
	}
	g.logger.Debug("edge evicted", "source", e.SourceID, "target", e.TargetID, "type", e.Type)
}

func (g *Graph) resolveEdges(keys []string) []*Edge {
	edges := make([]*Edge, 0, len(keys))
	for _, key := range keys {
		if e, ok := g.edges.Get(key); ok {
			edges = append(edges, e)
		}
	}
	return edges
}

func edgeKey(sourceID, targetID string, edgeType EdgeType) string {
	return strings.Join([]string{sourceID, targetID, string(edgeType)}, "|")
}

func removeKey(keys []string, key string) []string {
	for i, k := range keys {
		if k == key {
			return append(keys[:i], keys[i+1:]...)
		}
	}
	return keys
}
