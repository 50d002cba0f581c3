package graph

import "fmt"

// CascadeRisk classifies how much of the graph is affected if a node is
// changed or removed. Tiers are ordered: RiskLow < RiskMedium < RiskHigh <
// RiskCritical.
type CascadeRisk int

const (
	RiskLow CascadeRisk = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

// String returns the lower-case tier name.
func (r CascadeRisk) String() string {
	switch r {
	case RiskCritical:
		return "critical"
	case RiskHigh:
		return "high"
	case RiskMedium:
		return "medium"
	default:
		return "low"
	}
}

// MarshalText implements encoding.TextMarshaler so reports render tier names
// rather than ordinals.
func (r CascadeRisk) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// RiskThresholds holds the cutoffs used to classify cascade risk. A node's
// risk score is its total transitive impact plus FanOutWeight times its
// first-hop fan-out; the score is compared against the tier cutoffs.
type RiskThresholds struct {
	// Medium, High and Critical are the minimum scores for each tier.
	Medium   int
	High     int
	Critical int
	// FanOutWeight scales the contribution of direct dependents.
	FanOutWeight int
}

// DefaultRiskThresholds returns the standard tier cutoffs.
func DefaultRiskThresholds() RiskThresholds {
	return RiskThresholds{Medium: 3, High: 10, Critical: 25, FanOutWeight: 2}
}

func (t RiskThresholds) withDefaults() RiskThresholds {
	d := DefaultRiskThresholds()
	if t.Medium <= 0 {
		t.Medium = d.Medium
	}
	if t.High <= 0 {
		t.High = d.High
	}
	if t.Critical <= 0 {
		t.Critical = d.Critical
	}
	if t.FanOutWeight <= 0 {
		t.FanOutWeight = d.FanOutWeight
	}
	return t
}

func (t RiskThresholds) classify(totalImpact, fanOut int) CascadeRisk {
	score := totalImpact + t.FanOutWeight*fanOut
	switch {
	case score >= t.Critical:
		return RiskCritical
	case score >= t.High:
		return RiskHigh
	case score >= t.Medium:
		return RiskMedium
	default:
		return RiskLow
	}
}

// ImpactReport describes the blast radius of changing or removing a node.
type ImpactReport struct {
	NodeID string `json:"nodeId"`
	// DirectDependents are the ids of nodes with an edge into NodeID.
	DirectDependents []string `json:"directDependents"`
	// TotalImpact is the size of the full upstream dependent closure: every
	// node from which NodeID is reachable by following edges forward.
	TotalImpact int         `json:"totalImpact"`
	CascadeRisk CascadeRisk `json:"cascadeRisk"`
	// RecommendedActions is advisory and empty for low risk.
	RecommendedActions []string `json:"recommendedActions,omitempty"`
}

// AnalyzeImpact computes the blast radius of changing or removing the given
// node. TotalImpact counts the transitive closure of dependents reached by
// repeatedly following incoming edges. The graph is not mutated. Returns
// (nil, false) when the node is unknown.
func (g *Graph) AnalyzeImpact(nodeID string) (*ImpactReport, bool) {
	if _, ok := g.nodes.Get(nodeID); !ok {
		return nil, false
	}

	direct := g.DirectDependents(nodeID)
	directIDs := make([]string, len(direct))
	for i, n := range direct {
		directIDs[i] = n.ID
	}

	total := g.dependentClosureSize(nodeID)
	risk := g.risk.classify(total, len(directIDs))

	report := &ImpactReport{
		NodeID:           nodeID,
		DirectDependents: directIDs,
		TotalImpact:      total,
		CascadeRisk:      risk,
	}
	report.RecommendedActions = recommendedActions(risk, total, len(directIDs))
	return report, true
}

// dependentClosureSize counts the nodes upstream of nodeID via reverse
// breadth-first traversal over incoming edges, excluding nodeID itself.
func (g *Graph) dependentClosureSize(nodeID string) int {
	visited := map[string]struct{}{nodeID: {}}
	queue := []string{nodeID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, key := range g.incoming[current] {
			e, ok := g.edges.Get(key)
			if !ok {
				continue
			}
			if _, ok := visited[e.SourceID]; ok {
				continue
			}
			visited[e.SourceID] = struct{}{}
			queue = append(queue, e.SourceID)
		}
	}
	return len(visited) - 1
}

func recommendedActions(risk CascadeRisk, totalImpact, fanOut int) []string {
	if risk < RiskMedium {
		return nil
	}

	actions := []string{
		fmt.Sprintf("review the %d direct dependents before editing or removing this item", fanOut),
		"update or remove inbound links first so dependents do not break",
	}
	if risk >= RiskHigh {
		actions = append(actions,
			fmt.Sprintf("stage the change and re-run impact analysis; %d items are affected transitively", totalImpact))
	}
	if risk >= RiskCritical {
		actions = append(actions, "require editorial sign-off: removing this item collapses a critical section of the content graph")
	}
	return actions
}
