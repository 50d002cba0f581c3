package graph

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/leapstack-labs/contentgraph/internal/content"
)

// BuildError records one malformed relation skipped during a build batch.
type BuildError struct {
	EdgeType EdgeType `json:"edgeType,omitempty"`
	TargetID string   `json:"targetId,omitempty"`
	Reason   string   `json:"reason"`
}

// Error implements the error interface.
func (e BuildError) Error() string {
	if e.EdgeType == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s relation skipped: %s", e.EdgeType, e.Reason)
}

// BuildReport summarizes one BuildFromContent batch. NodesCreated and
// EdgesCreated count only genuinely new records; idempotent re-upserts are
// excluded.
type BuildReport struct {
	BatchID      string       `json:"batchId"`
	ContentID    string       `json:"contentId"`
	NodesCreated int          `json:"nodesCreated"`
	EdgesCreated int          `json:"edgesCreated"`
	Errors       []BuildError `json:"errors,omitempty"`
}

// BuildFromContent ingests one content object: it upserts exactly one node
// for the content itself, then one edge per listed relation, typed by the
// list it came from. A malformed relation (empty id) is recorded in Errors
// and skipped; it never aborts the batch.
func (g *Graph) BuildFromContent(c *content.Content) *BuildReport {
	report := &BuildReport{BatchID: uuid.NewString()}
	if c == nil || c.ContentID == "" {
		report.Errors = append(report.Errors, BuildError{Reason: "content id is empty"})
		return report
	}
	report.ContentID = c.ContentID

	_, created := g.UpsertNode(NodeInput{
		ID:     c.ContentID,
		Type:   NodeTypeContent,
		Title:  c.Title,
		Status: c.Status,
		Locale: c.Locale,
		URL:    c.URL,
	})
	if created {
		report.NodesCreated++
	}

	for _, link := range c.InternalLinks {
		g.addRelation(report, link.TargetID, EdgeInternalLink)
	}
	for _, mention := range c.EntityMentions {
		g.addRelation(report, mention.EntityID, EdgeEntityMention)
	}
	for _, mediaID := range c.MediaReferences {
		g.addRelation(report, mediaID, EdgeMediaReference)
	}
	for _, relatedID := range c.RelatedContentIDs {
		g.addRelation(report, relatedID, EdgeRelatedContent)
	}

	g.logger.Debug("content ingested",
		"batch_id", report.BatchID,
		"content_id", report.ContentID,
		"nodes_created", report.NodesCreated,
		"edges_created", report.EdgesCreated,
		"errors", len(report.Errors))
	return report
}

func (g *Graph) addRelation(report *BuildReport, targetID string, edgeType EdgeType) {
	if targetID == "" {
		report.Errors = append(report.Errors, BuildError{
			EdgeType: edgeType,
			Reason:   "target id is empty",
		})
		return
	}
	if _, created := g.UpsertEdge(report.ContentID, targetID, edgeType); created {
		report.EdgesCreated++
	}
}
