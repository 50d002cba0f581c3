// Package content defines the boundary contract with the content-authoring
// subsystem: the content object shape the graph is built from, and a loader
// for replaying content fixtures from disk.
//
// The graph core does not validate business rules about content (whether a
// referenced id exists in the content store); it only checks structural
// well-formedness, so these types carry data as-is.
package content

// InternalLink references another content item from body copy.
type InternalLink struct {
	TargetID   string `json:"targetId"`
	AnchorText string `json:"anchorText,omitempty"`
}

// EntityMention references a named entity mentioned in the content.
type EntityMention struct {
	EntityID   string `json:"entityId"`
	EntityType string `json:"entityType,omitempty"`
}

// Content is one content object as delivered by the authoring subsystem.
// All four relation lists are optional.
type Content struct {
	ContentID         string          `json:"contentId"`
	Title             string          `json:"title,omitempty"`
	Status            string          `json:"status,omitempty"`
	Locale            string          `json:"locale,omitempty"`
	URL               string          `json:"url,omitempty"`
	InternalLinks     []InternalLink  `json:"internalLinks,omitempty"`
	EntityMentions    []EntityMention `json:"entityMentions,omitempty"`
	MediaReferences   []string        `json:"mediaReferences,omitempty"`
	RelatedContentIDs []string        `json:"relatedContentIds,omitempty"`
}
