// Package nlp defines the named-entity tagger port used by the extraction core.
// The tagger is a black box mapping text to labeled spans; the pipeline never
// looks inside the model
package nlp

import "context"

// Common entity labels emitted by the French model
const (
	LabelOrg  = "ORG"
	LabelDate = "DATE"
	LabelLoc  = "LOC"
	LabelPer  = "PER"
	LabelMisc = "MISC"
)

// Entity is one labeled span over the tagged text
// Start and End are character offsets, [Start,End)
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Tagger produces entity spans for a text
// Implementations must be safe for concurrent use; one instance is shared
// across all requests for the process lifetime
type Tagger interface {
	Tag(ctx context.Context, text string) ([]Entity, error)

	// Model reports the underlying model identifier for health reporting
	Model() string
}

// TagFunc adapts a plain function to Tagger, handy for tests
type TagFunc func(ctx context.Context, text string) ([]Entity, error)

// Tag implements Tagger
func (f TagFunc) Tag(ctx context.Context, text string) ([]Entity, error) { return f(ctx, text) }

// Model implements Tagger
func (f TagFunc) Model() string { return "func" }
