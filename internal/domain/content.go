package domain

// DebateContent is the simple debate summary: one thesis with opposing
// argument lists.
type DebateContent struct {
	Statement string   `json:"statement"`
	For       []string `json:"for"`
	Against   []string `json:"against"`
}

// EnhancedDebateContent is the multi-perspective debate summary selected by
// the debate-format feature flag.
type EnhancedDebateContent struct {
	Topic           string          `json:"topic"`
	Perspectives    []Perspective   `json:"perspectives"`
	ConsensusPoints []SourcedPoint  `json:"consensus_points"`
	DisputedPoints  []DisputedPoint `json:"disputed_points"`
}

// Perspective is one viewpoint inside an enhanced debate.
type Perspective struct {
	Viewpoint    string                `json:"viewpoint"`
	Position     string                `json:"position"`
	SupportLevel float64               `json:"support_level"`
	Arguments    []PerspectiveArgument `json:"arguments"`
}

// Argument strength literals used in enhanced debate content.
const (
	StrengthStrong   = "strong"
	StrengthModerate = "moderate"
	StrengthWeak     = "weak"
)

// PerspectiveArgument attributes a point to articles by 0-based index into
// the truncated article list handed to the model.
type PerspectiveArgument struct {
	Point         string `json:"point"`
	SourceIndices []int  `json:"source_indices"`
	Strength      string `json:"strength"`
}

// SourcedPoint is a consensus point attributed to articles.
type SourcedPoint struct {
	Point         string `json:"point"`
	SourceIndices []int  `json:"source_indices"`
}

// DisputedPoint names a contested point and the viewpoints disagreeing on it.
type DisputedPoint struct {
	Point                string   `json:"point"`
	PerspectivesInvolved []string `json:"perspectives_involved"`
}

// VennContent is the venn-diagram comparison summary.
type VennContent struct {
	TopicA  string   `json:"topic_a"`
	TopicB  string   `json:"topic_b"`
	UniqueA []string `json:"unique_a"`
	UniqueB []string `json:"unique_b"`
	Common  []string `json:"common"`
}
