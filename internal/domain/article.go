package domain

import "encoding/json"

// Summary formats supported by the pipeline.
const (
	FormatDebate      = "debate"
	FormatVennDiagram = "venn_diagram"
)

// Source is a retrieved article reference carrying its verification flag.
type Source struct {
	URL        string   `json:"url"`
	Title      string   `json:"title"`
	IsVerified bool     `json:"isVerified"`
	BiasScore  *float64 `json:"biasScore,omitempty"`
}

// Article is the description-bearing shape handed to summarization.
// Sources drop the body text, so the orchestrator rebuilds it between stages.
type Article struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Summary is the pipeline's final output. Content holds one of the
// format-specific content structs already marshalled; its shape is fully
// determined by Format plus the enhanced-debate flag.
type Summary struct {
	Format  string          `json:"format"`
	Content json.RawMessage `json:"content"`
	Sources []Source        `json:"sources"`
}

// ValidFormat reports whether the format literal is one the engine supports.
func ValidFormat(format string) bool {
	return format == FormatDebate || format == FormatVennDiagram
}
