package ports

import (
	"context"
	"encoding/json"

	"NewsLens/internal/domain"
)

// ArticleSource fetches candidate articles for a query from an upstream
// news provider.
type ArticleSource interface {
	Fetch(ctx context.Context, query string) ([]domain.Source, error)
}

// SourceVerifier stamps retrieved sources with an authenticity flag. Raw
// provider records enter as loosely-typed maps and leave as validated
// Sources.
type SourceVerifier interface {
	Verify(ctx context.Context, sources []map[string]any) ([]domain.Source, error)
}

// Summarizer turns articles into format-specific summary content plus the
// source stubs echoed in the final response.
type Summarizer interface {
	Summarize(ctx context.Context, articles []domain.Article, format string) (json.RawMessage, []domain.Source, error)
}

// TextGenerator is the outbound LLM contract: one prompt in, raw model text
// out. maxTokens caps the response size and varies by summary format.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
	Configured() bool
}
