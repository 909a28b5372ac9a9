package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"NewsLens/internal/domain"
	"NewsLens/internal/ports"
)

const (
	maxTitleLen       = 500
	maxURLLen         = 1000
	maxDescriptionLen = 5000

	// Token budgets for the outbound model call. The richer schemas get
	// more room.
	simpleMaxTokens = 1500
	richMaxTokens   = 2500

	// The query the engine describes articles against. Retrieval has
	// already scoped the articles, so the prompt only needs a generic
	// framing here.
	defaultTopic = "news analysis"
)

// Engine produces format-specific summary content from articles. With the
// live flag on and a configured generator it calls the LLM; in every other
// case, and on every LLM-side failure, it falls back to the deterministic
// mock generator. Callers never see an LLM error.
type Engine struct {
	llm            ports.TextGenerator
	realEnabled    bool
	enhancedDebate bool
	logger         *slog.Logger
}

var _ ports.Summarizer = (*Engine)(nil)

// NewEngine reads both feature flags once at construction.
func NewEngine(llm ports.TextGenerator, realEnabled, enhancedDebate bool, log *slog.Logger) *Engine {
	if log != nil {
		log.Info("summarization engine initialized",
			"real_summarization", realEnabled,
			"enhanced_debate", enhancedDebate)
	}
	return &Engine{
		llm:            llm,
		realEnabled:    realEnabled,
		enhancedDebate: enhancedDebate,
		logger:         log,
	}
}

// Summarize validates its inputs, then returns content for the requested
// format plus the source stubs echoed in the final Summary. Only input
// validation can fail; everything past that degrades to mock content.
func (e *Engine) Summarize(ctx context.Context, articles []domain.Article, format string) (json.RawMessage, []domain.Source, error) {
	if err := validateInput(articles, format); err != nil {
		return nil, nil, err
	}

	if len(articles) == 0 {
		content, err := marshalContent(emptyContent(format, e.enhancedDebate))
		if err != nil {
			return nil, nil, err
		}
		return content, []domain.Source{}, nil
	}

	sources := articlesToSources(articles)

	var content json.RawMessage
	if e.realEnabled && e.llm != nil && e.llm.Configured() {
		content = e.generateLive(ctx, articles, format)
	}
	if content == nil {
		mock, err := marshalContent(mockContent(len(articles), format, e.enhancedDebate))
		if err != nil {
			return nil, nil, err
		}
		content = mock
	}

	if err := validateContent(content, format, e.enhancedDebate); err != nil {
		e.warn("content failed schema validation, regenerating via mock", "error", err)
		mock, mErr := marshalContent(mockContent(len(articles), format, e.enhancedDebate))
		if mErr != nil {
			return nil, nil, mErr
		}
		content = mock
	}

	return content, sources, nil
}

// generateLive runs the prompt through the LLM and parses the result.
// Every failure returns nil so the caller substitutes mock content.
func (e *Engine) generateLive(ctx context.Context, articles []domain.Article, format string) json.RawMessage {
	prompt, maxTokens := e.buildPrompt(articles, format)

	text, err := e.llm.Generate(ctx, prompt, maxTokens)
	if err != nil {
		e.warn("llm call failed, falling back to mock content", "error", err)
		return nil
	}

	content, err := extractJSON(text)
	if err != nil {
		e.warn("llm response was not parseable JSON, falling back to mock content", "error", err)
		return nil
	}
	return content
}

func (e *Engine) buildPrompt(articles []domain.Article, format string) (string, int) {
	switch {
	case format == domain.FormatVennDiagram:
		return vennPrompt(defaultTopic, articles), richMaxTokens
	case e.enhancedDebate:
		return enhancedDebatePrompt(defaultTopic, articles), richMaxTokens
	default:
		return debatePrompt(defaultTopic, articles), simpleMaxTokens
	}
}

func validateInput(articles []domain.Article, format string) error {
	if !domain.ValidFormat(format) {
		return &domain.InvalidInputError{Detail: fmt.Sprintf("unsupported summary format %q", format)}
	}
	for i, article := range articles {
		switch {
		case len([]rune(article.Title)) > maxTitleLen:
			return &domain.InvalidInputError{Detail: fmt.Sprintf("article %d title exceeds %d characters", i, maxTitleLen)}
		case len([]rune(article.URL)) > maxURLLen:
			return &domain.InvalidInputError{Detail: fmt.Sprintf("article %d url exceeds %d characters", i, maxURLLen)}
		case len([]rune(article.Description)) > maxDescriptionLen:
			return &domain.InvalidInputError{Detail: fmt.Sprintf("article %d description exceeds %d characters", i, maxDescriptionLen)}
		}
	}
	return nil
}

// articlesToSources builds the source stubs for the response, independent
// of which summarization path runs.
func articlesToSources(articles []domain.Article) []domain.Source {
	sources := make([]domain.Source, 0, len(articles))
	for _, article := range articles {
		title := article.Title
		if title == "" {
			title = "No title"
		}
		sources = append(sources, domain.Source{
			URL:        article.URL,
			Title:      title,
			IsVerified: false,
		})
	}
	return sources
}

func marshalContent(content any) (json.RawMessage, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("marshal summary content: %w", err)
	}
	return raw, nil
}

func (e *Engine) warn(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Warn(msg, args...)
	}
}
