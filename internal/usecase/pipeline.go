package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"NewsLens/internal/domain"
	"NewsLens/internal/ports"
)

// PipelineDeps wires all driven adapters into the query pipeline.
type PipelineDeps struct {
	Source     ports.ArticleSource
	Verifier   ports.SourceVerifier
	Summarizer ports.Summarizer
	Logger     *slog.Logger
}

// Pipeline sequences Retrieval, Verification and Summarization for one
// query. It is the outermost safety net: whatever the stages do, Process
// returns a structurally valid Summary and never an error.
type Pipeline struct {
	source     ports.ArticleSource
	verifier   ports.SourceVerifier
	summarizer ports.Summarizer
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		verifier:   deps.Verifier,
		summarizer: deps.Summarizer,
		logger:     deps.Logger,
	}
}

// Process runs the query through the stage sequence with a fixed debate
// format. Any stage error degrades to a placeholder Summary naming the
// query.
func (p *Pipeline) Process(ctx context.Context, query string) domain.Summary {
	p.debug("processing query", "query", query)

	sources, err := p.source.Fetch(ctx, query)
	if err != nil {
		p.error("retrieval failed", "error", err)
		return p.degradedSummary(query)
	}

	verified, err := p.verifier.Verify(ctx, sourcesToRecords(sources))
	if err != nil {
		p.error("verification failed", "error", err)
		return p.degradedSummary(query)
	}

	articles := sourcesToArticles(verified)
	content, summarySources, err := p.summarizer.Summarize(ctx, articles, domain.FormatDebate)
	if err != nil {
		p.error("summarization failed", "error", err)
		return p.degradedSummary(query)
	}

	p.debug("query processed", "verified_sources", len(verified))
	return domain.Summary{
		Format:  domain.FormatDebate,
		Content: content,
		Sources: summarySources,
	}
}

// sourcesToRecords converts typed sources into the loosely-typed records
// the verification boundary accepts.
func sourcesToRecords(sources []domain.Source) []map[string]any {
	records := make([]map[string]any, 0, len(sources))
	for _, source := range sources {
		record := map[string]any{
			"url":        source.URL,
			"title":      source.Title,
			"isVerified": source.IsVerified,
		}
		if source.BiasScore != nil {
			record["biasScore"] = *source.BiasScore
		}
		records = append(records, record)
	}
	return records
}

// sourcesToArticles rebuilds the description-bearing shape summarization
// expects. Sources do not carry body text forward, so the description
// falls back to a placeholder.
func sourcesToArticles(sources []domain.Source) []domain.Article {
	articles := make([]domain.Article, 0, len(sources))
	for _, source := range sources {
		title := source.Title
		if title == "" {
			title = "No title"
		}
		articles = append(articles, domain.Article{
			Title:       title,
			URL:         source.URL,
			Description: "No description available",
		})
	}
	return articles
}

// degradedSummary is the last-resort response after a stage exhausted its
// own fallbacks.
func (p *Pipeline) degradedSummary(query string) domain.Summary {
	content, err := json.Marshal(domain.DebateContent{
		Statement: fmt.Sprintf("Error processing query: %s", query),
		For:       []string{"Unable to retrieve articles at this time"},
		Against:   []string{"Please try again later"},
	})
	if err != nil {
		// A struct of strings cannot fail to marshal; keep the summary
		// well-formed regardless.
		content = json.RawMessage(`{"statement":"Error processing query","for":[],"against":[]}`)
	}
	return domain.Summary{
		Format:  domain.FormatDebate,
		Content: content,
		Sources: []domain.Source{},
	}
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) error(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Error(msg, args...)
	}
}
