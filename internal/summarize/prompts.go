package summarize

import (
	"fmt"
	"strings"

	"NewsLens/internal/domain"
)

const (
	promptArticleLimit = 5
	promptExcerptLen   = 200
)

// articlesBlock renders the numbered article excerpt shared by all prompt
// templates: title, url and the first 200 characters of the description.
func articlesBlock(articles []domain.Article) string {
	var b strings.Builder
	for i, article := range articles {
		if i >= promptArticleLimit {
			break
		}
		title := article.Title
		if title == "" {
			title = "No title"
		}
		url := article.URL
		if url == "" {
			url = "No URL"
		}
		desc := article.Description
		if desc == "" {
			desc = "No description"
		}
		if runes := []rune(desc); len(runes) > promptExcerptLen {
			desc = string(runes[:promptExcerptLen])
		}
		fmt.Fprintf(&b, "\n%d. %s\n   URL: %s\n   Content: %s...\n", i+1, title, url, desc)
	}
	return b.String()
}

func debatePrompt(query string, articles []domain.Article) string {
	return fmt.Sprintf(`Analyze the following news articles about %q and create a balanced debate summary.

Articles:
%s

Please provide a JSON response in this exact format:
{
    "statement": "Clear thesis statement about %s",
    "for": [
        "Supporting argument 1 with specific reference to sources",
        "Supporting argument 2 with specific reference to sources",
        "Supporting argument 3 with specific reference to sources"
    ],
    "against": [
        "Counter-argument 1 with specific reference to sources",
        "Counter-argument 2 with specific reference to sources",
        "Counter-argument 3 with specific reference to sources"
    ]
}

Requirements:
- Reference specific articles in your arguments
- Be factual and balanced
- Provide 3 arguments for each side
- Keep each argument under 150 characters
- Return only valid JSON
`, query, articlesBlock(articles), query)
}

func enhancedDebatePrompt(query string, articles []domain.Article) string {
	return fmt.Sprintf(`Analyze the following news articles about %q and create a multi-perspective debate summary.

Articles:
%s

Please provide a JSON response in this exact format:
{
    "topic": "Concise topic statement about %s",
    "perspectives": [
        {
            "viewpoint": "Name of this perspective",
            "position": "One-sentence position statement",
            "support_level": 0.6,
            "arguments": [
                {"point": "Argument text", "source_indices": [0], "strength": "strong"}
            ]
        }
    ],
    "consensus_points": [
        {"point": "Point all perspectives agree on", "source_indices": [0, 1]}
    ],
    "disputed_points": [
        {"point": "Point the perspectives contest", "perspectives_involved": ["Perspective name"]}
    ]
}

Requirements:
- Identify 2-3 distinct perspectives, each with 2-3 arguments
- source_indices are 0-based indexes into the article list above
- support_level is a number between 0 and 1
- strength must be one of: strong, moderate, weak
- Include at least one consensus point and one disputed point
- Return only valid JSON
`, query, articlesBlock(articles), query)
}

func vennPrompt(query string, articles []domain.Article) string {
	return fmt.Sprintf(`Analyze the following news articles about %q and create a comparison summary suitable for a Venn diagram visualization.

Articles:
%s

Please provide a JSON response in this exact format:
{
    "topic_a": "First perspective or entity name",
    "topic_b": "Second perspective or entity name",
    "unique_a": [
        "Point unique to topic A",
        "Another unique point for A",
        "Third unique point for A"
    ],
    "unique_b": [
        "Point unique to topic B",
        "Another unique point for B",
        "Third unique point for B"
    ],
    "common": [
        "Shared point between both topics",
        "Another shared point",
        "Third shared point"
    ]
}

Requirements:
- Find two main perspectives/entities to compare
- Identify what's unique to each and what they share
- Reference the articles in your analysis
- Keep each point under 100 characters
- Return only valid JSON
`, query, articlesBlock(articles))
}
