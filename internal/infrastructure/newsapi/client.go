package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"NewsLens/internal/config"
	"NewsLens/internal/domain"
	"NewsLens/internal/ports"
)

const (
	maxQueryLen      = 500
	maxArticles      = 20
	titleFromDescLen = 100
	fallbackTitle    = "Untitled"
	cooldownWindow   = 60 * time.Second
	defaultTimeout   = 8 * time.Second
)

// Characters stripped from queries before they reach the provider's
// query encoding. URL encoding itself is left to net/url.
var denylist = []string{"'", `"`, ";", "--", "/*", "*/", `\`}

// Provider describes one configured news API.
type Provider struct {
	Name     string
	APIKey   string
	BaseURL  string
	Enabled  bool
	PageSize int
	Timeout  time.Duration
}

// Client retrieves articles from the first enabled provider. Rate-limit
// failures are remembered per provider for 60 seconds so repeat calls
// short-circuit without touching the network.
type Client struct {
	providers []Provider
	http      *http.Client
	logger    *slog.Logger

	mu       sync.Mutex
	cooldown map[string]time.Time
	now      func() time.Time
}

var _ ports.ArticleSource = (*Client)(nil)

// NewClient wires providers from configuration. Providers without a usable
// credential are skipped at construction.
func NewClient(cfg config.NewsAPIConfig, log *slog.Logger) *Client {
	var providers []Provider
	if cfg.Configured() {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		pageSize := cfg.PageSize
		if pageSize <= 0 {
			pageSize = maxArticles
		}
		providers = append(providers, Provider{
			Name:     cfg.Name,
			APIKey:   cfg.APIKey,
			BaseURL:  cfg.BaseURL,
			Enabled:  true,
			PageSize: pageSize,
			Timeout:  timeout,
		})
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		providers: providers,
		http:      &http.Client{Timeout: timeout},
		logger:    log,
		cooldown:  map[string]time.Time{},
		now:       time.Now,
	}
}

// Fetch retrieves articles matching the query.
//
// Empty queries fail with InvalidInputError and a missing provider fails
// with ConfigurationError. Rate limits and timeouts surface as typed
// errors; every other provider-side problem degrades to an empty result.
func (c *Client) Fetch(ctx context.Context, query string) ([]domain.Source, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &domain.InvalidInputError{Detail: "query parameter is required"}
	}

	if runes := []rune(query); len(runes) > maxQueryLen {
		c.warn("query truncated", "from", len(runes), "to", maxQueryLen)
		query = string(runes[:maxQueryLen])
	}

	query = sanitizeQuery(query)

	provider, ok := c.enabledProvider()
	if !ok {
		c.error("no news providers configured")
		return nil, &domain.ConfigurationError{Service: "news search"}
	}

	if c.isRateLimited(provider.Name) {
		return nil, &domain.RateLimitedError{Service: provider.Name, RetryAfter: "60"}
	}

	return c.fetchFromProvider(ctx, provider, query)
}

func sanitizeQuery(query string) string {
	for _, token := range denylist {
		query = strings.ReplaceAll(query, token, "")
	}
	return query
}

func (c *Client) enabledProvider() (Provider, bool) {
	for _, p := range c.providers {
		if p.Enabled {
			return p, true
		}
	}
	return Provider{}, false
}

// isRateLimited reports whether the provider is inside its cooldown window.
// Expired entries are cleared on read; there is no background sweep.
func (c *Client) isRateLimited(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	failedAt, ok := c.cooldown[name]
	if !ok {
		return false
	}
	if c.now().Sub(failedAt) < cooldownWindow {
		return true
	}
	delete(c.cooldown, name)
	return false
}

func (c *Client) markRateLimited(name string) {
	c.mu.Lock()
	c.cooldown[name] = c.now()
	c.mu.Unlock()
}

func (c *Client) fetchFromProvider(ctx context.Context, provider Provider, query string) ([]domain.Source, error) {
	endpoint := strings.TrimSuffix(provider.BaseURL, "/") + "/everything"

	params := url.Values{}
	params.Set("q", query)
	params.Set("apiKey", provider.APIKey)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(provider.PageSize))
	params.Set("language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		c.error("build request", "error", err)
		return []domain.Source{}, nil
	}
	req.Header.Set("User-Agent", "NewsLens/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.error("provider request timeout", "provider", provider.Name)
			return nil, &domain.ServiceUnavailableError{Service: provider.Name}
		}
		c.error("provider request failed", "provider", provider.Name, "error", err)
		return []domain.Source{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.markRateLimited(provider.Name)
		return nil, &domain.RateLimitedError{Service: provider.Name, RetryAfter: "60"}
	}

	if resp.StatusCode != http.StatusOK {
		c.error("provider returned non-200", "provider", provider.Name, "status", resp.StatusCode)
		return []domain.Source{}, nil
	}

	var payload struct {
		Articles *[]rawArticle `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.error("decode provider response", "error", err)
		return []domain.Source{}, nil
	}
	if payload.Articles == nil {
		c.error("invalid provider response structure", "provider", provider.Name)
		return []domain.Source{}, nil
	}

	sources := transformArticles(*payload.Articles)
	c.debug("transformed provider response", "provider", provider.Name, "count", len(sources))
	return sources, nil
}

type rawArticle struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// transformArticles applies the result policy: cap at 20, require an
// http(s) URL, deduplicate by URL first-wins, and derive missing titles
// from the description.
func transformArticles(articles []rawArticle) []domain.Source {
	sources := make([]domain.Source, 0, len(articles))
	seen := map[string]struct{}{}

	for _, article := range articles {
		if len(sources) >= maxArticles {
			break
		}
		if !validURL(article.URL) {
			continue
		}
		if _, dup := seen[article.URL]; dup {
			continue
		}
		seen[article.URL] = struct{}{}

		title := flattenText(article.Title)
		if title == "" {
			title = titleFromDescription(article.Description)
		}

		sources = append(sources, domain.Source{
			URL:        article.URL,
			Title:      title,
			IsVerified: false,
		})
	}

	return sources
}

func titleFromDescription(description string) string {
	text := flattenText(description)
	if text == "" {
		return fallbackTitle
	}
	if runes := []rune(text); len(runes) > titleFromDescLen {
		return string(runes[:titleFromDescLen])
	}
	return text
}

func validURL(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (c *Client) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Client) warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}

func (c *Client) error(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Error(msg, args...)
	}
}

// String identifies the active provider for logs.
func (c *Client) String() string {
	if p, ok := c.enabledProvider(); ok {
		return fmt.Sprintf("newsapi(%s)", p.Name)
	}
	return "newsapi(unconfigured)"
}
