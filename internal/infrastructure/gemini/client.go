package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"NewsLens/internal/config"
	"NewsLens/internal/domain"
	"NewsLens/internal/ports"
)

const (
	serviceName       = "AI summarization"
	defaultMaxRetries = 3
	defaultRetryAfter = "60"
	maxRateLimitDelay = 8 * time.Second
	maxTransientDelay = 4 * time.Second
)

// Client talks to a Gemini-style generateContent endpoint. One http.Client
// is shared across calls; authentication rides on the key query parameter.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxRetries  int
	http        *http.Client
	logger      *slog.Logger

	// sleep is swapped out in tests so the retry ladder runs without
	// wall-clock delays.
	sleep func(time.Duration)
}

var _ ports.TextGenerator = (*Client)(nil)

// NewClient builds a client from configuration.
func NewClient(cfg config.GeminiConfig, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxRetries:  defaultMaxRetries,
		http:        &http.Client{Timeout: timeout},
		logger:      log,
		sleep:       time.Sleep,
	}
}

// Configured reports whether a usable credential is present. The documented
// placeholder value does not count.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiKey != "your_gemini_key_here"
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the prompt and returns the first candidate's first text
// part. Transient failures are retried with exponential backoff up to the
// retry budget; credential and content-policy failures are not retried.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if !c.Configured() {
		return "", &domain.ConfigurationError{Service: serviceName}
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      c.temperature,
			MaxOutputTokens:  maxTokens,
			ResponseMimeType: "application/json",
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate payload: %w", err)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	endpoint := fmt.Sprintf("%s/%s:generateContent?%s", c.baseURL, c.model, params.Encode())

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		text, retry, err := c.attempt(ctx, endpoint, body, attempt)
		if err == nil {
			return text, nil
		}
		if retry && attempt < c.maxRetries {
			continue
		}
		return "", err
	}

	// Unreachable: the loop always returns on its final attempt.
	return "", &domain.ServiceUnavailableError{Service: serviceName}
}

// attempt performs one request. retry reports whether the failure class is
// transient; the backoff sleep has already happened by the time it returns.
func (c *Client) attempt(ctx context.Context, endpoint string, body []byte, attempt int) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.warn("llm request timeout", "attempt", attempt)
			c.backoffTransient(attempt)
			return "", true, &domain.TimeoutError{Service: serviceName}
		}
		c.warn("llm connection error", "attempt", attempt, "error", err)
		c.backoffTransient(attempt)
		return "", true, &domain.ConnectionError{Service: serviceName}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.error("llm authentication failed")
		return "", false, &domain.ConfigurationError{Service: serviceName}

	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		if retryAfter == "" {
			retryAfter = defaultRetryAfter
		}
		c.warn("llm rate limit exceeded", "attempt", attempt, "retry_after", retryAfter)
		c.backoffRateLimit(attempt)
		return "", true, &domain.RateLimitedError{Service: serviceName, RetryAfter: retryAfter}

	case resp.StatusCode >= http.StatusInternalServerError:
		c.error("llm server error", "status", resp.StatusCode, "attempt", attempt)
		c.backoffTransient(attempt)
		return "", true, &domain.ServiceUnavailableError{Service: serviceName}

	case resp.StatusCode == http.StatusBadRequest:
		var payload apiError
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&payload)
		if isContentPolicy(payload.Error.Type) {
			c.warn("llm content filtering triggered")
			return "", false, &domain.ContentPolicyError{Service: serviceName}
		}
		c.error("llm bad request", "detail", payload.Error.Message)
		return "", false, &domain.BadRequestError{Service: serviceName, Detail: payload.Error.Message}

	case resp.StatusCode == http.StatusOK:
		text, err := extractText(resp.Body)
		if err != nil {
			c.error("unexpected llm response format", "error", err)
			return "", false, &domain.ResponseFormatError{Service: serviceName}
		}
		return text, false, nil

	default:
		c.error("unexpected llm response status", "status", resp.StatusCode)
		return "", false, &domain.BadRequestError{
			Service: serviceName,
			Detail:  fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}
}

func extractText(body io.Reader) (string, error) {
	var payload generateResponse
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(payload.Candidates) == 0 {
		return "", errors.New("response has no candidates")
	}
	parts := payload.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", errors.New("candidate has no content parts")
	}
	return parts[0].Text, nil
}

func isContentPolicy(errorType string) bool {
	lower := strings.ToLower(errorType)
	return strings.Contains(lower, "content_filter") || strings.Contains(lower, "policy")
}

// backoffRateLimit sleeps min(2^attempt + attempt*0.1, 8) seconds.
func (c *Client) backoffRateLimit(attempt int) {
	if attempt >= c.maxRetries {
		return
	}
	delay := math.Min(math.Pow(2, float64(attempt))+float64(attempt)*0.1, maxRateLimitDelay.Seconds())
	c.sleep(time.Duration(delay * float64(time.Second)))
}

// backoffTransient sleeps min(2^attempt, 4) seconds.
func (c *Client) backoffTransient(attempt int) {
	if attempt >= c.maxRetries {
		return
	}
	delay := math.Min(math.Pow(2, float64(attempt)), maxTransientDelay.Seconds())
	c.sleep(time.Duration(delay * float64(time.Second)))
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
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
