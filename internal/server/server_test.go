package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NewsLens/internal/domain"
	"NewsLens/internal/usecase"
)

type fixedSource struct{ sources []domain.Source }

func (f *fixedSource) Fetch(ctx context.Context, query string) ([]domain.Source, error) {
	return f.sources, nil
}

type passVerifier struct{}

func (passVerifier) Verify(ctx context.Context, sources []map[string]any) ([]domain.Source, error) {
	verified := make([]domain.Source, 0, len(sources))
	for _, record := range sources {
		url, _ := record["url"].(string)
		title, _ := record["title"].(string)
		verified = append(verified, domain.Source{URL: url, Title: title})
	}
	return verified, nil
}

type fixedSummarizer struct{}

func (fixedSummarizer) Summarize(ctx context.Context, articles []domain.Article, format string) (json.RawMessage, []domain.Source, error) {
	content, _ := json.Marshal(domain.DebateContent{
		Statement: "test statement",
		For:       []string{"f"},
		Against:   []string{"a"},
	})
	sources := make([]domain.Source, 0, len(articles))
	for _, article := range articles {
		sources = append(sources, domain.Source{URL: article.URL, Title: article.Title})
	}
	return content, sources, nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source: &fixedSource{sources: []domain.Source{
			{URL: "https://a.example/1", Title: "One"},
		}},
		Verifier:   passVerifier{},
		Summarizer: fixedSummarizer{},
	})
	return New(pipeline, "test", nil).Router()
}

func TestQueryEndpoint(t *testing.T) {
	t.Parallel()

	router := testRouter()

	body, _ := json.Marshal(QueryRequest{Query: "climate change"})
	req := httptest.NewRequest(http.MethodPost, "/query", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var summary domain.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, domain.FormatDebate, summary.Format)
	require.Len(t, summary.Sources, 1)
	assert.Equal(t, "https://a.example/1", summary.Sources[0].URL)
}

func TestQueryEndpointMissingBody(t *testing.T) {
	t.Parallel()

	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/query", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryEndpointMissingQueryField(t *testing.T) {
	t.Parallel()

	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/query", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["error"])
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var health map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, Version, health["version"])
	assert.Equal(t, "test", health["environment"])
}

func TestRootEndpoint(t *testing.T) {
	t.Parallel()

	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	router := testRouter()

	req := httptest.NewRequest(http.MethodOptions, "/query", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDPropagated(t *testing.T) {
	t.Parallel()

	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}
