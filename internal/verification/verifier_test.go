package verification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyEmptyInput(t *testing.T) {
	t.Parallel()

	verifier := NewVerifier(false, nil)

	sources, err := verifier.Verify(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestVerifyStampsUnverified(t *testing.T) {
	t.Parallel()

	verifier := NewVerifier(false, nil)

	sources, err := verifier.Verify(context.Background(), []map[string]any{
		{"url": "https://a.example/1", "title": "One", "isVerified": true},
		{"url": "https://a.example/2", "title": "Two"},
	})
	require.NoError(t, err)
	require.Len(t, sources, 2)

	for _, source := range sources {
		assert.False(t, source.IsVerified)
	}
}

func TestVerifyFlagDoesNotChangeBehavior(t *testing.T) {
	t.Parallel()

	input := []map[string]any{
		{"url": "https://a.example/1", "title": "One"},
	}

	disabled := NewVerifier(false, nil)
	enabled := NewVerifier(true, nil)

	fromDisabled, err := disabled.Verify(context.Background(), input)
	require.NoError(t, err)
	fromEnabled, err := enabled.Verify(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, fromDisabled, fromEnabled)
	assert.False(t, fromEnabled[0].IsVerified)
}

func TestVerifyDropsMalformedEntries(t *testing.T) {
	t.Parallel()

	verifier := NewVerifier(false, nil)

	sources, err := verifier.Verify(context.Background(), []map[string]any{
		nil,
		{"title": "missing url"},
		{"url": 42, "title": "numeric url"},
		{"url": "https://a.example/1"},
		{"url": "https://a.example/2", "title": ""},
		{"url": "https://a.example/3", "title": "Kept"},
	})
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "Kept", sources[0].Title)
}

func TestVerifyPreservesBiasScore(t *testing.T) {
	t.Parallel()

	verifier := NewVerifier(false, nil)

	sources, err := verifier.Verify(context.Background(), []map[string]any{
		{"url": "https://a.example/1", "title": "Scored", "biasScore": 0.25},
		{"url": "https://a.example/2", "title": "Unscored"},
	})
	require.NoError(t, err)
	require.Len(t, sources, 2)

	require.NotNil(t, sources[0].BiasScore)
	assert.InDelta(t, 0.25, *sources[0].BiasScore, 1e-9)
	assert.Nil(t, sources[1].BiasScore)
}

func TestFallbackSources(t *testing.T) {
	t.Parallel()

	verifier := NewVerifier(false, nil)

	fallback := verifier.fallbackSources([]map[string]any{
		{"url": "https://a.example/1", "title": "Fine"},
		{"title": "No URL"},
		{"url": "https://a.example/2"},
	})
	require.Len(t, fallback, 3)

	assert.Equal(t, "Fine", fallback[0].Title)
	assert.Equal(t, "", fallback[1].URL)
	assert.Equal(t, "Unknown", fallback[2].Title)
	for _, source := range fallback {
		assert.False(t, source.IsVerified)
	}
}
