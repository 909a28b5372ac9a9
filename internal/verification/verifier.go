package verification

import (
	"context"
	"log/slog"

	"NewsLens/internal/domain"
	"NewsLens/internal/ports"
)

const fallbackTitle = "Unknown"

// Verifier stamps retrieved sources with an authenticity flag. The real
// trust-scoring algorithm does not exist yet: both flag branches delegate
// to the mock stamping, and every source leaves unverified. The enabled
// branch is kept as a distinct method so a real implementation can slot in
// without touching callers.
type Verifier struct {
	realEnabled bool
	logger      *slog.Logger
}

var _ ports.SourceVerifier = (*Verifier)(nil)

// NewVerifier reads the feature flag once at construction.
func NewVerifier(realEnabled bool, log *slog.Logger) *Verifier {
	if log != nil {
		log.Info("verifier initialized", "real_verification", realEnabled)
	}
	return &Verifier{realEnabled: realEnabled, logger: log}
}

// Verify validates the shape of raw source records and stamps each with
// IsVerified=false. Malformed entries are dropped; if validation itself
// fails the original inputs are coerced into a structurally valid fallback
// slice. Verify never returns an error for that class of failure.
func (v *Verifier) Verify(ctx context.Context, sources []map[string]any) ([]domain.Source, error) {
	if len(sources) == 0 {
		return []domain.Source{}, nil
	}

	validated, err := v.validateSources(sources)
	if err != nil {
		v.warn("source validation failed, using fallback", "error", err)
		return v.fallbackSources(sources), nil
	}

	if v.realEnabled {
		return v.performRealVerification(validated), nil
	}
	return v.performMockVerification(validated), nil
}

func (v *Verifier) validateSources(sources []map[string]any) ([]domain.Source, error) {
	validated := make([]domain.Source, 0, len(sources))

	for i, source := range sources {
		if source == nil {
			v.warn("source is not a structured record, skipping", "index", i)
			continue
		}

		url, ok := source["url"].(string)
		if !ok || url == "" {
			v.warn("source missing or invalid url, skipping", "index", i)
			continue
		}

		title, ok := source["title"].(string)
		if !ok || title == "" {
			v.warn("source missing or invalid title, skipping", "index", i)
			continue
		}

		validated = append(validated, domain.Source{
			URL:       url,
			Title:     title,
			BiasScore: numericField(source, "biasScore"),
		})
	}

	v.debug("validated sources", "kept", len(validated), "received", len(sources))
	return validated, nil
}

// performRealVerification is the swap point for a future trust-scoring
// algorithm. Until that exists it delegates to the mock stamping even when
// the feature flag is on.
func (v *Verifier) performRealVerification(sources []domain.Source) []domain.Source {
	v.debug("real verification not yet implemented, using mock behavior")
	return v.performMockVerification(sources)
}

func (v *Verifier) performMockVerification(sources []domain.Source) []domain.Source {
	verified := make([]domain.Source, 0, len(sources))
	for _, source := range sources {
		verified = append(verified, domain.Source{
			URL:        source.URL,
			Title:      source.Title,
			IsVerified: false,
			BiasScore:  source.BiasScore,
		})
	}
	return verified
}

// fallbackSources rebuilds something structurally valid straight from the
// raw inputs when validation blows up.
func (v *Verifier) fallbackSources(sources []map[string]any) []domain.Source {
	fallback := make([]domain.Source, 0, len(sources))
	for _, source := range sources {
		url, _ := source["url"].(string)
		title, _ := source["title"].(string)
		if title == "" {
			title = fallbackTitle
		}
		fallback = append(fallback, domain.Source{
			URL:        url,
			Title:      title,
			IsVerified: false,
			BiasScore:  numericField(source, "biasScore"),
		})
	}
	return fallback
}

func numericField(source map[string]any, key string) *float64 {
	switch value := source[key].(type) {
	case float64:
		return &value
	case int:
		f := float64(value)
		return &f
	default:
		return nil
	}
}

func (v *Verifier) debug(msg string, args ...any) {
	if v.logger != nil {
		v.logger.Debug(msg, args...)
	}
}

func (v *Verifier) warn(msg string, args ...any) {
	if v.logger != nil {
		v.logger.Warn(msg, args...)
	}
}
