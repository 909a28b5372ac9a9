package summarize

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"NewsLens/internal/domain"
)

// validateContent checks that the content blob satisfies the schema required
// by the format (plus the enhanced-debate flag for debates). Content that
// fails here is regenerated via the mock generator, never returned.
func validateContent(content json.RawMessage, format string, enhanced bool) error {
	switch {
	case format == domain.FormatVennDiagram:
		return validateVenn(content)
	case enhanced:
		return validateEnhancedDebate(content)
	default:
		return validateDebate(content)
	}
}

func validateDebate(content json.RawMessage) error {
	var debate domain.DebateContent
	if err := json.Unmarshal(content, &debate); err != nil {
		return fmt.Errorf("decode debate content: %w", err)
	}
	if debate.Statement == "" {
		return errors.New("debate content missing statement")
	}
	if len(debate.For) == 0 {
		return errors.New("debate content missing for arguments")
	}
	if len(debate.Against) == 0 {
		return errors.New("debate content missing against arguments")
	}
	return nil
}

func validateEnhancedDebate(content json.RawMessage) error {
	var debate domain.EnhancedDebateContent
	if err := json.Unmarshal(content, &debate); err != nil {
		return fmt.Errorf("decode enhanced debate content: %w", err)
	}
	if debate.Topic == "" {
		return errors.New("enhanced debate content missing topic")
	}
	if len(debate.Perspectives) == 0 {
		return errors.New("enhanced debate content missing perspectives")
	}
	for _, perspective := range debate.Perspectives {
		if perspective.Viewpoint == "" {
			return errors.New("perspective missing viewpoint")
		}
		if perspective.SupportLevel < 0 || perspective.SupportLevel > 1 {
			return fmt.Errorf("perspective %q has support_level outside [0,1]", perspective.Viewpoint)
		}
		for _, argument := range perspective.Arguments {
			switch argument.Strength {
			case domain.StrengthStrong, domain.StrengthModerate, domain.StrengthWeak:
			default:
				return fmt.Errorf("perspective %q has invalid argument strength %q", perspective.Viewpoint, argument.Strength)
			}
		}
	}
	if len(debate.ConsensusPoints) == 0 {
		return errors.New("enhanced debate content missing consensus_points")
	}
	if len(debate.DisputedPoints) == 0 {
		return errors.New("enhanced debate content missing disputed_points")
	}
	return nil
}

func validateVenn(content json.RawMessage) error {
	var venn domain.VennContent
	if err := json.Unmarshal(content, &venn); err != nil {
		return fmt.Errorf("decode venn content: %w", err)
	}
	if venn.TopicA == "" || venn.TopicB == "" {
		return errors.New("venn content missing topics")
	}
	if len(venn.UniqueA) == 0 || len(venn.UniqueB) == 0 {
		return errors.New("venn content missing unique points")
	}
	if len(venn.Common) == 0 {
		return errors.New("venn content missing common points")
	}
	return nil
}

// extractJSON recovers a JSON object from model output. Direct parsing is
// tried first; failing that, the substring between the first '{' and the
// last '}' is parsed, which tolerates prose wrapped around the object.
func extractJSON(text string) (json.RawMessage, error) {
	raw := []byte(text)
	if json.Valid(raw) && looksLikeObject(text) {
		return compact(raw)
	}

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end <= start {
		return nil, errors.New("no JSON object found in response")
	}

	candidate := []byte(text[start : end+1])
	if !json.Valid(candidate) {
		return nil, errors.New("embedded JSON object is malformed")
	}
	return compact(candidate)
}

func compact(raw []byte) (json.RawMessage, error) {
	var out json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func looksLikeObject(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "{")
}
