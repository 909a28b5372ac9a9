package summarize

import (
	"fmt"

	"NewsLens/internal/domain"
)

// mockContent builds deterministic placeholder content for the given
// format/flag combination. It is a pure function of its inputs and must
// stay schema-identical to live LLM output, because the engine swaps
// between the two silently.
func mockContent(articleCount int, format string, enhanced bool) any {
	if format == domain.FormatVennDiagram {
		return domain.VennContent{
			TopicA: "Perspective A",
			TopicB: "Perspective B",
			UniqueA: []string{
				"Point unique to first perspective",
				"Another unique point for A",
				"Third unique point for A",
			},
			UniqueB: []string{
				"Point unique to second perspective",
				"Another unique point for B",
				"Third unique point for B",
			},
			Common: []string{
				"Shared point between perspectives",
				"Common ground found",
				"Mutual understanding area",
			},
		}
	}

	if enhanced {
		return domain.EnhancedDebateContent{
			Topic: fmt.Sprintf("Analysis based on %d news sources", articleCount),
			Perspectives: []domain.Perspective{
				{
					Viewpoint:    "Supporting viewpoint",
					Position:     "The retrieved coverage supports the topic",
					SupportLevel: 0.6,
					Arguments: []domain.PerspectiveArgument{
						{
							Point:         "Supporting argument based on retrieved articles",
							SourceIndices: []int{0},
							Strength:      domain.StrengthModerate,
						},
						{
							Point:         "Additional evidence from news sources",
							SourceIndices: []int{0},
							Strength:      domain.StrengthWeak,
						},
					},
				},
				{
					Viewpoint:    "Opposing viewpoint",
					Position:     "The retrieved coverage challenges the topic",
					SupportLevel: 0.4,
					Arguments: []domain.PerspectiveArgument{
						{
							Point:         "Alternative viewpoint from articles",
							SourceIndices: []int{0},
							Strength:      domain.StrengthModerate,
						},
						{
							Point:         "Contrasting perspective presented",
							SourceIndices: []int{0},
							Strength:      domain.StrengthWeak,
						},
					},
				},
			},
			ConsensusPoints: []domain.SourcedPoint{
				{Point: "The topic is actively covered by news sources", SourceIndices: []int{0}},
			},
			DisputedPoints: []domain.DisputedPoint{
				{
					Point:                "Interpretation of the retrieved coverage",
					PerspectivesInvolved: []string{"Supporting viewpoint", "Opposing viewpoint"},
				},
			},
		}
	}

	return domain.DebateContent{
		Statement: fmt.Sprintf("Analysis based on %d news sources", articleCount),
		For: []string{
			"Supporting argument based on retrieved articles",
			"Additional evidence from news sources",
			"Further supporting perspective",
		},
		Against: []string{
			"Alternative viewpoint from articles",
			"Counter-evidence from sources",
			"Contrasting perspective presented",
		},
	}
}

// emptyContent is the no-data placeholder returned when there is nothing to
// summarize. No LLM call is made for it.
func emptyContent(format string, enhanced bool) any {
	if format == domain.FormatVennDiagram {
		return domain.VennContent{
			TopicA:  "No data",
			TopicB:  "No data",
			UniqueA: []string{"No articles available"},
			UniqueB: []string{"No articles available"},
			Common:  []string{"No common information available"},
		}
	}

	if enhanced {
		return domain.EnhancedDebateContent{
			Topic: "No articles found for analysis",
			Perspectives: []domain.Perspective{
				{
					Viewpoint:    "No data",
					Position:     "No articles available",
					SupportLevel: 0,
					Arguments: []domain.PerspectiveArgument{
						{Point: "No arguments available", SourceIndices: []int{}, Strength: domain.StrengthWeak},
					},
				},
			},
			ConsensusPoints: []domain.SourcedPoint{
				{Point: "No consensus information available", SourceIndices: []int{}},
			},
			DisputedPoints: []domain.DisputedPoint{
				{Point: "No disputed information available", PerspectivesInvolved: []string{}},
			},
		}
	}

	return domain.DebateContent{
		Statement: "No articles found for analysis",
		For:       []string{"No supporting arguments available"},
		Against:   []string{"No opposing arguments available"},
	}
}
