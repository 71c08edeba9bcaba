package classify

import (
	"strings"

	"github.com/pepdex-ai/pepdex/internal/domain"
	"github.com/pepdex-ai/pepdex/internal/lexicon"
)

// Confidence is a fixed property of which rule fired, not of match density.
const (
	confidenceSourcing    = 0.9
	confidenceSafety      = 0.85
	confidenceDosing      = 0.85
	confidenceComparison  = 0.8
	confidenceMechanism   = 0.8
	confidenceStacking    = 0.8
	confidencePreparation = 0.85
	confidenceExperience  = 0.75
	confidenceResearch    = 0.8
	confidenceGeneral     = 0.6
)

// rule is one entry of the topic cascade: first match wins.
type rule struct {
	matches    func(query string) bool
	topic      domain.TopicType
	confidence float64
}

// topicRules builds the priority-ordered cascade. The order is a designed
// tie-break for overlapping keyword groups (a query can contain both a safety
// word and a dosing word) and must not be reordered.
func topicRules(lex *lexicon.Lexicon) []rule {
	return []rule{
		{containsAny(lex.SourcingKeywords()), domain.TopicSourcing, confidenceSourcing},
		{containsAny(lex.SafetyKeywords()), domain.TopicSafety, confidenceSafety},
		{containsAny(lex.DosingKeywords()), domain.TopicDosing, confidenceDosing},
		{containsAny(lex.ComparisonMarkers()), domain.TopicComparison, confidenceComparison},
		{containsAny(lex.MechanismMarkers()), domain.TopicMechanism, confidenceMechanism},
		{containsAny(lex.StackingMarkers()), domain.TopicStacking, confidenceStacking},
		{containsAny(lex.PreparationMarkers()), domain.TopicPreparation, confidencePreparation},
		{containsAny(lex.ExperienceMarkers()), domain.TopicExperience, confidenceExperience},
		{containsAny(lex.ResearchMarkers()), domain.TopicResearch, confidenceResearch},
	}
}

func containsAny(keywords []string) func(string) bool {
	return func(query string) bool {
		for _, kw := range keywords {
			if strings.Contains(query, kw) {
				return true
			}
		}
		return false
	}
}
