package classify

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pepdex-ai/pepdex/internal/domain"
	"github.com/pepdex-ai/pepdex/internal/lexicon"
)

// Service is the rule-based query classifier. Classify never fails: on any
// internal panic it degrades to the general/low classification, because a
// classification failure must not keep a user from getting some answer.
type Service struct {
	lex    *lexicon.Lexicon
	rules  []rule
	logger *zap.Logger
}

// New creates a classifier over the given lexicon.
func New(lex *lexicon.Lexicon, logger *zap.Logger) *Service {
	return &Service{lex: lex, rules: topicRules(lex), logger: logger}
}

// Classify turns raw query text into a classification. Pure function of the
// text: classifying the same text twice yields identical results.
func (s *Service) Classify(query string) (c domain.Classification) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("classifier panicked, degrading to general",
				zap.Any("panic", r))
			c = degradedClassification()
		}
	}()

	q := strings.ToLower(query)

	entities := detect(q, s.lex.Compounds())
	conditions := detect(q, s.lex.Conditions())
	topic, confidence := s.classifyTopic(q)
	risk := s.assessRisk(q, topic)

	return domain.Classification{
		Topic:          topic,
		Intent:         intentFor(topic, entities),
		Entities:       entities,
		Conditions:     conditions,
		Risk:           risk,
		DisclaimerTags: disclaimerTags(topic, risk),
		Strategy:       strategyFor(topic),
		Confidence:     confidence,
	}
}

// detect scans the lowercased query against a synonym table, accumulating
// canonical names in first-seen order without duplicates.
func detect(query string, table []lexicon.Synonym) []string {
	var found []string
	seen := make(map[string]struct{})
	for _, syn := range table {
		if !strings.Contains(query, syn.Surface) {
			continue
		}
		if _, ok := seen[syn.Canonical]; ok {
			continue
		}
		seen[syn.Canonical] = struct{}{}
		found = append(found, syn.Canonical)
	}
	return found
}

// classifyTopic runs the priority cascade; first match wins.
func (s *Service) classifyTopic(query string) (domain.TopicType, float64) {
	for _, r := range s.rules {
		if r.matches(query) {
			return r.topic, r.confidence
		}
	}
	return domain.TopicGeneral, confidenceGeneral
}

// assessRisk is independent of the topic cascade. Blocked phrases override
// everything; otherwise risk derives from the topic.
func (s *Service) assessRisk(query string, topic domain.TopicType) domain.RiskLevel {
	for _, phrase := range s.lex.BlockedPhrases() {
		if strings.Contains(query, phrase) {
			return domain.RiskBlocked
		}
	}

	switch topic {
	case domain.TopicSourcing, domain.TopicDosing:
		return domain.RiskHigh
	case domain.TopicSafety, domain.TopicStacking:
		return domain.RiskMedium
	case domain.TopicResearch, domain.TopicMechanism, domain.TopicComparison,
		domain.TopicExperience, domain.TopicPreparation, domain.TopicGeneral,
		domain.TopicOffTopic:
		return domain.RiskLow
	default:
		return domain.RiskLow
	}
}

// disclaimerTags selects disclaimers: the baseline tag always, the rest by
// risk and topic. The regulatory-status tag is appended unconditionally
// rather than looked up per detected compound.
func disclaimerTags(topic domain.TopicType, risk domain.RiskLevel) []string {
	tags := []string{lexicon.TagResearchOnly}

	if risk == domain.RiskHigh || risk == domain.RiskMedium {
		tags = append(tags, lexicon.TagConsultProfessional)
	}
	if topic == domain.TopicSourcing {
		tags = append(tags, lexicon.TagSourcingLegal, lexicon.TagVerifySource)
	}
	if topic == domain.TopicDosing {
		tags = append(tags, lexicon.TagDosingIndividual)
	}
	if topic == domain.TopicSafety {
		tags = append(tags, lexicon.TagSideEffects)
	}

	return append(tags, lexicon.TagRegulatoryStatus)
}

// strategyFor maps topic to the retrieval strategy.
func strategyFor(topic domain.TopicType) domain.RetrievalStrategy {
	switch topic {
	case domain.TopicSourcing:
		return domain.StrategyMinimal
	case domain.TopicResearch:
		return domain.StrategyResearchHeavy
	case domain.TopicExperience:
		return domain.StrategyExperienceHeavy
	case domain.TopicDosing, domain.TopicStacking:
		return domain.StrategyBalanced
	case domain.TopicMechanism, domain.TopicComparison, domain.TopicSafety,
		domain.TopicPreparation, domain.TopicGeneral, domain.TopicOffTopic:
		return domain.StrategyBalanced
	default:
		return domain.StrategyBalanced
	}
}

// intentFor renders the human-readable intent line for logging and telemetry.
func intentFor(topic domain.TopicType, entities []string) string {
	subject := "peptides"
	if len(entities) > 0 {
		subject = strings.Join(entities, ", ")
	}

	switch topic {
	case domain.TopicResearch:
		return fmt.Sprintf("Seeking research information about %s", subject)
	case domain.TopicMechanism:
		return fmt.Sprintf("Understanding how %s works", subject)
	case domain.TopicDosing:
		return fmt.Sprintf("Looking for dosing/protocol information for %s", subject)
	case domain.TopicComparison:
		return "Comparing peptides or protocols"
	case domain.TopicSafety:
		return fmt.Sprintf("Concerned about safety/side effects of %s", subject)
	case domain.TopicSourcing:
		return fmt.Sprintf("Looking for where to obtain %s", subject)
	case domain.TopicExperience:
		return fmt.Sprintf("Interested in user experiences with %s", subject)
	case domain.TopicStacking:
		return fmt.Sprintf("Interested in combining %s with other peptides", subject)
	case domain.TopicPreparation:
		return fmt.Sprintf("Questions about preparing/storing %s", subject)
	case domain.TopicGeneral:
		return fmt.Sprintf("General questions about %s", subject)
	case domain.TopicOffTopic:
		return "Question not related to peptides"
	default:
		return "General peptide inquiry"
	}
}

// degradedClassification is the safe default used when classification itself
// fails. It still carries the baseline disclaimer.
func degradedClassification() domain.Classification {
	return domain.Classification{
		Topic:          domain.TopicGeneral,
		Intent:         "General peptide inquiry",
		Risk:           domain.RiskLow,
		DisclaimerTags: []string{lexicon.TagResearchOnly, lexicon.TagRegulatoryStatus},
		Strategy:       domain.StrategyBalanced,
		Confidence:     0,
	}
}
