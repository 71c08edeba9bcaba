// Package followup maps disclaimer tags to display strings and suggests the
// next questions a user is likely to ask.
package followup

import (
	"fmt"

	"github.com/pepdex-ai/pepdex/internal/domain"
	"github.com/pepdex-ai/pepdex/internal/lexicon"
)

// Engine resolves disclaimers and builds follow-up suggestions.
type Engine struct {
	lex *lexicon.Lexicon
}

// New creates the engine over the shared lexicon.
func New(lex *lexicon.Lexicon) *Engine {
	return &Engine{lex: lex}
}

// Disclaimers resolves tags to display strings. Unknown tags are dropped,
// never surfaced as raw identifiers.
func (e *Engine) Disclaimers(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if text, ok := e.lex.DisclaimerText(tag); ok {
			out = append(out, text)
		}
	}
	return out
}

// FollowUps suggests 3-4 next questions. The fallback order is fixed:
// first detected entity, else first detected condition, else a topic-keyed
// list, else the generic list. The order determines which information the
// user sees first and must be preserved.
func (e *Engine) FollowUps(c domain.Classification) []string {
	if len(c.Entities) > 0 {
		return entityFollowUps(c.Entities[0])
	}
	if len(c.Conditions) > 0 {
		return conditionFollowUps(c.Conditions[0])
	}
	if qs, ok := topicFollowUps[c.Topic]; ok {
		return qs
	}
	return genericFollowUps
}

func entityFollowUps(entity string) []string {
	return []string{
		fmt.Sprintf("What's the typical protocol and dosing for %s?", entity),
		fmt.Sprintf("What results do people report with %s?", entity),
		fmt.Sprintf("What side effects should I watch for with %s?", entity),
		fmt.Sprintf("Can %s be combined with other peptides?", entity),
	}
}

func conditionFollowUps(condition string) []string {
	return []string{
		fmt.Sprintf("Which peptides are most researched for %s?", condition),
		fmt.Sprintf("How long until results are typical for %s?", condition),
		fmt.Sprintf("What does the evidence look like for %s?", condition),
	}
}

var topicFollowUps = map[domain.TopicType][]string{
	domain.TopicResearch: {
		"Which peptides have human trial data?",
		"How strong is the animal study evidence?",
		"What are the main gaps in the research?",
	},
	domain.TopicDosing: {
		"How should doses be timed around meals?",
		"What's a sensible starting dose?",
		"How long is a typical cycle?",
	},
	domain.TopicSafety: {
		"What are the most common side effects?",
		"Are there known drug interactions?",
		"What should be monitored during use?",
	},
	domain.TopicSourcing: {
		"What should a certificate of analysis include?",
		"What are red flags when evaluating quality?",
		"How is peptide purity verified?",
	},
}

var genericFollowUps = []string{
	"What's the typical protocol and dosing for this?",
	"What side effects should I watch for?",
	"How long until I might see results?",
	"Can these peptides be combined with others?",
}
