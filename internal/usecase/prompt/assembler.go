// Package prompt builds the instruction text and message sequence handed to
// the generation backend, specialized by classification and user profile.
package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pepdex-ai/pepdex/internal/domain"
)

const (
	// NoContextSentence is emitted when retrieval produced nothing. It is
	// the signal the generation model uses to avoid fabricating citations,
	// so the context block is never left empty.
	NoContextSentence = "No specific research context is available for this query."

	maxContextDocs      = 10
	referenceContentCap = 500
	outcomeNarrativeCap = 300
	maxHistoryTurns     = 10
)

// Assembler builds generation message sequences.
type Assembler struct{}

// New creates a prompt assembler.
func New() *Assembler { return &Assembler{} }

// Build produces the message sequence for one generation call: a system
// message (base instruction, topic addendum, optional profile block, context
// block), the most recent conversation turns, and the current query last.
func (a *Assembler) Build(
	c domain.Classification,
	docs []domain.RetrievedDocument,
	profile *domain.Profile,
	history []domain.Message,
	query string,
) []domain.Message {
	var sys strings.Builder
	sys.WriteString(basePrompt)
	if addendum, ok := topicAddenda[c.Topic]; ok {
		sys.WriteString("\n")
		sys.WriteString(addendum)
	}
	if profile != nil {
		sys.WriteString("\n")
		sys.WriteString(profileBlock(profile))
	}
	sys.WriteString("\n")
	sys.WriteString(contextBlock(docs))

	messages := make([]domain.Message, 0, len(history)+2)
	messages = append(messages, domain.Message{Role: domain.RoleSystem, Content: sys.String()})

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	messages = append(messages, history...)

	return append(messages, domain.Message{Role: domain.RoleUser, Content: query})
}

// profileBlock summarizes the user snapshot. Omitted entirely (the caller
// passes nil) when no profile exists.
func profileBlock(p *domain.Profile) string {
	expertise := p.ExpertiseLevel
	if expertise == "" {
		expertise = "unknown"
	}
	return fmt.Sprintf(`USER CONTEXT:
- Expertise level: %s
- Primary goals: %s
- Past experience: %s
- Known sensitivities: %s

Tailor your response to their experience level and goals.
`,
		expertise,
		strings.Join(p.Goals, ", "),
		strings.Join(p.PastCompounds, ", "),
		strings.Join(p.Sensitivities, ", "),
	)
}

// contextBlock renders retrieved documents as numbered entries, capped at
// maxContextDocs. Reference material and outcome narratives render different
// fields with different truncation caps.
func contextBlock(docs []domain.RetrievedDocument) string {
	if len(docs) == 0 {
		return NoContextSentence
	}

	var b strings.Builder
	b.WriteString("## RELEVANT RESEARCH CONTEXT:\n")

	for i, doc := range docs {
		if i == maxContextDocs {
			break
		}
		switch doc.Collection {
		case domain.CollectionOutcomes:
			fmt.Fprintf(&b, "\n[%d] User Journey: %s\nDuration: %s weeks\nEfficacy: %s/10\nSummary: %s\n",
				i+1,
				orDefault(doc.Property("peptide"), "Unknown peptide"),
				orDefault(doc.Property("duration_weeks"), "N/A"),
				orDefault(doc.Property("overall_efficacy"), "N/A"),
				truncate(doc.Property("outcome_narrative"), outcomeNarrativeCap),
			)
		default:
			fmt.Fprintf(&b, "\n[%d] %s\nSource: %s\nCitation: %s\nContent: %s\n",
				i+1,
				orDefault(doc.Property("title"), "Untitled"),
				strings.ToUpper(orDefault(doc.Property("source_type"), "unknown")),
				orDefault(doc.Property("citation"), "N/A"),
				truncate(doc.Property("content"), referenceContentCap),
			)
		}
	}

	return b.String()
}

// truncate cuts at the last rune boundary at or below limit so a multibyte
// character is never split.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
