// Package safety post-processes generated text, redacting vendor and source
// solicitation the generation model may have leaked despite the prompt. It
// runs on every non-blocked response regardless of topic.
package safety

import "regexp"

// RedactionMarker replaces every matched vendor phrase.
const RedactionMarker = "[vendor information removed - please research independently]"

// vendorPatterns is the ordered substitution list: purchase phrasing first,
// then bare domain-like strings. All matching is case-insensitive.
var vendorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)you can buy[^.\n]*?from`),
	regexp.MustCompile(`(?i)order from`),
	regexp.MustCompile(`(?i)purchase at`),
	regexp.MustCompile(`(?i)available at`),
	regexp.MustCompile(`(?i)\b(?:www\.)?[a-z0-9-]+\.(?:com|net|org|shop)\b`),
}

// Filter redacts vendor solicitation from generated text.
type Filter struct {
	patterns []*regexp.Regexp
}

// New creates the safety filter with the fixed pattern list.
func New() *Filter {
	return &Filter{patterns: vendorPatterns}
}

// Apply returns the text with every vendor pattern replaced by the redaction
// marker, and the number of substitutions made.
func (f *Filter) Apply(text string) (string, int) {
	redactions := 0
	for _, p := range f.patterns {
		text = p.ReplaceAllStringFunc(text, func(string) string {
			redactions++
			return RedactionMarker
		})
	}
	return text, redactions
}
