// Package lexicon holds the static tables the pipeline classifies against:
// compound synonyms, condition keywords, topic keyword groups, blocked
// phrases and disclaimer texts. A Lexicon is built once at process start and
// is never mutated afterwards, so it is safe for unlimited concurrent readers.
package lexicon

// Lexicon is the immutable table set injected into the classifier and the
// disclaimer/follow-up engine.
type Lexicon struct {
	compounds  []Synonym
	conditions []Synonym

	sourcing    []string
	safety      []string
	dosing      []string
	comparison  []string
	mechanism   []string
	stacking    []string
	preparation []string
	experience  []string
	research    []string
	blocked     []string

	disclaimers map[string]string
}

// New builds the process-wide lexicon.
func New() *Lexicon {
	return &Lexicon{
		compounds:   compoundSynonyms,
		conditions:  conditionSynonyms,
		sourcing:    sourcingKeywords,
		safety:      safetyKeywords,
		dosing:      dosingKeywords,
		comparison:  comparisonMarkers,
		mechanism:   mechanismMarkers,
		stacking:    stackingMarkers,
		preparation: preparationMarkers,
		experience:  experienceMarkers,
		research:    researchMarkers,
		blocked:     blockedPhrases,
		disclaimers: disclaimerTexts,
	}
}

// Compounds returns the ordered compound synonym table.
func (l *Lexicon) Compounds() []Synonym { return l.compounds }

// Conditions returns the ordered condition synonym table.
func (l *Lexicon) Conditions() []Synonym { return l.conditions }

// Keyword group accessors.
func (l *Lexicon) SourcingKeywords() []string    { return l.sourcing }
func (l *Lexicon) SafetyKeywords() []string      { return l.safety }
func (l *Lexicon) DosingKeywords() []string      { return l.dosing }
func (l *Lexicon) ComparisonMarkers() []string   { return l.comparison }
func (l *Lexicon) MechanismMarkers() []string    { return l.mechanism }
func (l *Lexicon) StackingMarkers() []string     { return l.stacking }
func (l *Lexicon) PreparationMarkers() []string  { return l.preparation }
func (l *Lexicon) ExperienceMarkers() []string   { return l.experience }
func (l *Lexicon) ResearchMarkers() []string     { return l.research }
func (l *Lexicon) BlockedPhrases() []string      { return l.blocked }

// DisclaimerText resolves a disclaimer tag to its display string.
func (l *Lexicon) DisclaimerText(tag string) (string, bool) {
	text, ok := l.disclaimers[tag]
	return text, ok
}
