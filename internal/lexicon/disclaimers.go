package lexicon

// Disclaimer tags. The classifier selects tags; the follow-up engine
// resolves them to display strings. Unknown tags are dropped silently.
const (
	TagResearchOnly        = "research_only"
	TagConsultProfessional = "consult_professional"
	TagSourcingLegal       = "sourcing_legal"
	TagVerifySource        = "verify_source"
	TagDosingIndividual    = "dosing_individual"
	TagSideEffects         = "side_effects"
	TagRegulatoryStatus    = "fda_status"
)

var disclaimerTexts = map[string]string{
	TagResearchOnly:        "This information is for research and educational purposes only, not medical advice.",
	TagConsultProfessional: "Always consult a qualified healthcare professional before using any peptides.",
	TagSourcingLegal:       "Peptide legality varies by jurisdiction. Verify legal status in your area.",
	TagVerifySource:        "If obtaining peptides for research, verify quality through independent testing and COAs.",
	TagDosingIndividual:    "Dosing is highly individual. Start with the lowest effective dose and adjust based on response.",
	TagSideEffects:         "Monitor for side effects and discontinue use if concerning symptoms occur.",
	TagRegulatoryStatus:    "Many peptides are not FDA-approved for human use and are sold for research purposes only.",
}
