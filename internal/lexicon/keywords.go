package lexicon

// Keyword groups driving the topic cascade. Several groups overlap; the
// cascade order in the classifier is the tie-break, not these tables.

var sourcingKeywords = []string{
	"buy", "purchase", "order", "source", "vendor", "supplier",
	"where to get", "where can i get", "how to get",
	"website", "online", "ship", "shipping",
	"price", "cost", "cheap", "affordable",
	"legit", "legitimate", "trusted", "reliable",
	"prescription", "without prescription",
}

var safetyKeywords = []string{
	"side effect", "adverse", "danger", "risk", "safe",
	"interaction", "contraindication", "warning",
	"overdose", "too much", "toxic",
	"allergy", "allergic", "reaction",
	"long-term", "long term",
}

var dosingKeywords = []string{
	"dose", "dosage", "protocol", "cycle",
	"how much", "how often", "frequency",
	"mcg", "mg", "iu", "units",
	"injection", "inject", "subcutaneous", "intramuscular",
	"reconstitute", "reconstitution", "bac water",
	"loading", "maintenance", "saturation",
}

var comparisonMarkers = []string{" vs ", " versus ", "compare", "better"}

var mechanismMarkers = []string{"how does", "mechanism", "works"}

var stackingMarkers = []string{"stack", "combine", "together"}

var preparationMarkers = []string{"reconstitute", "storage", "prepare"}

var experienceMarkers = []string{"experience", "results", "worked"}

var researchMarkers = []string{"study", "research", "evidence", "clinical"}

// blockedPhrases short-circuit everything: any match forces the blocked
// risk level regardless of topic.
var blockedPhrases = []string{
	"suicide", "kill myself", "overdose on purpose",
	"poison", "harm someone",
}
