package domain

// TopicType is the closed set of question categories the classifier produces.
type TopicType string

const (
	TopicResearch    TopicType = "research"
	TopicMechanism   TopicType = "mechanism"
	TopicDosing      TopicType = "dosing"
	TopicComparison  TopicType = "comparison"
	TopicSafety      TopicType = "safety"
	TopicSourcing    TopicType = "sourcing"
	TopicExperience  TopicType = "experience"
	TopicStacking    TopicType = "stacking"
	TopicPreparation TopicType = "preparation"
	TopicGeneral     TopicType = "general"
	TopicOffTopic    TopicType = "off_topic"
)

// RiskLevel governs disclaimer strength and whether a query is answered at all.
type RiskLevel string

const (
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskBlocked RiskLevel = "blocked"
)

// RetrievalStrategy is a named configuration of the hybrid-search call.
type RetrievalStrategy string

const (
	// StrategyMinimal skips retrieval entirely.
	StrategyMinimal RetrievalStrategy = "minimal"
	// StrategyResearchHeavy skews semantic and excludes outcome narratives.
	StrategyResearchHeavy RetrievalStrategy = "research_heavy"
	// StrategyExperienceHeavy skews lexical and includes outcome narratives.
	StrategyExperienceHeavy RetrievalStrategy = "experience_heavy"
	// StrategyBalanced blends evenly and includes outcome narratives.
	StrategyBalanced RetrievalStrategy = "balanced"
)

// Classification is the immutable result of classifying one inbound query.
type Classification struct {
	Topic      TopicType
	Intent     string
	Entities   []string // canonical compound names, first-seen order, deduplicated
	Conditions []string // canonical condition tags, first-seen order, deduplicated
	Risk       RiskLevel
	// DisclaimerTags is never empty for a non-blocked classification:
	// the baseline informational tag is always present.
	DisclaimerTags []string
	Strategy       RetrievalStrategy
	// Confidence is a fixed property of which rule fired, not match density.
	// Observability only; nothing gates on it.
	Confidence float64
}
