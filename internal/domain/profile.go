package domain

// Profile is a read-only snapshot of what is known about a user.
// Absence of a profile is a valid state (anonymous or new user).
type Profile struct {
	ExpertiseLevel string
	Goals          []string
	PastCompounds  []string
	Sensitivities  []string
}

// Message is one turn of a conversation, in provider-neutral form.
type Message struct {
	Role    string // "system", "user" or "assistant"
	Content string
}

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
